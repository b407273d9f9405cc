package memory

import (
	"context"
	"sort"
	"sync"

	"herdbook/internal/ports/archive"
)

type entry struct {
	meta    archive.Artifact
	payload []byte
}

// Store es el archivo en memoria (default en dev y tests).
type Store struct {
	mu   sync.RWMutex
	byID map[string]entry
}

func NewStore() *Store {
	return &Store{byID: make(map[string]entry)}
}

func (s *Store) Put(ctx context.Context, a archive.Artifact, payload []byte) (archive.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[a.ID]; exists {
		return archive.Artifact{}, archive.ErrExists
	}
	a.Key = archive.KeyFor(a.ID)
	a.SizeBytes = int64(len(payload))
	s.byID[a.ID] = entry{meta: a, payload: append([]byte(nil), payload...)}
	return a, nil
}

func (s *Store) Get(ctx context.Context, id string) (archive.Artifact, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[id]
	if !ok {
		return archive.Artifact{}, nil, archive.ErrNotFound
	}
	return e.meta, append([]byte(nil), e.payload...), nil
}

// List ordena por fecha de creación (más nuevo primero).
func (s *Store) List(ctx context.Context) ([]archive.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]archive.Artifact, 0, len(s.byID))
	for _, e := range s.byID {
		out = append(out, e.meta)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
