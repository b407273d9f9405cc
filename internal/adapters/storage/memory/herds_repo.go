package memory

import (
	"context"
	"errors"
	"sync"

	"herdbook/internal/domain/herds"
)

var (
	ErrNilTransition = errors.New("nil transition")
)

// herdRepo guarda el snapshot vigente. Las escrituras se serializan con el
// mutex; los lectores se llevan el valor inmutable y lo recorren sin lock.
type herdRepo struct {
	mu   sync.RWMutex
	snap herds.Snapshot
}

// NewHerdRepo arranca con una copia de los rebaños iniciales (nil = vacío).
func NewHerdRepo(initial []herds.Herd) herds.Repository {
	return &herdRepo{
		snap: herds.NewSnapshot(initial),
	}
}

func (r *herdRepo) Snapshot(ctx context.Context) (herds.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return herds.Snapshot{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snap, nil
}

func (r *herdRepo) Apply(ctx context.Context, fn func(herds.Snapshot) (herds.Snapshot, error)) (herds.Snapshot, error) {
	if fn == nil {
		return herds.Snapshot{}, ErrNilTransition
	}
	if err := ctx.Err(); err != nil {
		return herds.Snapshot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := fn(r.snap)
	if err != nil {
		return r.snap, err
	}
	r.snap = next
	return next, nil
}
