package archive

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("artifact not found")
	ErrExists   = errors.New("artifact already exists")
)

// Artifact describe un export renderizado y guardado.
type Artifact struct {
	ID          string
	Key         string
	FileName    string
	Format      string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}

// Store guarda artefactos inmutables. Put falla si el ID ya existe.
type Store interface {
	Put(ctx context.Context, a Artifact, payload []byte) (Artifact, error)
	Get(ctx context.Context, id string) (Artifact, []byte, error)
	List(ctx context.Context) ([]Artifact, error)
}

// KeyFor es la clave de objeto para un artefacto.
func KeyFor(id string) string {
	return "exports/" + id
}
