package herds

import "context"

// Repository guarda el snapshot vigente.
// Apply ejecuta las transiciones de a una: fn recibe el snapshot actual y el
// que devuelve pasa a ser el vigente. Si fn falla, no cambia nada.
type Repository interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	Apply(ctx context.Context, fn func(Snapshot) (Snapshot, error)) (Snapshot, error)
}
