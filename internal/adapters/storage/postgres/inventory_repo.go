package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"herdbook/internal/domain/views"
)

// InventoryRepo publica las filas de export en una tabla de reporting.
// No es persistencia del store: la tabla nunca se lee de vuelta.
type InventoryRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db, now: time.Now}
}

const inventoryDDL = `
	CREATE TABLE IF NOT EXISTS livestock_inventory (
		position     INTEGER PRIMARY KEY,
		animal_id    TEXT NOT NULL,
		breed        TEXT NOT NULL,
		age          INTEGER NOT NULL,
		gender       TEXT NOT NULL,
		weight_kg    DOUBLE PRECISION NOT NULL,
		birth_date   DATE,
		pasture      TEXT NOT NULL,
		herd_id      TEXT NOT NULL,
		herd_name    TEXT NOT NULL,
		published_at TIMESTAMPTZ NOT NULL
	)
`

// EnsureSchema crea la tabla si no existe.
func (r *InventoryRepo) EnsureSchema(ctx context.Context) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	_, err := r.db.ExecContext(ctx, inventoryDDL)
	return err
}

// Publish reemplaza el contenido de la tabla con rows en una transacción.
// Devuelve la cantidad de filas escritas.
func (r *InventoryRepo) Publish(ctx context.Context, rows []views.ExportRow) (n int, retErr error) {
	if r == nil || r.db == nil {
		return 0, ErrNotConfigured
	}
	if err := r.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("postgres: schema: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM livestock_inventory`); err != nil {
		return 0, fmt.Errorf("postgres: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO livestock_inventory (
			position, animal_id, breed, age, gender,
			weight_kg, birth_date, pasture, herd_id, herd_name,
			published_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`)
	if err != nil {
		return 0, fmt.Errorf("postgres: prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	publishedAt := r.now().UTC()
	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			i+1,
			row.ID,
			row.Breed,
			row.Age,
			string(row.Gender),
			row.CurrentWeight,
			toNullDate(row.BirthDate),
			row.Pasture,
			row.HerdID,
			row.HerdName,
			publishedAt,
		); err != nil {
			return 0, fmt.Errorf("postgres: insert %s: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("postgres: commit: %w", err)
	}
	return len(rows), nil
}

// birth_date es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
