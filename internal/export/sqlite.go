package export

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver "sqlite" (pure go)
)

// SQLiteWriter genera el backup: un archivo SQLite con la tabla inventory
// (columnas fijas, independientes del locale) y una tabla meta.
type SQLiteWriter struct{}

func (SQLiteWriter) Format() string      { return "sqlite" }
func (SQLiteWriter) ContentType() string { return "application/vnd.sqlite3" }
func (SQLiteWriter) Extension() string   { return "sqlite" }

const sqliteSchema = `
CREATE TABLE meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE inventory (
	position   INTEGER PRIMARY KEY,
	id         TEXT NOT NULL UNIQUE,
	breed      TEXT NOT NULL,
	age        INTEGER NOT NULL,
	gender     TEXT NOT NULL,
	weight     REAL NOT NULL,
	birth_date TEXT,
	pasture    TEXT NOT NULL,
	herd_id    TEXT NOT NULL,
	herd_name  TEXT NOT NULL
);`

func (SQLiteWriter) Write(ctx context.Context, w io.Writer, doc Document) error {
	dir, err := os.MkdirTemp("", "herdbook-export-*")
	if err != nil {
		return fmt.Errorf("sqlite: temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "inventory.sqlite")
	if err := writeSQLite(ctx, path, doc); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("sqlite: open result: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("sqlite: copy: %w", err)
	}
	return nil
}

func writeSQLite(ctx context.Context, path string, doc Document) (retErr error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlite: open: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("sqlite: close: %w", err)
		}
	}()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("sqlite: schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	meta := map[string]string{
		"title":  doc.Title,
		"locale": string(doc.Locale),
		"rows":   fmt.Sprintf("%d", len(doc.Rows)),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("sqlite: meta: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO inventory (
			position, id, breed, age, gender, weight, birth_date, pasture, herd_id, herd_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range doc.Rows {
		var birth sql.NullString
		if r.BirthDate != nil {
			birth = sql.NullString{String: formatDate(r.BirthDate), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			i+1, r.ID, r.Breed, r.Age, string(r.Gender), r.CurrentWeight, birth, r.Pasture, r.HerdID, r.HerdName,
		); err != nil {
			return fmt.Errorf("sqlite: insert %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}
