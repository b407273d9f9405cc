package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNow := stdout, now
	stdout = &buf
	now = func() time.Time { return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { stdout, now = prevOut, prevNow })

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return buf.String(), err
}

func TestRows_PrintsAllAnimals(t *testing.T) {
	out, err := run(t, "--seed", "7", "--herds", "2", "rows")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	var rows []struct {
		ID        string  `json:"id"`
		HerdID    string  `json:"herd_id"`
		BirthDate *string `json:"birth_date"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rows) < 60 {
		t.Fatalf("expected at least 30 animals per herd, got %d", len(rows))
	}
	if rows[0].HerdID != "herd-1" || rows[len(rows)-1].HerdID != "herd-2" {
		t.Fatalf("rows out of herd order: first=%s last=%s", rows[0].HerdID, rows[len(rows)-1].HerdID)
	}
	// mismo formato que GET /exports/rows: claves snake_case, fechas YYYY-MM-DD
	if strings.Contains(out, `"HerdID"`) {
		t.Fatalf("expected snake_case keys, got Go field names")
	}
	for _, r := range rows {
		if r.BirthDate != nil {
			if _, err := time.Parse("2006-01-02", *r.BirthDate); err != nil {
				t.Fatalf("birth_date %q is not YYYY-MM-DD", *r.BirthDate)
			}
		}
	}
}

func TestMonthly_PrintsWindow(t *testing.T) {
	out, err := run(t, "--seed", "7", "--herds", "1", "monthly", "herd-1", "--months", "3")
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 months, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "MONTH") || !strings.HasPrefix(lines[3], "03.2024") {
		t.Fatalf("unexpected table %q", out)
	}

	if _, err := run(t, "--seed", "7", "--herds", "1", "monthly", "herd-9"); err == nil {
		t.Fatalf("expected error for unknown herd")
	}
}

func TestExport_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.csv")
	out, err := run(t, "--seed", "7", "--herds", "1", "export", "-f", "csv", "-o", path, "--lang", "de")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out, "Wrote "+path) {
		t.Fatalf("unexpected output %q", out)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(b), "ID,Rasse,Alter") {
		t.Fatalf("expected german headers, got %q", b[:40])
	}

	if _, err := run(t, "--seed", "7", "export", "-f", "docx", "-o", path); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
