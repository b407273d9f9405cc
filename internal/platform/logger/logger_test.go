package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, lvl Level, f Format) *StdLogger {
	l := New(Options{Level: lvl, Format: f, App: "herdbook", Output: buf}).(*StdLogger)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestStdLogger_TextLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, Info, FormatText)

	l.Debug("hidden", nil)
	l.With(Fields{"component": "herds"}).Info("store mutation", Fields{"op": "add_herd", "err": errors.New("x")})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug must be filtered at info level: %q", out)
	}
	want := `app=herdbook component=herds err=x level=info msg=store mutation op=add_herd ts=2024-01-02T03:04:05Z`
	if out != want {
		t.Fatalf("unexpected line\n got: %s\nwant: %s", out, want)
	}
}

func TestStdLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, Debug, FormatJSON)

	l.Warn("request", Fields{"status": 404, "": "dropped"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["status"] != float64(404) || entry["app"] != "herdbook" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty keys must be dropped")
	}
}

func TestParse(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("bogus") != Info || ParseLevel("debug") != Debug {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, Info, FormatText)

	if FromContext(context.Background(), nil) == nil {
		t.Fatalf("expected Nop fallback")
	}
	ctx := WithContext(context.Background(), l)
	FromContext(ctx, Nop()).Info("hello", nil)
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("expected logger from context to be used, got %q", buf.String())
	}
}
