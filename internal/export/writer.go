package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
)

// Writer renderiza un Document en un formato de archivo.
type Writer interface {
	Format() string
	ContentType() string
	Extension() string
	Write(ctx context.Context, w io.Writer, doc Document) error
}

// Registry resuelve writers por nombre de formato.
type Registry struct {
	byFormat map[string]Writer
	order    []string
}

func NewRegistry(writers ...Writer) *Registry {
	r := &Registry{byFormat: make(map[string]Writer, len(writers))}
	for _, w := range writers {
		f := strings.ToLower(w.Format())
		if _, dup := r.byFormat[f]; !dup {
			r.order = append(r.order, f)
		}
		r.byFormat[f] = w
	}
	return r
}

// DefaultRegistry trae los cuatro formatos soportados.
func DefaultRegistry() *Registry {
	return NewRegistry(XLSXWriter{}, PDFWriter{}, CSVWriter{}, SQLiteWriter{})
}

func (r *Registry) Get(format string) (Writer, error) {
	w, ok := r.byFormat[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return w, nil
}

func (r *Registry) Formats() []string {
	return append([]string(nil), r.order...)
}
