package exports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"herdbook/internal/domain/herds"
	"herdbook/internal/domain/views"
	"herdbook/internal/export"
	"herdbook/internal/platform/logger"
	"herdbook/internal/ports/archive"
)

var ErrPublisherNotConfigured = errors.New("inventory publisher not configured")

// Publisher recibe las filas del inventario (tabla de reporte en Postgres).
type Publisher interface {
	Publish(ctx context.Context, rows []views.ExportRow) (int, error)
}

// Recorder cuenta exports por formato y destino (lo implementa metrics.Metrics).
type Recorder interface {
	Export(format, target string, err error)
}

type nopRecorder struct{}

func (nopRecorder) Export(string, string, error) {}

// Rendered es un export ya generado en memoria.
type Rendered struct {
	Format      string
	Extension   string
	FileName    string
	ContentType string
	Body        []byte
}

type Service struct {
	herds     *herds.Service
	registry  *export.Registry
	archive   archive.Store
	publisher Publisher
	rec       Recorder
	log       logger.Logger
	now       func() time.Time
	newID     func() string
}

type Deps struct {
	Herds    *herds.Service
	Registry *export.Registry // nil = export.DefaultRegistry()
	Archive  archive.Store    // requerido para los endpoints de archivo

	// Publisher nil deja deshabilitado el sink de Postgres.
	Publisher Publisher
	Recorder  Recorder
	Logger    logger.Logger
	Now       func() time.Time
}

func NewService(d Deps) *Service {
	s := &Service{
		herds:     d.Herds,
		registry:  d.Registry,
		archive:   d.Archive,
		publisher: d.Publisher,
		rec:       d.Recorder,
		log:       d.Logger,
		now:       d.Now,
		newID:     uuid.NewString,
	}
	if s.registry == nil {
		s.registry = export.DefaultRegistry()
	}
	if s.rec == nil {
		s.rec = nopRecorder{}
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) Formats() []string { return s.registry.Formats() }

// Rows devuelve las filas planas del snapshot actual.
func (s *Service) Rows(ctx context.Context) ([]views.ExportRow, error) {
	snap, err := s.herds.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return views.ExportRows(snap), nil
}

// Render genera el inventario completo en el formato pedido.
func (s *Service) Render(ctx context.Context, format string, loc export.Locale) (Rendered, error) {
	out, err := s.render(ctx, format, loc)
	s.rec.Export(s.formatLabel(format), "download", err)
	return out, err
}

// Archive genera el export y lo guarda en el store de artefactos.
func (s *Service) Archive(ctx context.Context, format string, loc export.Locale) (archive.Artifact, error) {
	a, err := s.archiveRendered(ctx, format, loc)
	s.rec.Export(s.formatLabel(format), "archive", err)
	if err != nil {
		return archive.Artifact{}, err
	}
	s.log.Info("export archived", logger.Fields{"artifact_id": a.ID, "format": a.Format, "bytes": a.SizeBytes})
	return a, nil
}

func (s *Service) Artifacts(ctx context.Context) ([]archive.Artifact, error) {
	return s.archive.List(ctx)
}

func (s *Service) Artifact(ctx context.Context, id string) (archive.Artifact, []byte, error) {
	return s.archive.Get(ctx, id)
}

// PublishInventory reemplaza la tabla de inventario con las filas actuales.
func (s *Service) PublishInventory(ctx context.Context) (int, error) {
	if s.publisher == nil {
		return 0, ErrPublisherNotConfigured
	}
	rows, err := s.Rows(ctx)
	if err != nil {
		return 0, err
	}
	n, err := s.publisher.Publish(ctx, rows)
	s.rec.Export("table", "postgres", err)
	if err != nil {
		return 0, err
	}
	s.log.Info("inventory published", logger.Fields{"rows": n})
	return n, nil
}

// formatLabel acota la etiqueta de métricas a los formatos registrados.
func (s *Service) formatLabel(format string) string {
	w, err := s.registry.Get(format)
	if err != nil {
		return "unknown"
	}
	return w.Format()
}

func (s *Service) render(ctx context.Context, format string, loc export.Locale) (Rendered, error) {
	w, err := s.registry.Get(format)
	if err != nil {
		return Rendered{}, err
	}
	rows, err := s.Rows(ctx)
	if err != nil {
		return Rendered{}, err
	}

	doc := export.Inventory(rows, loc)
	var buf bytes.Buffer
	if err := w.Write(ctx, &buf, doc); err != nil {
		return Rendered{}, fmt.Errorf("render %s: %w", w.Format(), err)
	}
	return Rendered{
		Format:      w.Format(),
		Extension:   w.Extension(),
		FileName:    doc.FileName(w.Extension()),
		ContentType: w.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

func (s *Service) archiveRendered(ctx context.Context, format string, loc export.Locale) (archive.Artifact, error) {
	if s.archive == nil {
		return archive.Artifact{}, errors.New("archive store not configured")
	}
	out, err := s.render(ctx, format, loc)
	if err != nil {
		return archive.Artifact{}, err
	}

	now := s.now().UTC()
	return s.archive.Put(ctx, archive.Artifact{
		ID:          fmt.Sprintf("%s-%s.%s", now.Format("20060102T150405Z"), s.newID(), out.Extension),
		FileName:    out.FileName,
		Format:      out.Format,
		ContentType: out.ContentType,
		CreatedAt:   now,
	}, out.Body)
}
