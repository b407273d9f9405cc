package router

import (
	"context"
	"database/sql"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "herdbook/docs"
	blobmem "herdbook/internal/adapters/blob/memory"
	mem "herdbook/internal/adapters/storage/memory"
	pg "herdbook/internal/adapters/storage/postgres"
	"herdbook/internal/domain/exports"
	"herdbook/internal/domain/herds"
	"herdbook/internal/domain/views"
	"herdbook/internal/middleware"
	"herdbook/internal/platform/logger"
	"herdbook/internal/platform/metrics"
	"herdbook/internal/ports/archive"
)

type Options struct {
	Logger  logger.Logger    // nil = Nop
	Metrics *metrics.Metrics // nil = registry nuevo

	// Herds es el estado inicial. Si es nil y Seed != nil se generan datos demo.
	Herds []herds.Herd
	Seed  *rand.Rand

	// Opcional: si viene, habilita POST /exports/postgres.
	DB *sql.DB

	// Opcional: store de artefactos. Si no, in-memory.
	Archive archive.Store

	CORSOrigins []string // vacío = *

	// Now fija el reloj (tests). nil = time.Now.
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log, m))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	initial := opts.Herds
	if initial == nil && opts.Seed != nil {
		initial = herds.DemoHerds(opts.Seed, herds.SeedOptions{Now: now()})
	}

	// Repos
	herdRepo := mem.NewHerdRepo(initial)

	store := opts.Archive
	if store == nil {
		store = blobmem.NewStore()
	}

	var publisher exports.Publisher
	if opts.DB != nil {
		publisher = pg.NewInventoryRepo(opts.DB)
	}

	// Services por módulo
	herdsSvc := herds.NewService(herdRepo,
		herds.WithLogger(log.With(logger.Fields{"component": "herds"})),
		herds.WithRecorder(m),
		herds.WithClock(now),
	)
	exportsSvc := exports.NewService(exports.Deps{
		Herds:     herdsSvc,
		Archive:   store,
		Publisher: publisher,
		Recorder:  m,
		Logger:    log.With(logger.Fields{"component": "exports"}),
		Now:       now,
	})

	if snap, err := herdsSvc.Snapshot(context.Background()); err == nil {
		m.Sizes(snap.Len(), snap.AnimalCount())
	}

	// Rutas por módulo
	herds.RegisterRoutes(r, herdsSvc)
	views.RegisterRoutes(r, herdsSvc, now)
	exports.RegisterRoutes(r, exportsSvc)

	return r
}
