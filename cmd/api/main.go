package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	s3store "herdbook/internal/adapters/blob/s3"
	pg "herdbook/internal/adapters/storage/postgres"
	"herdbook/internal/platform/config"
	"herdbook/internal/platform/logger"
	"herdbook/internal/platform/metrics"
	"herdbook/internal/ports/archive"
	"herdbook/internal/router"
)

// @title herdbook API
// @version 1.0
// @description Registro de rebaños y animales, series de peso y exports del inventario.
// @BasePath /
func main() {
	cfg := config.FromEnv()
	log := logger.NewFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("server error", logger.Fields{"error": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

// run arma dependencias y sirve hasta que ctx se cancela. Los recursos
// abiertos se cierran antes de volver, también en error.
func run(ctx context.Context, cfg config.Config, log logger.Logger) error {
	opts := router.Options{
		Logger:      log,
		Metrics:     metrics.New(),
		CORSOrigins: cfg.CORSOrigins,
	}

	if cfg.SeedDemo {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		opts.Seed = rand.New(rand.NewPCG(seed, seed))
		log.Info("seeding demo herds", logger.Fields{"seed": seed})
	}

	store, err := archiveStore(ctx, cfg.Blob)
	if err != nil {
		return fmt.Errorf("archive store %q: %w", cfg.Blob.Driver, err)
	}
	opts.Archive = store

	// Postgres opcional: solo sink del inventario
	if cfg.DBDSN != "" {
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			log.Warn("postgres unavailable, inventory publishing disabled", logger.Fields{"error": err})
		} else {
			defer func() { _ = db.Close() }()
			opts.DB = db
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{"addr": cfg.Addr, "archive": cfg.Blob.Driver})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// archiveStore: memory (default) o s3. nil = el router usa memoria.
func archiveStore(ctx context.Context, cfg config.BlobConfig) (archive.Store, error) {
	switch cfg.Driver {
	case "", "memory":
		return nil, nil
	case "s3":
		return s3store.New(ctx, s3store.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
			SessionToken:    cfg.SessionToken,
			PathStyle:       cfg.PathStyle,
		})
	default:
		return nil, errors.New("unknown blob driver " + cfg.Driver)
	}
}
