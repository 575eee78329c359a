// Command bookinglog-server runs the bookinglog HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bookinglog/bookinglog/internal/api"
	"github.com/bookinglog/bookinglog/internal/audit"
	"github.com/bookinglog/bookinglog/internal/blob"
	"github.com/bookinglog/bookinglog/internal/config"
	"github.com/bookinglog/bookinglog/internal/db"
	"github.com/bookinglog/bookinglog/internal/db/migrations"
	"github.com/bookinglog/bookinglog/internal/dbpool"
	"github.com/bookinglog/bookinglog/internal/store"
	"github.com/bookinglog/bookinglog/internal/ws"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("server exited with error")
	}
}

func run(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	medium, pool, err := buildMedium(ctx, cfg, log)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	recordStore := store.NewRecordStore(medium, log)
	recordStore.EnsureSeeded(ctx)

	hub := ws.NewHub(log)

	sessions := audit.NewSessionLog(recordStore, log, hub)
	venues := audit.NewVenueLog(recordStore, log, hub)
	queries := audit.NewQueryService(recordStore)

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:         log,
		Pool:        pool,
		Hub:         hub,
		Sessions:    sessions,
		Venues:      venues,
		Audit:       queries,
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
		Backend:     cfg.StoreBackend,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)

		return nil
	})

	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"backend": cfg.StoreBackend,
			"version": config.Version,
		}).Info("server.start")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("server.shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// buildMedium selects the persistence medium from configuration. The
// postgres backend also runs migrations and returns the pool for health
// checks; the file backend returns a nil pool.
func buildMedium(ctx context.Context, cfg *config.Config, log *logrus.Logger) (blob.Medium, *dbpool.Pool, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
		if err != nil {
			return nil, nil, err
		}

		if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
			pool.Close()
			return nil, nil, err
		}

		return blob.NewPostgresMedium(pool), pool, nil
	default:
		medium, err := blob.NewFileMedium(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}

		return medium, nil, nil
	}
}
