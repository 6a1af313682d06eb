package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/taxbit-export/internal/config"
	"github.com/grachmannico95/taxbit-export/internal/domain"
	"github.com/grachmannico95/taxbit-export/internal/eventbus"
	"github.com/grachmannico95/taxbit-export/internal/handler"
	"github.com/grachmannico95/taxbit-export/internal/scheduler"
	"github.com/grachmannico95/taxbit-export/internal/server"
	"github.com/grachmannico95/taxbit-export/internal/service"
	"github.com/grachmannico95/taxbit-export/internal/storage"
	"github.com/grachmannico95/taxbit-export/internal/taxbit"
	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "Starting application")

	defaultSchema, err := taxbit.ParseSchema(cfg.Export.DefaultSchema)
	if err != nil {
		log.Fatal(ctx, "Invalid default schema",
			"error", err,
		)
	}

	repo, closeRepo, err := openRepository(ctx, cfg.Storage)
	if err != nil {
		log.Fatal(ctx, "Failed to initialize repository",
			"driver", cfg.Storage.Driver,
			"error", err,
		)
	}
	defer closeRepo()
	log.Info(ctx, "Repository initialized", "driver", cfg.Storage.Driver)

	eventBusCfg := &eventbus.Config{
		ChannelBuffer:  cfg.EventBus.ChannelBufferSize,
		MaxRetries:     cfg.Worker.MaxRetries,
		RetryBaseDelay: cfg.Worker.RetryBaseDelay,
	}
	bus := eventbus.New(log, eventBusCfg)
	log.Info(ctx, "Event bus initialized")

	recordConsumer := eventbus.NewRecordConsumer(
		repo,
		log,
		cfg.Worker.PoolSize,
	)
	log.Info(ctx, "Record consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	err = bus.Subscribe(eventbus.EventTypeRecordIngest, recordConsumer)
	if err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	// workers outlive the signal context so in-flight rows drain on shutdown
	err = bus.Start(context.WithoutCancel(ctx))
	if err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	exportCache := cache.New(cfg.Export.CacheTTL, 2*cfg.Export.CacheTTL)

	csvProcessor := service.NewCSVProcessor(bus, repo, log)
	exportService := service.NewExportService(repo, csvProcessor, exportCache, log)
	log.Info(ctx, "Services initialized")

	retention, err := scheduler.NewRetention(repo, exportService, cfg.Retention.Schedule, cfg.Retention.MaxAge, log)
	if err != nil {
		log.Fatal(ctx, "Failed to initialize retention scheduler",
			"error", err,
		)
	}
	retention.Start()

	exportHandler := handler.NewExportHandler(exportService, defaultSchema, log)
	healthHandler := handler.NewHealthHandler(repo, cfg.Storage.Driver)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, exportHandler, healthHandler)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info(ctx, "Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Graceful shutdown in order:
		// 1. Stop accepting new HTTP requests
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(shutdownCtx, "HTTP server shutdown error",
				"error", err,
			)
		}

		// 2. Stop the retention schedule
		if err := retention.Stop(shutdownCtx); err != nil {
			log.Error(shutdownCtx, "Retention scheduler shutdown error",
				"error", err,
			)
		}

		// 3. Stop event bus and wait for workers to finish
		if err := bus.Shutdown(shutdownCtx); err != nil {
			log.Error(shutdownCtx, "Event bus shutdown error",
				"error", err,
			)
		}

		return nil
	})

	log.Info(ctx, "Application started successfully")

	if err := g.Wait(); err != nil {
		log.Error(context.Background(), "Application stopped with error",
			"error", err,
		)
		return
	}

	log.Info(context.Background(), "Application stopped gracefully")
}

type store interface {
	domain.Repository
	handler.StorageChecker
}

func openRepository(ctx context.Context, cfg config.StorageConfig) (store, func(), error) {
	switch cfg.Driver {
	case config.StorageDriverSQLite:
		store, err := storage.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case config.StorageDriverMemory, "":
		return storage.NewMemoryStore(), func() {}, nil
	}

	return nil, nil, errors.New("unknown storage driver: " + cfg.Driver)
}
