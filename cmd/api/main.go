// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Folio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the content store (PostgreSQL + migrations, or in-memory).
//  4. Connect to Redis for the revocation epoch, when configured.
//  5. Connect to the object store, when configured.
//  6. Wire services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/folio/internal/api"
	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/media"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/migration"
	"github.com/taibuivan/folio/internal/platform/objectstore"
	pgstore "github.com/taibuivan/folio/internal/platform/postgres"
	redisstore "github.com/taibuivan/folio/internal/platform/redis"
	"github.com/taibuivan/folio/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
		slog.String("auth_mode", cfg.AuthMode),
	)

	// Root context for startup, so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	var checks []api.Check

	// ── 3. Content Store ──────────────────────────────────────────────────
	var (
		contentRepository content.Repository
		mediaRepository   media.Repository
	)

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		must(log, migration.RunUp(cfg.DatabaseURL, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		contentRepository = content.NewPostgresRepository(pool)
		mediaRepository = media.NewPostgresRepository(pool)
		checks = append(checks, api.Check{
			Name:  "postgres",
			Probe: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		})
	default:
		log.Warn("memory_storage_enabled", slog.String("hint", "data is lost on restart"))
		contentRepository = content.NewMemoryRepository()
		mediaRepository = media.NewMemoryRepository()
	}

	// ── 4. Admin Gate ─────────────────────────────────────────────────────
	admin := auth.Credentials{Email: cfg.AdminEmail, PasswordHash: cfg.AdminPasswordHash}

	var authService *auth.Service
	switch cfg.AuthMode {
	case config.AuthModeStatic:
		log.Warn("static_marker_enabled", slog.String("hint", "markers cannot be revoked"))
		authService = auth.NewStaticService(admin, cfg.AuthStaticToken)
	default:
		tokens, err := sec.NewTokenService(cfg.AuthTokenSecret, constants.MarkerIssuer, cfg.AuthTokenTTL)
		must(log, err, "initialize marker signer")

		var epochs auth.EpochStore = auth.NewMemoryEpochStore()
		if cfg.RedisURL != "" {
			rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
			must(log, err, "connect to redis")
			defer func() {
				log.Info("closing_redis_client")
				if cerr := rdb.Close(); cerr != nil {
					log.Error("redis_close_failed", slog.Any("error", cerr))
				}
			}()

			epochs = auth.NewRedisEpochStore(rdb)
			checks = append(checks, api.Check{
				Name:  "redis",
				Probe: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
			})
		}

		authService = auth.NewTokenService(admin, tokens, epochs)
	}

	guard := middleware.RequireAdmin(authService)

	// ── 5. Object Store ───────────────────────────────────────────────────
	var store objectstore.Store
	if cfg.ObjectStoreEndpoint != "" {
		minioStore, err := objectstore.NewMinioStore(startupCtx, objectstore.MinioOptions{
			Endpoint:  cfg.ObjectStoreEndpoint,
			AccessKey: cfg.ObjectStoreAccessKey,
			SecretKey: cfg.ObjectStoreSecretKey,
			Bucket:    cfg.ObjectStoreBucket,
			Region:    cfg.ObjectStoreRegion,
			UseSSL:    cfg.ObjectStoreUseSSL,
			PublicURL: cfg.ObjectStorePublicURL,
		}, log)
		must(log, err, "connect to object store")
		store = minioStore
	} else {
		log.Warn("memory_object_store_enabled", slog.String("hint", "uploads are lost on restart"))
		store = objectstore.NewMemoryStore(cmp.Or(cfg.ObjectStorePublicURL, "http://localhost:9000"), cfg.ObjectStoreBucket)
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	contentService := content.NewService(contentRepository, log)
	mediaService := media.NewService(mediaRepository, store, media.Options{
		MaxBytes:    cfg.MediaMaxBytes(),
		DeleteBlobs: cfg.MediaDeleteBlobs,
	}, log)

	liveness, readiness := api.NewHealthHandlers(checks, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, guard),
		Content:   content.NewHandler(contentService, guard),
		Media:     media.NewHandler(mediaService, guard),
	})

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Only for startup wiring. After startup, errors are returned and handled.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
