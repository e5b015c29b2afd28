// Command server runs the journal admin API.
//
// @title        Journal Admin API
// @version      1.0
// @description  Administrative surface: list users, run user actions, manage the application cache.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/journalapp/admin-service/internal/api"
	"github.com/journalapp/admin-service/internal/core/action"
	"github.com/journalapp/admin-service/internal/core/ports"
	"github.com/journalapp/admin-service/internal/core/service"
	"github.com/journalapp/admin-service/internal/infrastructure/cache"
	"github.com/journalapp/admin-service/internal/infrastructure/db/mongo"
	"github.com/journalapp/admin-service/internal/infrastructure/db/redis"
	"github.com/journalapp/admin-service/internal/infrastructure/queue"
	"github.com/journalapp/admin-service/internal/pkg/config"
	"github.com/journalapp/admin-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "journal-admin",
		Version: version,
	})
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Infrastructure ---
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	configRepo := mongo.NewConfigRepository(db)

	var (
		rdb      *goredis.Client
		appCache ports.AppCache
	)
	if cfg.Redis.Enabled {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		appCache = redis.NewAppCache(rdb, configRepo, cfg.Cache.Key)
	} else {
		appCache = cache.NewMemoryCache(configRepo)
	}

	if err := appCache.Reset(ctx); err != nil {
		log.Warn().Err(err).Msg("initial app cache load failed, starting empty")
	}

	// --- Core ---
	auditDispatcher := queue.NewAuditDispatcher(cfg.AuditWorkers, mongo.NewAuditRepository(db), logger.Component("audit"))
	userStore := service.NewUserService(mongo.NewUserRepository(db), cfg.BcryptCost, logger.Component("users"))
	registry := action.NewDefaultRegistry(userStore)
	adminService := service.NewAdminService(userStore, registry, appCache, auditDispatcher, logger.Component("admin"))

	e := api.NewRouter(api.Dependencies{
		Admin:     adminService,
		Log:       logger.Component("http"),
		DB:        db,
		Redis:     rdb,
		RateLimit: cfg.RateLimit,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	auditDispatcher.Start(workerCtx)

	g.Go(func() error {
		log.Info().
			Str("addr", cfg.Address()).
			Str("cache", cfg.Cache.Backend).
			Interface("actions", registry.Tokens()).
			Msg("http server listening")
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := e.Shutdown(sctx)
		// audit workers drain after the last request has been served
		stopWorkers()
		auditDispatcher.Wait()
		return err
	})

	return g.Wait()
}
