package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"acquisition-calc/config"
	"acquisition-calc/cronrunner"
	httpLayer "acquisition-calc/http"
	"acquisition-calc/logger"
	"acquisition-calc/repository"
	"acquisition-calc/service"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("DEAL_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	envOnly, _ := strconv.ParseBool(os.Getenv("DEAL_ENV_ONLY"))

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("open scenario store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer store.close()

	runner := cronrunner.New(zl, ctx)

	var cache repository.CacheRepository
	if cfg.Cache.Enabled {
		if store.redis != nil {
			cache = repository.NewRedisCache(store.redis, cfg.Redis.KeyPrefix)
		} else {
			mem := repository.NewMemoryCache()
			cache = mem
			if _, err := runner.Add("quote-cache-sweep", cfg.Cache.SweepSpec, func(context.Context) {
				if removed := mem.Sweep(); removed > 0 {
					zl.Debug("quote cache swept", zap.Int("removed", removed))
				}
			}); err != nil {
				zl.Fatal("schedule cache sweep", zap.String("spec", cfg.Cache.SweepSpec), zap.Error(err))
			}
		}
	}

	deps := httpLayer.RouterDeps{
		Scenarios:      service.NewScenarioService(store.repo, zl),
		Loans:          service.NewLoanService(cache, cfg.Cache.TTL, zl),
		Sensitivity:    service.NewSensitivityService(zl),
		TrustedProxies: cfg.Server.TrustedProxies,
		Logger:         zl,
	}

	if cfg.RateLimit.Enabled {
		limiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
		deps.RateLimiter = limiter
		idleAfter := cfg.RateLimit.IdleAfter
		if _, err := runner.Add("rate-limit-sweep", cfg.RateLimit.SweepSpec, func(context.Context) {
			if removed := limiter.Sweep(idleAfter); removed > 0 {
				zl.Debug("rate limiter swept", zap.Int("removed", removed))
			}
		}); err != nil {
			zl.Fatal("schedule rate limit sweep", zap.String("spec", cfg.RateLimit.SweepSpec), zap.Error(err))
		}
	}
	runner.Start()
	defer runner.Stop()

	router, err := httpLayer.NewRouter(deps)
	if err != nil {
		zl.Fatal("build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		zl.Info("http server listening",
			zap.String("addr", cfg.Server.HTTPAddr),
			zap.String("store", cfg.Store.Driver),
			zap.String("env", cfg.App.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		zl.Error("http server failed", zap.Error(err))
		return
	case <-ctx.Done():
		zl.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Error("http server shutdown", zap.Error(err))
	}
	zl.Info("server exited")
}

type scenarioStore struct {
	repo repository.ScenarioRepository
	// redis is set when the store runs on redis so the quote cache can share it.
	redis *redis.Client
	close func()
}

func openStore(ctx context.Context, cfg config.Config, zl *zap.Logger) (scenarioStore, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory, "":
		return scenarioStore{repo: repository.NewScenarioRepositoryMemory(), close: func() {}}, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		repo := repository.NewScenarioRepositoryRedisWithClient(client, cfg.Redis.KeyPrefix)
		if err := repo.Ping(ctx); err != nil {
			_ = repo.Close()
			return scenarioStore{}, fmt.Errorf("redis ping: %w", err)
		}
		return scenarioStore{
			repo:  repo,
			redis: client,
			close: func() {
				if err := repo.Close(); err != nil {
					zl.Warn("close redis", zap.Error(err))
				}
			},
		}, nil

	case config.StorePostgres:
		pg, err := repository.OpenPostgres(ctx, repository.PostgresOptions{
			DSN:             cfg.DB.DSN,
			MaxConns:        cfg.DB.MaxConns,
			MinConns:        cfg.DB.MinConns,
			ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.DB.ConnMaxIdleTime,
		})
		if err != nil {
			return scenarioStore{}, err
		}
		if cfg.DB.AutoMigrate {
			if err := pg.AutoMigrate(); err != nil {
				pg.Close()
				return scenarioStore{}, fmt.Errorf("migrate: %w", err)
			}
		}
		return scenarioStore{repo: repository.NewScenarioRepositoryGorm(pg.Gorm), close: pg.Close}, nil

	default:
		return scenarioStore{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
