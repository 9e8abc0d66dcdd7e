package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dopetech/storefront/internal/config"
	api "github.com/dopetech/storefront/internal/http"
	"github.com/dopetech/storefront/internal/http/handlers"
	rl "github.com/dopetech/storefront/internal/http/rate_limiter"
	"github.com/dopetech/storefront/internal/prefs"
	"github.com/dopetech/storefront/internal/readiness"
	"github.com/dopetech/storefront/internal/repo"
)

var ctx = context.Background()

// @title DopeTech Storefront API
// @version 1.0
// @description Storefront state engine: product catalog with filtering, session cart, theme preference and startup readiness.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()
	api.SetLogger(logger)

	go rl.StartVisitorCleanupLoop()

	// The theme preference is a best-effort cache: without Redis the
	// storefront still runs, it just forgets the toggle across restarts.
	var themeStore prefs.ThemeStore
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, theme preference will not persist", zap.Error(err))
		themeStore = prefs.NewMemoryThemeStore()
	} else {
		defer rdb.Close()
		themeStore = prefs.NewRedisThemeStore(rdb, ctx)
	}

	handlers.SetCatalogRepo(repo.NewMemoryCatalogRepository(repo.SeedProducts()))
	handlers.SetCartRepo(repo.NewMemoryCartRepository())
	handlers.SetThemeManager(prefs.NewManager(themeStore, cfg.SystemDark))

	gate := readiness.NewGate()
	gate.Start(cfg.LoadDelay)
	defer gate.Stop()
	handlers.SetReadinessGate(gate)

	r := api.NewRouter()
	logger.Info("storefront listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zc.Build()
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	return logger
}
