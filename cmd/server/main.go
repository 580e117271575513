package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stockradar/internal/app/config"
	"stockradar/internal/app/router"
	"stockradar/internal/app/scheduler"
	authadapters "stockradar/internal/feature/auth/adapters"
	authhandler "stockradar/internal/feature/auth/transport/handler"
	authusecase "stockradar/internal/feature/auth/usecase"
	charthandler "stockradar/internal/feature/charts/transport/handler"
	chartusecase "stockradar/internal/feature/charts/usecase"
	radarhandler "stockradar/internal/feature/radar/transport/handler"
	radarusecase "stockradar/internal/feature/radar/usecase"
	snapshotadapters "stockradar/internal/feature/snapshot/adapters"
	snapshothandler "stockradar/internal/feature/snapshot/transport/handler"
	snapshotusecase "stockradar/internal/feature/snapshot/usecase"
	universeadapters "stockradar/internal/feature/universe/adapters"
	universehandler "stockradar/internal/feature/universe/transport/handler"
	universeusecase "stockradar/internal/feature/universe/usecase"
	"stockradar/internal/platform/cache"
	"stockradar/internal/platform/db"
	"stockradar/internal/platform/externalapi/yahoo"
	platformhttp "stockradar/internal/platform/http"
	jwtmw "stockradar/internal/platform/jwt"
	platformredis "stockradar/internal/platform/redis"
	"stockradar/internal/shared/ratelimiter"
)

func main() {
	// Local development convenience, a missing .env is fine.
	_ = godotenv.Load(".env")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	// The auth middleware reads the secret from the environment, so a
	// secret that came in via the YAML file has to be exported.
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		_ = os.Setenv(jwtmw.EnvKeyJWTSecret, cfg.Auth.JWTSecret)
	}

	ctx := context.Background()

	// Database
	gdb, err := db.Open(db.Config{
		Driver:        cfg.Database.Driver,
		DSN:           cfg.Database.DSN,
		RunMigrations: cfg.Database.RunMigrations,
	})
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := universeadapters.EnsureSeeded(ctx, gdb); err != nil {
		slog.Error("failed to seed universe", "error", err)
		os.Exit(1)
	}

	// Redis (optional, the service degrades to uncached reads)
	var rdb *redisv9.Client
	if cfg.Redis.Addr != "" {
		if tmp, err := platformredis.NewClient(ctx, platformredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}); err != nil {
			slog.Warn("redis unavailable, running without cache")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(gdb)
	symbolRepo := universeadapters.NewSymbolRepository(gdb)
	stockRepo := snapshotadapters.NewStockRepository(gdb)

	ttl := cache.TimeUntilNextRefresh(time.Now())
	cachedStockRepo := cache.NewCachingStockRepository(rdb, ttl, stockRepo, "snapshot")

	// Upstream market source
	yahooCfg := yahoo.LoadConfig()
	if cfg.Market.BaseURL != "" {
		yahooCfg.BaseURL = cfg.Market.BaseURL
	}
	market := yahoo.NewYahooMarket(yahooCfg, platformhttp.NewHTTPClient(yahooCfg.Timeout))
	limiter := ratelimiter.NewRateLimiter(cfg.Market.RatePerMinute, time.Minute)

	// Usecases
	tokenExpiry := time.Duration(cfg.Auth.TokenExpiryHours) * time.Hour
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(cfg.Auth.JWTSecret, tokenExpiry))
	symbolUC := universeusecase.NewSymbolUsecase(symbolRepo)
	snapshotUC := snapshotusecase.NewSnapshotUsecase(cachedStockRepo)
	ingestUC := snapshotusecase.NewIngestUsecase(market, cachedStockRepo, limiter)
	radarUC := radarusecase.NewRadarUsecase(snapshotUC)
	chartUC := chartusecase.NewChartUsecase(snapshotUC)

	// Scheduler
	refresh := scheduler.NewRefreshService(symbolUC, ingestUC)
	sched := scheduler.NewScheduler(ctx, refresh)
	if err := sched.Register(cfg.Market.RefreshCron); err != nil {
		slog.Error("failed to register refresh schedule", "error", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	// Prime the snapshot in the background when the store is empty, so a
	// fresh deployment serves data before the first cron tick.
	if stocks, err := snapshotUC.GetSnapshot(ctx); err == nil && len(stocks) == 0 {
		go sched.RunNow()
	}

	// Handlers and router
	engine := router.NewRouter(router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC),
		Snapshot: snapshothandler.NewSnapshotHandler(snapshotUC, refresh),
		Radar:    radarhandler.NewRadarHandler(radarUC),
		Charts:   charthandler.NewChartHandler(chartUC),
		Universe: universehandler.NewSymbolHandler(symbolUC),
	})

	if err := engine.Run(cfg.Server.Addr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
