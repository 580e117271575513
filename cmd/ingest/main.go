// One-shot snapshot ingest, useful for cron outside the server process
// and for local smoke testing.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stockradar/internal/app/config"
	snapshotadapters "stockradar/internal/feature/snapshot/adapters"
	snapshotusecase "stockradar/internal/feature/snapshot/usecase"
	universeadapters "stockradar/internal/feature/universe/adapters"
	"stockradar/internal/platform/db"
	"stockradar/internal/platform/externalapi/yahoo"
	platformhttp "stockradar/internal/platform/http"
	"stockradar/internal/shared/ratelimiter"
)

func main() {
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

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

	yahooCfg := yahoo.LoadConfig()
	if cfg.Market.BaseURL != "" {
		yahooCfg.BaseURL = cfg.Market.BaseURL
	}
	market := yahoo.NewYahooMarket(yahooCfg, platformhttp.NewHTTPClient(yahooCfg.Timeout))
	limiter := ratelimiter.NewRateLimiter(cfg.Market.RatePerMinute, time.Minute)

	stockRepo := snapshotadapters.NewStockRepository(gdb)
	symbolRepo := universeadapters.NewSymbolRepository(gdb)
	ingestUC := snapshotusecase.NewIngestUsecase(market, stockRepo, limiter)

	tickers, err := symbolRepo.ListActiveTickers(ctx)
	if err != nil {
		slog.Error("failed to load universe", "error", err)
		os.Exit(1)
	}

	if err := ingestUC.IngestAll(ctx, tickers); err != nil {
		slog.Error("ingest failed", "error", err)
		os.Exit(1)
	}
	slog.Info("ingest ok", "tickers", len(tickers))
}
