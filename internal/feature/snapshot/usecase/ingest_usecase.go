package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stockradar/internal/feature/snapshot/domain/entity"
	"stockradar/internal/shared/ratelimiter"
)

// MarketRepository abstracts the upstream market data source.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	// GetFundamentals fetches the current fundamentals for one ticker.
	// Derived fields (RuleOf40, Volatility, FetchedAt) are left unset.
	GetFundamentals(ctx context.Context, ticker string) (entity.Stock, error)
}

// IngestUsecase fetches fundamentals from the upstream source, derives the
// snapshot metrics, and persists the result.
type IngestUsecase struct {
	market      MarketRepository
	stocks      StockRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase creates a new IngestUsecase.
func NewIngestUsecase(market MarketRepository, stocks StockRepository, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{market: market, stocks: stocks, rateLimiter: rateLimiter}
}

// IngestAll refreshes the snapshot for every given ticker. A ticker whose
// upstream request fails is logged and skipped so one bad symbol never
// blocks the rest of the universe. The whole batch shares a single fetch
// timestamp.
func (iu *IngestUsecase) IngestAll(ctx context.Context, tickers []string) error {
	fetchedAt := time.Now().UTC().Truncate(time.Second)

	batch := make([]entity.Stock, 0, len(tickers))
	for _, ticker := range tickers {
		iu.rateLimiter.WaitIfNeeded()

		s, err := iu.market.GetFundamentals(ctx, ticker)
		if err != nil {
			slog.Error("failed to fetch fundamentals", "ticker", ticker, "error", err)
			continue
		}

		s.Ticker = ticker
		s.FetchedAt = fetchedAt
		Derive(&s)
		batch = append(batch, s)
	}

	if len(batch) == 0 {
		return fmt.Errorf("ingest: no fundamentals fetched for %d tickers", len(tickers))
	}

	if err := iu.stocks.UpsertBatch(ctx, batch); err != nil {
		return fmt.Errorf("ingest: store snapshot: %w", err)
	}

	slog.Info("snapshot ingested", "requested", len(tickers), "stored", len(batch))
	return nil
}

// Derive fills in the computed snapshot fields from the raw fundamentals:
// the Rule of 40 score, the 52-week-range volatility estimate, and
// defaults for missing data.
func Derive(s *entity.Stock) {
	s.RuleOf40 = s.OperatingMargin + s.RevenueGrowth
	s.Volatility = rangeVolatility(s.High52, s.Low52)
	if s.Beta == 0 {
		s.Beta = 1.0
	}
	if s.Sector == "" {
		s.Sector = "Unknown"
	}
}

// rangeVolatility estimates volatility as the 52-week range relative to
// the range midpoint, in percent. Missing range data yields zero.
func rangeVolatility(high, low float64) float64 {
	if high <= 0 || low <= 0 || high < low {
		return 0
	}
	avg := (high + low) / 2
	if avg <= 0 {
		return 0
	}
	return (high - low) / avg * 100
}
