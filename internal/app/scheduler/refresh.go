// Package scheduler runs the periodic snapshot refresh.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// TickerLister provides the universe of tickers to refresh.
// Following Go convention: interfaces are defined by the consumer.
type TickerLister interface {
	ListActiveTickers(ctx context.Context) ([]string, error)
}

// Ingester refreshes the snapshot for a set of tickers.
type Ingester interface {
	IngestAll(ctx context.Context, tickers []string) error
}

// RefreshService resolves the active universe and runs one full ingest.
// It backs both the cron schedule and the manual refresh endpoint.
type RefreshService struct {
	universe TickerLister
	ingester Ingester

	mu sync.Mutex
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(universe TickerLister, ingester Ingester) *RefreshService {
	return &RefreshService{universe: universe, ingester: ingester}
}

// Refresh runs one snapshot refresh over the active universe. Concurrent
// calls serialize so a manual refresh cannot race the scheduled one.
func (s *RefreshService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickers, err := s.universe.ListActiveTickers(ctx)
	if err != nil {
		return fmt.Errorf("refresh: list universe: %w", err)
	}
	if len(tickers) == 0 {
		return fmt.Errorf("refresh: universe is empty")
	}

	slog.Info("refreshing snapshot", "tickers", len(tickers))
	return s.ingester.IngestAll(ctx, tickers)
}
