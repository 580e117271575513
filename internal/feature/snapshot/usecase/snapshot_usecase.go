// Package usecase implements the business logic for market snapshot
// operations: reading the latest fundamentals and running the screens the
// dashboard offers.
package usecase

import (
	"context"
	"sort"

	"stockradar/internal/feature/snapshot/domain/entity"
)

const (
	// DefaultScreenLimit is the number of rows a screen returns by default.
	DefaultScreenLimit = 20
	// MaxScreenLimit caps the rows any screen can return.
	MaxScreenLimit = 50
	// DefaultMinRuleOf40 is the threshold for the value screen; 40 and
	// above is the conventional "good" score.
	DefaultMinRuleOf40 = 40.0
)

// StockRepository abstracts the persistence layer for snapshot rows.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type StockRepository interface {
	// FindLatest returns the most recent snapshot, one row per ticker.
	FindLatest(ctx context.Context) ([]entity.Stock, error)
	// UpsertBatch inserts or updates snapshot rows keyed by ticker.
	UpsertBatch(ctx context.Context, stocks []entity.Stock) error
}

// SnapshotUsecase provides read access to the stored market snapshot.
type SnapshotUsecase struct {
	stocks StockRepository
}

// NewSnapshotUsecase creates a new SnapshotUsecase with the given repository.
func NewSnapshotUsecase(stocks StockRepository) *SnapshotUsecase {
	return &SnapshotUsecase{stocks: stocks}
}

// clampLimit normalizes a requested row count into [1, MaxScreenLimit].
func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultScreenLimit
	}
	if limit > MaxScreenLimit {
		return MaxScreenLimit
	}
	return limit
}

// GetSnapshot returns the latest stored snapshot for every ticker.
func (u *SnapshotUsecase) GetSnapshot(ctx context.Context) ([]entity.Stock, error) {
	return u.stocks.FindLatest(ctx)
}

// TopGainers returns the stocks with the highest daily change.
func (u *SnapshotUsecase) TopGainers(ctx context.Context, limit int) ([]entity.Stock, error) {
	stocks, err := u.stocks.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stocks, func(i, j int) bool {
		return stocks[i].ChangePct > stocks[j].ChangePct
	})
	return truncate(stocks, clampLimit(limit)), nil
}

// MostTraded returns the most actively traded stocks by volume.
func (u *SnapshotUsecase) MostTraded(ctx context.Context, limit int) ([]entity.Stock, error) {
	stocks, err := u.stocks.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stocks, func(i, j int) bool {
		return stocks[i].Volume > stocks[j].Volume
	})
	return truncate(stocks, clampLimit(limit)), nil
}

// BestValue returns the stocks at or above the given Rule of 40 threshold,
// best score first. A non-positive threshold falls back to the default.
func (u *SnapshotUsecase) BestValue(ctx context.Context, minRuleOf40 float64, limit int) ([]entity.Stock, error) {
	if minRuleOf40 <= 0 {
		minRuleOf40 = DefaultMinRuleOf40
	}
	stocks, err := u.stocks.FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	value := stocks[:0:0]
	for _, s := range stocks {
		if s.RuleOf40 >= minRuleOf40 {
			value = append(value, s)
		}
	}
	sort.SliceStable(value, func(i, j int) bool {
		return value[i].RuleOf40 > value[j].RuleOf40
	})
	return truncate(value, clampLimit(limit)), nil
}

// BySector returns every snapshot row in the given sector.
func (u *SnapshotUsecase) BySector(ctx context.Context, sector string) ([]entity.Stock, error) {
	stocks, err := u.stocks.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	out := stocks[:0:0]
	for _, s := range stocks {
		if s.Sector == sector {
			out = append(out, s)
		}
	}
	return out, nil
}

func truncate(stocks []entity.Stock, n int) []entity.Stock {
	if len(stocks) > n {
		return stocks[:n]
	}
	return stocks
}
