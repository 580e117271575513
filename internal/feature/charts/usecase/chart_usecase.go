// Package usecase renders server-side PNG charts of the snapshot for
// clients that want a ready-made image instead of the JSON frame.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	charts "github.com/vicanso/go-charts/v2"

	"stockradar/internal/feature/snapshot/domain/entity"
)

// ErrEmptySnapshot is returned when there is nothing to draw yet.
var ErrEmptySnapshot = errors.New("charts: snapshot is empty")

const (
	// DefaultLeaderboardSize is the number of bars on the leaderboard.
	DefaultLeaderboardSize = 15
	// MaxLeaderboardSize caps the leaderboard width.
	MaxLeaderboardSize = 30
)

// SnapshotProvider hands out the latest market snapshot.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider.
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context) ([]entity.Stock, error)
}

// ChartUsecase renders snapshot charts to PNG.
type ChartUsecase struct {
	snapshot SnapshotProvider
}

// NewChartUsecase creates a new ChartUsecase.
func NewChartUsecase(snapshot SnapshotProvider) *ChartUsecase {
	return &ChartUsecase{snapshot: snapshot}
}

// RuleOf40Leaderboard renders the top Rule of 40 scores as a bar chart.
func (u *ChartUsecase) RuleOf40Leaderboard(ctx context.Context, limit int) ([]byte, error) {
	stocks, err := u.snapshot.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(stocks) == 0 {
		return nil, ErrEmptySnapshot
	}

	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		limit = MaxLeaderboardSize
	}

	sort.SliceStable(stocks, func(i, j int) bool {
		return stocks[i].RuleOf40 > stocks[j].RuleOf40
	})
	if len(stocks) > limit {
		stocks = stocks[:limit]
	}

	tickers := make([]string, 0, len(stocks))
	scores := make([]float64, 0, len(stocks))
	for _, s := range stocks {
		tickers = append(tickers, s.Ticker)
		scores = append(scores, s.RuleOf40)
	}

	painter, err := charts.BarRender([][]float64{scores},
		charts.TitleTextOptionFunc("Rule of 40 Leaderboard"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: tickers}),
		charts.ThemeOptionFunc(charts.ThemeDark),
	)
	if err != nil {
		return nil, fmt.Errorf("charts: render leaderboard: %w", err)
	}
	return painter.Bytes()
}

// Frontier renders the classic margin-vs-growth view: every stock's
// revenue growth ordered by operating margin, against the Rule of 40
// frontier line (growth = 40 - 41/39 * margin).
func (u *ChartUsecase) Frontier(ctx context.Context) ([]byte, error) {
	stocks, err := u.snapshot.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(stocks) == 0 {
		return nil, ErrEmptySnapshot
	}

	sort.SliceStable(stocks, func(i, j int) bool {
		return stocks[i].OperatingMargin < stocks[j].OperatingMargin
	})

	const slope = -41.0 / 39.0
	labels := make([]string, 0, len(stocks))
	growth := make([]float64, 0, len(stocks))
	frontier := make([]float64, 0, len(stocks))
	for _, s := range stocks {
		labels = append(labels, fmt.Sprintf("%s %.0f%%", s.Ticker, s.OperatingMargin))
		growth = append(growth, s.RevenueGrowth)
		frontier = append(frontier, 40+slope*s.OperatingMargin)
	}

	painter, err := charts.LineRender([][]float64{growth, frontier},
		charts.TitleTextOptionFunc("Rule of 40 Frontier"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag()}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Revenue Growth", "Frontier"}}),
		charts.ThemeOptionFunc(charts.ThemeDark),
	)
	if err != nil {
		return nil, fmt.Errorf("charts: render frontier: %w", err)
	}
	return painter.Bytes()
}
