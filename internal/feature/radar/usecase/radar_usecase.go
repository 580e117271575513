// Package usecase builds radar frames: it composes the stored snapshot
// with the physics mapping into the data the dashboard renders.
package usecase

import (
	"context"
	"time"

	"stockradar/internal/feature/radar/physics"
	"stockradar/internal/feature/snapshot/domain/entity"
)

const (
	// FieldSize is the side length of the square radar field.
	FieldSize = 100.0
	// DefaultStrength is the attraction pull applied per frame.
	DefaultStrength = 0.03
	// DefaultSteps is the number of physics steps when the client does not
	// ask for more.
	DefaultSteps = 1
	// MaxSteps caps how much simulation a single request may demand.
	MaxSteps = 120

	// stepDT is the integration time step.
	stepDT = 0.3
	// fieldMargin keeps bounced bubbles away from the very edge.
	fieldMargin = 5.0
)

// RuleOf40Slope is the slope of the classic Rule of 40 frontier line
// drawn through (0, 40) and (39, -1).
const RuleOf40Slope = -41.0 / 39.0

// RuleOf40Threshold is the frontier's growth-axis intercept.
const RuleOf40Threshold = 40.0

// SnapshotProvider hands out the latest market snapshot.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider.
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context) ([]entity.Stock, error)
}

// Frame is one rendered state of the radar: the snapshot rows and their
// visual tuples, index-aligned.
type Frame struct {
	FetchedAt time.Time
	Mode      physics.Mode
	Stocks    []entity.Stock
	Bubbles   []physics.Bubble
}

// RuleOf40Point is one stock on the classic margin-vs-growth scatter.
type RuleOf40Point struct {
	Ticker     string  `json:"ticker"`
	Margin     float64 `json:"operating_margin"`
	Growth     float64 `json:"revenue_growth"`
	MarketCap  float64 `json:"market_cap"`
	MarkerSize float64 `json:"marker_size"`
	// Intercept is where a frontier-parallel line through this stock
	// crosses the growth axis; above RuleOf40Threshold means the stock
	// clears the rule.
	Intercept float64 `json:"intercept"`
}

// RuleOf40Chart is the full classic view: the frontier parameters and
// every stock's position relative to it.
type RuleOf40Chart struct {
	Slope     float64         `json:"slope"`
	Threshold float64         `json:"threshold"`
	Points    []RuleOf40Point `json:"points"`
}

// RadarUsecase derives render-ready structures from the snapshot.
type RadarUsecase struct {
	snapshot SnapshotProvider
}

// NewRadarUsecase creates a new RadarUsecase.
func NewRadarUsecase(snapshot SnapshotProvider) *RadarUsecase {
	return &RadarUsecase{snapshot: snapshot}
}

// Frame computes a radar frame for the latest snapshot. The layout is
// seeded by the snapshot itself, so repeating the call with the same
// stored data and parameters yields an identical frame.
//
// mode selects the attraction metric (unknown modes disable attraction);
// steps is clamped to [0, MaxSteps] and defaults to DefaultSteps when
// negative.
func (u *RadarUsecase) Frame(ctx context.Context, mode physics.Mode, steps int) (Frame, error) {
	stocks, err := u.snapshot.GetSnapshot(ctx)
	if err != nil {
		return Frame{}, err
	}

	frame := Frame{Mode: mode, Stocks: stocks, Bubbles: []physics.Bubble{}}
	if len(stocks) == 0 {
		return frame, nil
	}
	frame.FetchedAt = stocks[0].FetchedAt

	if steps < 0 {
		steps = DefaultSteps
	}
	if steps > MaxSteps {
		steps = MaxSteps
	}

	bubbles := physics.Compute(stocks)
	physics.Place(bubbles, FieldSize, FieldSize, physics.Seed(stocks))
	physics.Attract(bubbles, physics.Weights(stocks, mode), DefaultStrength)

	bounds := physics.Bounds{
		MinX: fieldMargin, MaxX: FieldSize - fieldMargin,
		MinY: fieldMargin, MaxY: FieldSize - fieldMargin,
	}
	for i := 0; i < steps; i++ {
		physics.Step(bubbles, stepDT, bounds)
	}

	frame.Bubbles = bubbles
	return frame, nil
}

// RuleOf40 computes the classic margin-vs-growth view of the snapshot.
func (u *RadarUsecase) RuleOf40(ctx context.Context) (RuleOf40Chart, error) {
	stocks, err := u.snapshot.GetSnapshot(ctx)
	if err != nil {
		return RuleOf40Chart{}, err
	}

	chart := RuleOf40Chart{
		Slope:     RuleOf40Slope,
		Threshold: RuleOf40Threshold,
		Points:    make([]RuleOf40Point, 0, len(stocks)),
	}
	for _, s := range stocks {
		chart.Points = append(chart.Points, RuleOf40Point{
			Ticker:     s.Ticker,
			Margin:     s.OperatingMargin,
			Growth:     s.RevenueGrowth,
			MarketCap:  s.MarketCap,
			MarkerSize: markerSize(s.MarketCap),
			Intercept:  s.RevenueGrowth - RuleOf40Slope*s.OperatingMargin,
		})
	}
	return chart, nil
}

// markerSize scales market cap into a 10-60 pixel marker, 50 billion USD
// per pixel.
func markerSize(marketCap float64) float64 {
	size := marketCap / 5e10
	if size < 10 {
		return 10
	}
	if size > 60 {
		return 60
	}
	return size
}
