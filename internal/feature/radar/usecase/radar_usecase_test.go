package usecase_test

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"stockradar/internal/feature/radar/physics"
	"stockradar/internal/feature/radar/usecase"
	"stockradar/internal/feature/snapshot/domain/entity"
)

var ErrDB = errors.New("database error")

// mockSnapshotProvider is a mock implementation of the SnapshotProvider
// interface.
type mockSnapshotProvider struct {
	GetSnapshotFunc func(ctx context.Context) ([]entity.Stock, error)
}

func (m *mockSnapshotProvider) GetSnapshot(ctx context.Context) ([]entity.Stock, error) {
	return m.GetSnapshotFunc(ctx)
}

func snapshot() []entity.Stock {
	fetchedAt := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	return []entity.Stock{
		{
			Ticker: "AAPL", ChangePct: 2.5, RuleOf40: 65, MarketCap: 3e12,
			Volume: 50_000_000, DebtToEquity: 20, Volatility: 25,
			RevenueGrowth: 8, OperatingMargin: 57, MonthChange: 5,
			FetchedAt: fetchedAt,
		},
		{
			Ticker: "TSLA", ChangePct: -3.2, RuleOf40: 25, MarketCap: 8e11,
			Volume: 120_000_000, DebtToEquity: 150, Volatility: 65,
			RevenueGrowth: 45, OperatingMargin: -20, MonthChange: -10,
			FetchedAt: fetchedAt,
		},
	}
}

func fixedProvider() *mockSnapshotProvider {
	return &mockSnapshotProvider{
		GetSnapshotFunc: func(ctx context.Context) ([]entity.Stock, error) {
			return snapshot(), nil
		},
	}
}

func TestRadarUsecase_Frame(t *testing.T) {
	ctx := context.Background()

	t.Run("builds an aligned frame from the snapshot", func(t *testing.T) {
		uc := usecase.NewRadarUsecase(fixedProvider())
		frame, err := uc.Frame(ctx, physics.ModeValue, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(frame.Bubbles) != 2 || len(frame.Stocks) != 2 {
			t.Fatalf("frame has %d bubbles / %d stocks, want 2 / 2", len(frame.Bubbles), len(frame.Stocks))
		}
		for i := range frame.Bubbles {
			if frame.Bubbles[i].Ticker != frame.Stocks[i].Ticker {
				t.Errorf("bubble %d is %s but stock is %s", i, frame.Bubbles[i].Ticker, frame.Stocks[i].Ticker)
			}
		}
		if !frame.FetchedAt.Equal(snapshot()[0].FetchedAt) {
			t.Errorf("FetchedAt = %v, want snapshot time", frame.FetchedAt)
		}
	})

	t.Run("same snapshot and parameters give an identical frame", func(t *testing.T) {
		uc := usecase.NewRadarUsecase(fixedProvider())
		a, err := uc.Frame(ctx, physics.ModeValue, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := uc.Frame(ctx, physics.ModeValue, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Error("frames for the same stored snapshot must be identical")
		}
	})

	t.Run("bubbles stay inside the field", func(t *testing.T) {
		uc := usecase.NewRadarUsecase(fixedProvider())
		frame, err := uc.Frame(ctx, physics.ModeValue, usecase.MaxSteps)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, b := range frame.Bubbles {
			if b.X < 5 || b.X > 95 || b.Y < 5 || b.Y > 95 {
				t.Errorf("%s escaped the field: (%v, %v)", b.Ticker, b.X, b.Y)
			}
		}
	})

	t.Run("step count above the cap is clamped", func(t *testing.T) {
		uc := usecase.NewRadarUsecase(fixedProvider())
		capped, err := uc.Frame(ctx, physics.ModeNone, usecase.MaxSteps)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		over, err := uc.Frame(ctx, physics.ModeNone, usecase.MaxSteps+500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(capped.Bubbles, over.Bubbles) {
			t.Error("steps beyond MaxSteps must behave like MaxSteps")
		}
	})

	t.Run("zero steps keeps the initial placement", func(t *testing.T) {
		uc := usecase.NewRadarUsecase(fixedProvider())
		frame, err := uc.Frame(ctx, physics.ModeNone, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Without integration the velocity from Compute is untouched.
		vx, vy := physics.Velocity(snapshot()[0].RevenueGrowth, snapshot()[0].MonthChange)
		if frame.Bubbles[0].VX != vx || frame.Bubbles[0].VY != vy {
			t.Errorf("velocity = (%v, %v), want untouched (%v, %v)", frame.Bubbles[0].VX, frame.Bubbles[0].VY, vx, vy)
		}
	})

	t.Run("empty snapshot yields an empty frame, not an error", func(t *testing.T) {
		provider := &mockSnapshotProvider{
			GetSnapshotFunc: func(ctx context.Context) ([]entity.Stock, error) { return nil, nil },
		}
		frame, err := usecase.NewRadarUsecase(provider).Frame(ctx, physics.ModeValue, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(frame.Bubbles) != 0 {
			t.Errorf("got %d bubbles, want 0", len(frame.Bubbles))
		}
	})

	t.Run("propagates snapshot errors", func(t *testing.T) {
		provider := &mockSnapshotProvider{
			GetSnapshotFunc: func(ctx context.Context) ([]entity.Stock, error) { return nil, ErrDB },
		}
		if _, err := usecase.NewRadarUsecase(provider).Frame(ctx, physics.ModeValue, 1); !errors.Is(err, ErrDB) {
			t.Fatalf("expected %v, got %v", ErrDB, err)
		}
	})
}

func TestRadarUsecase_RuleOf40(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewRadarUsecase(fixedProvider())

	chart, err := uc.RuleOf40(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if chart.Threshold != 40 {
		t.Errorf("Threshold = %v, want 40", chart.Threshold)
	}
	if math.Abs(chart.Slope-(-41.0/39.0)) > 1e-12 {
		t.Errorf("Slope = %v, want -41/39", chart.Slope)
	}
	if len(chart.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(chart.Points))
	}

	aapl := chart.Points[0]
	if aapl.Ticker != "AAPL" {
		t.Fatalf("first point is %s, want AAPL", aapl.Ticker)
	}
	wantIntercept := 8 - (-41.0/39.0)*57
	if math.Abs(aapl.Intercept-wantIntercept) > 1e-9 {
		t.Errorf("Intercept = %v, want %v", aapl.Intercept, wantIntercept)
	}
	// 3e12 / 5e10 = 60, right at the marker cap
	if aapl.MarkerSize != 60 {
		t.Errorf("MarkerSize = %v, want 60", aapl.MarkerSize)
	}
	// 8e11 / 5e10 = 16
	if chart.Points[1].MarkerSize != 16 {
		t.Errorf("MarkerSize = %v, want 16", chart.Points[1].MarkerSize)
	}
}
