package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"stockradar/internal/feature/charts/usecase"
	"stockradar/internal/feature/snapshot/domain/entity"
)

var ErrDB = errors.New("database error")

// pngMagic is the PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// mockSnapshotProvider is a mock implementation of the SnapshotProvider
// interface.
type mockSnapshotProvider struct {
	GetSnapshotFunc func(ctx context.Context) ([]entity.Stock, error)
}

func (m *mockSnapshotProvider) GetSnapshot(ctx context.Context) ([]entity.Stock, error) {
	return m.GetSnapshotFunc(ctx)
}

func fixedProvider() *mockSnapshotProvider {
	return &mockSnapshotProvider{
		GetSnapshotFunc: func(ctx context.Context) ([]entity.Stock, error) {
			return []entity.Stock{
				{Ticker: "NVDA", RuleOf40: 115, OperatingMargin: 55, RevenueGrowth: 60},
				{Ticker: "AAPL", RuleOf40: 38, OperatingMargin: 30, RevenueGrowth: 8},
				{Ticker: "TSLA", RuleOf40: 25, OperatingMargin: -20, RevenueGrowth: 45},
			}, nil
		},
	}
}

func TestChartUsecase_RuleOf40Leaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("renders a PNG", func(t *testing.T) {
		uc := usecase.NewChartUsecase(fixedProvider())
		png, err := uc.RuleOf40Leaderboard(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(png, pngMagic) {
			t.Error("output is not a PNG")
		}
	})

	t.Run("empty snapshot is a sentinel error", func(t *testing.T) {
		provider := &mockSnapshotProvider{
			GetSnapshotFunc: func(ctx context.Context) ([]entity.Stock, error) { return nil, nil },
		}
		_, err := usecase.NewChartUsecase(provider).RuleOf40Leaderboard(ctx, 10)
		if !errors.Is(err, usecase.ErrEmptySnapshot) {
			t.Fatalf("expected ErrEmptySnapshot, got %v", err)
		}
	})

	t.Run("propagates snapshot errors", func(t *testing.T) {
		provider := &mockSnapshotProvider{
			GetSnapshotFunc: func(ctx context.Context) ([]entity.Stock, error) { return nil, ErrDB },
		}
		if _, err := usecase.NewChartUsecase(provider).RuleOf40Leaderboard(ctx, 10); !errors.Is(err, ErrDB) {
			t.Fatalf("expected %v, got %v", ErrDB, err)
		}
	})
}

func TestChartUsecase_Frontier(t *testing.T) {
	ctx := context.Background()

	t.Run("renders a PNG", func(t *testing.T) {
		uc := usecase.NewChartUsecase(fixedProvider())
		png, err := uc.Frontier(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(png, pngMagic) {
			t.Error("output is not a PNG")
		}
	})

	t.Run("empty snapshot is a sentinel error", func(t *testing.T) {
		provider := &mockSnapshotProvider{
			GetSnapshotFunc: func(ctx context.Context) ([]entity.Stock, error) { return nil, nil },
		}
		if _, err := usecase.NewChartUsecase(provider).Frontier(ctx); !errors.Is(err, usecase.ErrEmptySnapshot) {
			t.Fatalf("expected ErrEmptySnapshot, got %v", err)
		}
	})
}
