package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"stockradar/internal/feature/universe/domain/entity"
	"stockradar/internal/feature/universe/usecase"
)

var ErrDB = errors.New("database error")

// mockSymbolRepository is a mock implementation of the SymbolRepository
// interface.
type mockSymbolRepository struct {
	ListActiveFunc        func(ctx context.Context) ([]entity.Symbol, error)
	ListActiveTickersFunc func(ctx context.Context) ([]string, error)
}

func (m *mockSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	return m.ListActiveFunc(ctx)
}

func (m *mockSymbolRepository) ListActiveTickers(ctx context.Context) ([]string, error) {
	return m.ListActiveTickersFunc(ctx)
}

func TestSymbolUsecase_ListActiveSymbols(t *testing.T) {
	expected := []entity.Symbol{
		{Ticker: "AAPL", Sector: "Technology", IsActive: true},
		{Ticker: "XOM", Sector: "Energy", IsActive: true},
	}
	repo := &mockSymbolRepository{
		ListActiveFunc: func(ctx context.Context) ([]entity.Symbol, error) { return expected, nil },
	}

	got, err := usecase.NewSymbolUsecase(repo).ListActiveSymbols(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %v, want %v", got, expected)
	}
}

func TestSymbolUsecase_ListActiveTickers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockSymbolRepository{
			ListActiveTickersFunc: func(ctx context.Context) ([]string, error) {
				return []string{"AAPL", "XOM"}, nil
			},
		}
		got, err := usecase.NewSymbolUsecase(repo).ListActiveTickers(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, []string{"AAPL", "XOM"}) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := &mockSymbolRepository{
			ListActiveTickersFunc: func(ctx context.Context) ([]string, error) { return nil, ErrDB },
		}
		if _, err := usecase.NewSymbolUsecase(repo).ListActiveTickers(context.Background()); !errors.Is(err, ErrDB) {
			t.Fatalf("expected %v, got %v", ErrDB, err)
		}
	})
}
