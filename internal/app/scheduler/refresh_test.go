package scheduler

import (
	"context"
	"errors"
	"testing"
)

// mockTickerLister is a mock implementation of the TickerLister interface.
type mockTickerLister struct {
	ListActiveTickersFunc func(ctx context.Context) ([]string, error)
}

func (m *mockTickerLister) ListActiveTickers(ctx context.Context) ([]string, error) {
	return m.ListActiveTickersFunc(ctx)
}

// mockIngester is a mock implementation of the Ingester interface.
type mockIngester struct {
	IngestAllFunc func(ctx context.Context, tickers []string) error
}

func (m *mockIngester) IngestAll(ctx context.Context, tickers []string) error {
	return m.IngestAllFunc(ctx, tickers)
}

func TestRefreshService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("ingests the active universe", func(t *testing.T) {
		universe := &mockTickerLister{
			ListActiveTickersFunc: func(ctx context.Context) ([]string, error) {
				return []string{"AAPL", "MSFT"}, nil
			},
		}
		var got []string
		ingester := &mockIngester{
			IngestAllFunc: func(ctx context.Context, tickers []string) error {
				got = tickers
				return nil
			},
		}

		svc := NewRefreshService(universe, ingester)
		if err := svc.Refresh(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0] != "AAPL" || got[1] != "MSFT" {
			t.Errorf("unexpected tickers: %v", got)
		}
	})

	t.Run("empty universe is an error", func(t *testing.T) {
		universe := &mockTickerLister{
			ListActiveTickersFunc: func(ctx context.Context) ([]string, error) {
				return nil, nil
			},
		}
		ingester := &mockIngester{
			IngestAllFunc: func(ctx context.Context, tickers []string) error {
				t.Fatal("IngestAll should not be called")
				return nil
			},
		}

		if err := NewRefreshService(universe, ingester).Refresh(ctx); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("propagates universe errors", func(t *testing.T) {
		listErr := errors.New("database error")
		universe := &mockTickerLister{
			ListActiveTickersFunc: func(ctx context.Context) ([]string, error) {
				return nil, listErr
			},
		}
		ingester := &mockIngester{}

		if err := NewRefreshService(universe, ingester).Refresh(ctx); !errors.Is(err, listErr) {
			t.Errorf("expected %v, got %v", listErr, err)
		}
	})

	t.Run("propagates ingest errors", func(t *testing.T) {
		ingestErr := errors.New("upstream down")
		universe := &mockTickerLister{
			ListActiveTickersFunc: func(ctx context.Context) ([]string, error) {
				return []string{"AAPL"}, nil
			},
		}
		ingester := &mockIngester{
			IngestAllFunc: func(ctx context.Context, tickers []string) error {
				return ingestErr
			},
		}

		if err := NewRefreshService(universe, ingester).Refresh(ctx); !errors.Is(err, ingestErr) {
			t.Errorf("expected %v, got %v", ingestErr, err)
		}
	})
}
