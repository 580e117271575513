// Package usecase implements the business logic for universe operations.
package usecase

import (
	"context"

	"stockradar/internal/feature/universe/domain/entity"
)

// SymbolRepository abstracts the persistence layer for the ticker universe.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveTickers(ctx context.Context) ([]string, error)
}

// SymbolUsecase provides read access to the ticker universe.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns every active symbol in display order.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// ListActiveTickers returns only the ticker codes, in display order.
// This feeds the ingest loop.
func (u *SymbolUsecase) ListActiveTickers(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveTickers(ctx)
}
