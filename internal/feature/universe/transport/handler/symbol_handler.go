// Package handler provides the HTTP handlers for the universe feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockradar/internal/api"
	"stockradar/internal/feature/universe/domain/entity"
)

// SymbolUsecase defines the universe operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// symbolItem is the JSON shape of one universe entry.
type symbolItem struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name,omitempty"`
	Sector string `json:"sector"`
}

// SymbolHandler serves the ticker universe endpoint.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a new SymbolHandler.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List returns the active ticker universe.
//
// GET /api/symbols
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]symbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, symbolItem{Ticker: s.Ticker, Name: s.Name, Sector: s.Sector})
	}
	c.JSON(http.StatusOK, out)
}
