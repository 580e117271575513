// Package handler provides the HTTP handlers for the charts feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockradar/internal/api"
	"stockradar/internal/feature/charts/usecase"
)

// ChartUsecase defines the chart rendering operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ChartUsecase interface {
	RuleOf40Leaderboard(ctx context.Context, limit int) ([]byte, error)
	Frontier(ctx context.Context) ([]byte, error)
}

// ChartHandler serves rendered PNG charts.
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// RuleOf40 serves the leaderboard PNG.
//
// GET /api/charts/rule40.png?limit=15
func (h *ChartHandler) RuleOf40(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	png, err := h.uc.RuleOf40Leaderboard(c.Request.Context(), limit)
	h.respond(c, png, err)
}

// Frontier serves the classic frontier PNG.
//
// GET /api/charts/frontier.png
func (h *ChartHandler) Frontier(c *gin.Context) {
	png, err := h.uc.Frontier(c.Request.Context())
	h.respond(c, png, err)
}

func (h *ChartHandler) respond(c *gin.Context, png []byte, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptySnapshot):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	default:
		c.Data(http.StatusOK, "image/png", png)
	}
}
