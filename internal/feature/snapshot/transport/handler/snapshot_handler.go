// Package handler provides the HTTP handlers for the snapshot feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stockradar/internal/api"
	"stockradar/internal/feature/snapshot/domain/entity"
)

// SnapshotUsecase defines the snapshot read operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type SnapshotUsecase interface {
	GetSnapshot(ctx context.Context) ([]entity.Stock, error)
	TopGainers(ctx context.Context, limit int) ([]entity.Stock, error)
	MostTraded(ctx context.Context, limit int) ([]entity.Stock, error)
	BestValue(ctx context.Context, minRuleOf40 float64, limit int) ([]entity.Stock, error)
	BySector(ctx context.Context, sector string) ([]entity.Stock, error)
}

// Refresher triggers an on-demand snapshot refresh.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// SnapshotHandler serves the snapshot and screen endpoints.
type SnapshotHandler struct {
	uc        SnapshotUsecase
	refresher Refresher
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(uc SnapshotUsecase, refresher Refresher) *SnapshotHandler {
	return &SnapshotHandler{uc: uc, refresher: refresher}
}

// GetSnapshot returns the full latest snapshot.
//
// GET /api/snapshot
func (h *SnapshotHandler) GetSnapshot(c *gin.Context) {
	stocks, err := h.uc.GetSnapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponses(stocks))
}

// Gainers returns the top daily gainers.
//
// GET /api/screens/gainers?limit=20
func (h *SnapshotHandler) Gainers(c *gin.Context) {
	stocks, err := h.uc.TopGainers(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponses(stocks))
}

// MostTraded returns the highest-volume stocks.
//
// GET /api/screens/most-traded?limit=20
func (h *SnapshotHandler) MostTraded(c *gin.Context) {
	stocks, err := h.uc.MostTraded(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponses(stocks))
}

// BestValue returns stocks passing the Rule of 40 threshold.
//
// GET /api/screens/value?min=40&limit=20
func (h *SnapshotHandler) BestValue(c *gin.Context) {
	min, _ := strconv.ParseFloat(c.DefaultQuery("min", "0"), 64)
	stocks, err := h.uc.BestValue(c.Request.Context(), min, queryInt(c, "limit"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponses(stocks))
}

// BySector returns the snapshot rows for one sector.
//
// GET /api/screens/sector/:name
func (h *SnapshotHandler) BySector(c *gin.Context) {
	stocks, err := h.uc.BySector(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponses(stocks))
}

// Refresh forces an immediate snapshot ingest instead of waiting for the
// next scheduled run.
//
// POST /api/refresh
func (h *SnapshotHandler) Refresh(c *gin.Context) {
	if err := h.refresher.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "snapshot refreshed"})
}

// queryInt parses an integer query parameter; malformed values become 0
// and are normalized by the usecase.
func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.DefaultQuery(name, "0"))
	return n
}

func toResponses(stocks []entity.Stock) []api.StockResponse {
	out := make([]api.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, api.StockResponse{
			Ticker:          s.Ticker,
			Sector:          s.Sector,
			Price:           s.Price,
			ChangePct:       s.ChangePct,
			WeekChange:      s.WeekChange,
			MonthChange:     s.MonthChange,
			Volume:          s.Volume,
			MarketCap:       s.MarketCap,
			OperatingMargin: s.OperatingMargin,
			RevenueGrowth:   s.RevenueGrowth,
			RuleOf40:        s.RuleOf40,
			PERatio:         s.PERatio,
			Beta:            s.Beta,
			Volatility:      s.Volatility,
			DebtToEquity:    s.DebtToEquity,
			FetchedAt:       s.FetchedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
