// Package handler provides the HTTP handlers for the radar feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stockradar/internal/api"
	"stockradar/internal/feature/radar/physics"
	"stockradar/internal/feature/radar/usecase"
)

// RadarUsecase defines the radar operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type RadarUsecase interface {
	Frame(ctx context.Context, mode physics.Mode, steps int) (usecase.Frame, error)
	RuleOf40(ctx context.Context) (usecase.RuleOf40Chart, error)
}

// RadarHandler serves the radar frame and classic chart endpoints.
type RadarHandler struct {
	uc RadarUsecase
}

// NewRadarHandler creates a new RadarHandler.
func NewRadarHandler(uc RadarUsecase) *RadarHandler {
	return &RadarHandler{uc: uc}
}

// frameBubble is the JSON shape of one bubble, the visual tuple joined
// with the metrics the dashboard shows on hover.
type frameBubble struct {
	physics.Bubble

	Price           float64 `json:"price"`
	ChangePct       float64 `json:"change_pct"`
	RuleOf40        float64 `json:"rule_of_40"`
	OperatingMargin float64 `json:"operating_margin"`
	RevenueGrowth   float64 `json:"revenue_growth"`
	MarketCap       float64 `json:"market_cap"`
	Volume          int64   `json:"volume"`
	Volatility      float64 `json:"volatility"`
}

// frameResponse is the JSON shape of a whole radar frame.
type frameResponse struct {
	FetchedAt string        `json:"fetched_at"`
	Mode      string        `json:"mode"`
	Field     float64       `json:"field"`
	Bubbles   []frameBubble `json:"bubbles"`
}

// GetFrame returns a radar frame for the latest snapshot.
//
// GET /api/radar/frame?mode=value&steps=1
func (h *RadarHandler) GetFrame(c *gin.Context) {
	mode := physics.Mode(c.DefaultQuery("mode", string(physics.ModeValue)))
	steps, err := strconv.Atoi(c.DefaultQuery("steps", strconv.Itoa(usecase.DefaultSteps)))
	if err != nil {
		steps = usecase.DefaultSteps
	}

	frame, err := h.uc.Frame(c.Request.Context(), mode, steps)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := frameResponse{
		Mode:    string(frame.Mode),
		Field:   usecase.FieldSize,
		Bubbles: make([]frameBubble, 0, len(frame.Bubbles)),
	}
	if !frame.FetchedAt.IsZero() {
		out.FetchedAt = frame.FetchedAt.UTC().Format(time.RFC3339)
	}
	for i, b := range frame.Bubbles {
		s := frame.Stocks[i]
		out.Bubbles = append(out.Bubbles, frameBubble{
			Bubble:          b,
			Price:           s.Price,
			ChangePct:       s.ChangePct,
			RuleOf40:        s.RuleOf40,
			OperatingMargin: s.OperatingMargin,
			RevenueGrowth:   s.RevenueGrowth,
			MarketCap:       s.MarketCap,
			Volume:          s.Volume,
			Volatility:      s.Volatility,
		})
	}

	c.JSON(http.StatusOK, out)
}

// GetRuleOf40 returns the classic margin-vs-growth chart data.
//
// GET /api/radar/rule40
func (h *RadarHandler) GetRuleOf40(c *gin.Context) {
	chart, err := h.uc.RuleOf40(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, chart)
}
