package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stockradar/internal/feature/charts/transport/handler"
	"stockradar/internal/feature/charts/usecase"
)

// mockChartUsecase is a mock implementation of the ChartUsecase interface.
type mockChartUsecase struct {
	RuleOf40LeaderboardFunc func(ctx context.Context, limit int) ([]byte, error)
	FrontierFunc            func(ctx context.Context) ([]byte, error)
}

func (m *mockChartUsecase) RuleOf40Leaderboard(ctx context.Context, limit int) ([]byte, error) {
	return m.RuleOf40LeaderboardFunc(ctx, limit)
}

func (m *mockChartUsecase) Frontier(ctx context.Context) ([]byte, error) {
	return m.FrontierFunc(ctx)
}

func newRouter(uc handler.ChartUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewChartHandler(uc)
	router := gin.New()
	router.GET("/api/charts/rule40.png", h.RuleOf40)
	router.GET("/api/charts/frontier.png", h.Frontier)
	return router
}

func TestChartHandler_RuleOf40(t *testing.T) {
	t.Run("serves the PNG with the right content type", func(t *testing.T) {
		fake := []byte{0x89, 'P', 'N', 'G', 0}
		uc := &mockChartUsecase{
			RuleOf40LeaderboardFunc: func(ctx context.Context, limit int) ([]byte, error) {
				assert.Equal(t, 7, limit)
				return fake, nil
			},
		}
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/charts/rule40.png?limit=7", nil)
		newRouter(uc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, fake, w.Body.Bytes())
	})

	t.Run("empty snapshot returns 404", func(t *testing.T) {
		uc := &mockChartUsecase{
			RuleOf40LeaderboardFunc: func(ctx context.Context, limit int) ([]byte, error) {
				return nil, usecase.ErrEmptySnapshot
			},
		}
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/charts/rule40.png", nil)
		newRouter(uc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("render failure returns 500", func(t *testing.T) {
		uc := &mockChartUsecase{
			RuleOf40LeaderboardFunc: func(ctx context.Context, limit int) ([]byte, error) {
				return nil, errors.New("render failed")
			},
		}
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/charts/rule40.png", nil)
		newRouter(uc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestChartHandler_Frontier(t *testing.T) {
	fake := []byte{0x89, 'P', 'N', 'G', 1}
	uc := &mockChartUsecase{
		FrontierFunc: func(ctx context.Context) ([]byte, error) { return fake, nil },
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/charts/frontier.png", nil)
	newRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fake, w.Body.Bytes())
}
