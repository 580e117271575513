package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stockradar/internal/feature/auth/transport/handler"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, email, password string) error
	LoginFunc  func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, password string) error {
	return m.SignupFunc(ctx, email, password)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	return m.LoginFunc(ctx, email, password)
}

func newRouter(uc handler.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewAuthHandler(uc)
	router := gin.New()
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("creates a user", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, email, password string) error {
				assert.Equal(t, "user@example.com", email)
				assert.Equal(t, "long enough password", password)
				return nil
			},
		}
		w := post(newRouter(uc), "/signup", `{"email":"user@example.com","password":"long enough password"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"user created"}`, w.Body.String())
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, email, password string) error {
				t.Fatal("Signup should not be called")
				return nil
			},
		}
		w := post(newRouter(uc), "/signup", `{"email":"not-an-email","password":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignupFunc: func(ctx context.Context, email, password string) error {
				return errors.New("UNIQUE constraint failed: users.email")
			},
		}
		w := post(newRouter(uc), "/signup", `{"email":"user@example.com","password":"long enough password"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns a token", func(t *testing.T) {
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
		}
		w := post(newRouter(uc), "/login", `{"email":"user@example.com","password":"valid password"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"signed-token"}`, w.Body.String())
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		uc := &mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("invalid email or password")
			},
		}
		w := post(newRouter(uc), "/login", `{"email":"user@example.com","password":"wrong password"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
