package httpserver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/edmetrics/galaxydata/internal/infrastructure/httpserver/middleware"
	tmocks "github.com/edmetrics/galaxydata/test/mocks"
)

func TestRateLimitMiddleware_NilLimiterPassesThrough(t *testing.T) {
	e := echo.New()
	m := middleware.NewRateLimitMiddleware(nil, logrus.New())
	handler := m.Handler()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_DeniedReturns429(t *testing.T) {
	e := echo.New()
	limiter := &tmocks.RateLimiterServiceMock{
		AllowFn: func(ctx context.Context, clientKey string) (bool, int, int, time.Time, error) {
			return false, 0, 10, time.Unix(1000, 0), nil
		},
	}
	m := middleware.NewRateLimitMiddleware(limiter, logrus.New())
	handler := m.Handler()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusTooManyRequests, htErr.Code)
	require.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitMiddleware_FailsOpenOnLimiterError(t *testing.T) {
	e := echo.New()
	limiter := &tmocks.RateLimiterServiceMock{
		AllowFn: func(ctx context.Context, clientKey string) (bool, int, int, time.Time, error) {
			return true, 0, 10, time.Unix(1000, 0), errors.New("redis down")
		},
	}
	m := middleware.NewRateLimitMiddleware(limiter, logrus.New())
	handler := m.Handler()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
