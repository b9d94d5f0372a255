package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	hcdomain "github.com/x-xyz/marketplace/domain/healthcheck"
	"github.com/x-xyz/marketplace/domain/healthcheck/mocks"
	"github.com/x-xyz/marketplace/stores/healthcheck/usecase"
)

func serve(t *testing.T, repo hcdomain.HealthCheckRepo) (int, delivery.JsonResponse) {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, usecase.New(repo))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	res := delivery.JsonResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return rec.Code, res
}

func TestCheck(t *testing.T) {
	repo := &mocks.HealthCheckRepo{}
	repo.On("PingDB", mock.Anything).Return(nil)
	repo.On("PingCache", mock.Anything).Return(hcdomain.ErrDisabled)
	code, res := serve(t, repo)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, map[string]interface{}{"mongo": "ok", "redis": "disabled"}, res.Data)

	repo = &mocks.HealthCheckRepo{}
	repo.On("PingDB", mock.Anything).Return(errors.New("no primary"))
	repo.On("PingCache", mock.Anything).Return(nil)
	code, res = serve(t, repo)
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Equal(t, delivery.JsonResponseStatusFail, res.Status)
	require.Equal(t, map[string]interface{}{"mongo": "no primary", "redis": "ok"}, res.Data)
}
