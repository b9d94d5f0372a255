package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	mDomain "github.com/x-xyz/marketplace/domain/mocks"
)

func TestAuth(t *testing.T) {
	auth := &mDomain.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "good").Return(domain.Address("0xabc"), nil)
	auth.On("ParseToken", mock.Anything, "bad").Return(domain.Address(""), errors.New("invalid"))

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, string(Caller(c)))
	}, New(auth).Auth())

	cases := []struct {
		header string
		code   int
		body   string
	}{
		{"Bearer good", http.StatusOK, "0xabc"},
		{"Bearer bad", http.StatusUnauthorized, ""},
		{"", http.StatusBadRequest, ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tc.header != "" {
			req.Header.Set(echo.HeaderAuthorization, tc.header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, tc.code, rec.Code, tc.header)
		if tc.body != "" {
			assert.Equal(t, tc.body, rec.Body.String())
		}
	}
}
