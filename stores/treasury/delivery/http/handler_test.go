package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	mDomain "github.com/x-xyz/marketplace/domain/mocks"
	"github.com/x-xyz/marketplace/domain/treasury"
	mTreasury "github.com/x-xyz/marketplace/domain/treasury/mocks"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

func TestTreasuryHandler(t *testing.T) {
	owner := domain.Address("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")
	stranger := domain.Address("0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2")

	auth := &mDomain.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "owner").Return(owner, nil)
	auth.On("ParseToken", mock.Anything, "stranger").Return(stranger, nil)

	uc := &mTreasury.UseCase{}
	uc.On("FeeConfig", mock.Anything).Return(&treasury.FeeConfig{FeeRateBps: 250, Balance: 25}, nil)
	uc.On("Owner").Return(owner)
	uc.On("SetFeeRate", mock.Anything, owner, uint64(1500)).Return(domain.ErrFeeTooHigh)
	uc.On("SetFeeRate", mock.Anything, stranger, uint64(100)).Return(domain.ErrUnauthorized)
	uc.On("Withdraw", mock.Anything, owner).Return(uint64(25), nil)

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, uc, authMiddleware.New(auth))

	cases := []struct {
		method string
		path   string
		token  string
		body   string
		code   int
		resp   string
	}{
		{http.MethodGet, "/treasury", "", "", http.StatusOK, `"feeRateBps":250`},
		{http.MethodGet, "/treasury", "", "", http.StatusOK, `"maxFeeRateBps":1000`},
		{http.MethodPut, "/treasury/fee", "owner", `{"feeRateBps":1500}`, http.StatusBadRequest, "fee too high"},
		{http.MethodPut, "/treasury/fee", "stranger", `{"feeRateBps":100}`, http.StatusForbidden, "unauthorized"},
		{http.MethodPost, "/treasury/withdraw", "owner", "", http.StatusOK, `"amount":25`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if tc.token != "" {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+tc.token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, tc.code, rec.Code, tc.path)
		assert.Contains(t, rec.Body.String(), tc.resp, tc.path)
	}
}
