package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketplace/domain"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidPrice, http.StatusBadRequest},
		{domain.ErrFeeTooHigh, http.StatusBadRequest},
		{domain.ErrUnauthorized, http.StatusForbidden},
		{domain.ErrNotOwner, http.StatusForbidden},
		{domain.ErrNotApproved, http.StatusForbidden},
		{domain.ErrSelfPurchase, http.StatusForbidden},
		{domain.ErrListingInactive, http.StatusConflict},
		{domain.ErrReentrantCall, http.StatusConflict},
		{domain.ErrInsufficientPayment, http.StatusPaymentRequired},
		{xerrors.Errorf("collect: %w", domain.ErrInsufficientFunds), http.StatusPaymentRequired},
		{domain.ErrNotFound, http.StatusNotFound},
		{xerrors.Errorf("asset: %w", domain.ErrTransferFailed), http.StatusBadGateway},
		{xerrors.Errorf("refund: %w", domain.ErrRefundFailed), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, StatusOf(c.err), c.err.Error())
	}

	type params struct {
		Price uint64 `validate:"required"`
	}
	err := validator.New().Struct(&params{})
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
}

func TestMakeErrResp(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, MakeErrResp(c, domain.ErrListingInactive))
	assert.Equal(t, http.StatusConflict, rec.Code)

	res := JsonResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, JsonResponseStatusFail, res.Status)
	assert.Equal(t, domain.ErrListingInactive.Error(), res.Data)
}
