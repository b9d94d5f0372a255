package delivery

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{query.ErrNotFound, http.StatusNotFound},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidPrice, http.StatusBadRequest},
	{domain.ErrFeeTooHigh, http.StatusBadRequest},
	{domain.ErrNothingToWithdraw, http.StatusBadRequest},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	{domain.ErrInvalidSignature, http.StatusBadRequest},
	{domain.ErrBalanceOverflow, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusForbidden},
	{domain.ErrNotOwner, http.StatusForbidden},
	{domain.ErrNotApproved, http.StatusForbidden},
	{domain.ErrSelfPurchase, http.StatusForbidden},
	{domain.ErrListingInactive, http.StatusConflict},
	{domain.ErrReentrantCall, http.StatusConflict},
	{domain.ErrSellerNoLongerOwnsAsset, http.StatusConflict},
	{domain.ErrAssetAlreadyExists, http.StatusConflict},
	{domain.ErrInsufficientPayment, http.StatusPaymentRequired},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
	{domain.ErrRefundFailed, http.StatusBadGateway},
	{domain.ErrTransferFailed, http.StatusBadGateway},
}

// StatusOf maps an error returned by a usecase to its http status
func StatusOf(err error) int {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	for _, e := range errStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// MakeErrResp responds with the status err maps to
func MakeErrResp(c echo.Context, err error) error {
	return MakeJsonResp(c, StatusOf(err), err)
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
