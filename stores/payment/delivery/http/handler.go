package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/payment"
	"github.com/x-xyz/marketplace/middleware"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	payment payment.UseCase
}

func New(e *echo.Echo, paymentUC payment.UseCase, authMw *authMiddleware.AuthMiddleware) {
	h := &handler{
		payment: paymentUC,
	}
	g := e.Group("/accounts")
	g.GET("/:address/balance", h.balance, middleware.IsValidAddress("address"))
	g.POST("/:address/credit", h.credit, middleware.IsValidAddress("address"), authMw.Auth())
}

// balance
//
//	@Summary	Ledger balance
//	@Tags		accounts
//	@Produce	json
//	@Param		address	path		string	true	"account address"
//	@Success	200		{object}	object{data=payment.Balance}
//	@Router		/accounts/{address}/balance [get]
func (h *handler) balance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address")).ToLower()
	amount, err := h.payment.BalanceOf(ctx, address)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, payment.Balance{Address: address, Amount: amount})
}

// credit
//
//	@Summary		Fund an account
//	@Description	Owner only
//	@Tags			accounts
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			address	path	string				true	"account address"
//	@Param			params	body	http.credit.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Router			/accounts/{address}/credit [post]
func (h *handler) credit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Amount uint64 `json:"amount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.payment.Credit(ctx, authMiddleware.Caller(c), domain.Address(c.Param("address")), p.Amount); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
