package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain/treasury"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	treasury treasury.UseCase
}

func New(e *echo.Echo, treasuryUC treasury.UseCase, authMw *authMiddleware.AuthMiddleware) {
	h := &handler{
		treasury: treasuryUC,
	}
	g := e.Group("/treasury")
	g.GET("", h.get)
	g.PUT("/fee", h.setFeeRate, authMw.Auth())
	g.POST("/withdraw", h.withdraw, authMw.Auth())
}

type feeConfigResp struct {
	FeeRateBps    uint64 `json:"feeRateBps"`
	MaxFeeRateBps uint64 `json:"maxFeeRateBps"`
	Balance       uint64 `json:"balance"`
	Owner         string `json:"owner"`
}

// get
//
//	@Summary	Fee config
//	@Tags		treasury
//	@Produce	json
//	@Success	200	{object}	object{data=http.feeConfigResp}
//	@Router		/treasury [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	cfg, err := h.treasury.FeeConfig(ctx)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, feeConfigResp{
		FeeRateBps:    cfg.FeeRateBps,
		MaxFeeRateBps: treasury.MaxFeeRateBps,
		Balance:       cfg.Balance,
		Owner:         string(h.treasury.Owner()),
	})
}

// setFeeRate
//
//	@Summary		Set fee rate
//	@Description	Owner only, basis points up to 1000
//	@Tags			treasury
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.setFeeRate.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Router			/treasury/fee [put]
func (h *handler) setFeeRate(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		FeeRateBps uint64 `json:"feeRateBps"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.treasury.SetFeeRate(ctx, authMiddleware.Caller(c), p.FeeRateBps); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// withdraw
//
//	@Summary		Withdraw fees
//	@Description	Owner only, pays the whole treasury balance to the owner
//	@Tags			treasury
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	object{data=object{amount=int}}
//	@Failure		400
//	@Failure		403
//	@Router			/treasury/withdraw [post]
func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	amount, err := h.treasury.Withdraw(ctx, authMiddleware.Caller(c))
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]uint64{"amount": amount})
}
