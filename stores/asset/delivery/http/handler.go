package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/asset"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	asset asset.UseCase
}

func New(e *echo.Echo, assetUC asset.UseCase, authMw *authMiddleware.AuthMiddleware) {
	h := &handler{
		asset: assetUC,
	}
	g := e.Group("/assets")
	g.POST("", h.mint, authMw.Auth())
	g.POST("/approval", h.approve, authMw.Auth())
	g.GET("/:ref/:id", h.get)
}

// mint
//
//	@Summary		Mint an asset
//	@Description	Owner only
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.mint.params	true	"params"
//	@Success		201
//	@Failure		403
//	@Failure		409
//	@Router			/assets [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		AssetRef domain.Address `json:"assetRef" validate:"required,address"`
		AssetId  domain.TokenId `json:"assetId" validate:"required"`
		To       domain.Address `json:"to" validate:"required,address"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.asset.Mint(ctx, authMiddleware.Caller(c), p.AssetRef, p.AssetId, p.To); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

// approve
//
//	@Summary		Approve the exchange
//	@Description	Grants or revokes the exchange's transfer authority over one asset, or every asset of assetRef when assetId is empty
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body	http.approve.params	true	"params"
//	@Success		200
//	@Failure		403
//	@Router			/assets/approval [post]
func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		AssetRef domain.Address `json:"assetRef" validate:"required,address"`
		AssetId  domain.TokenId `json:"assetId"`
		Approved bool           `json:"approved"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.asset.ApproveExchange(ctx, authMiddleware.Caller(c), p.AssetRef, p.AssetId, p.Approved); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// get
//
//	@Summary	Asset ownership
//	@Tags		assets
//	@Produce	json
//	@Param		ref	path		string	true	"asset reference"
//	@Param		id	path		string	true	"asset id"
//	@Success	200	{object}	object{data=asset.Asset}
//	@Failure	404
//	@Router		/assets/{ref}/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	a, err := h.asset.Get(ctx, domain.Address(c.Param("ref")), domain.TokenId(c.Param("id")))
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}
