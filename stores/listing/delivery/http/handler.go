package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/event"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/middleware"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.UseCase
	event   event.UseCase
}

func New(e *echo.Echo, listingUC listing.UseCase, eventUC event.UseCase, authMw *authMiddleware.AuthMiddleware) {
	h := &handler{
		listing: listingUC,
		event:   eventUC,
	}

	g := e.Group("/listings")
	g.POST("", h.list, authMw.Auth())
	g.GET("/active", h.listActive)
	g.GET("/:id", h.get)
	g.GET("/:id/events", h.events)
	g.PUT("/:id/price", h.updatePrice, authMw.Auth())
	g.POST("/:id/cancel", h.cancel, authMw.Auth())
	g.POST("/:id/buy", h.buy, authMw.Auth())

	a := e.Group("/accounts")
	a.GET("/:address/listings", h.listingsBySeller, middleware.IsValidAddress("address"))
}

func parseId(c echo.Context) (listing.Id, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrBadParamInput
	}
	return listing.Id(id), nil
}

// list
//
//	@Summary		List an asset
//	@Description	Offer an owned asset at a fixed price, the exchange must be approved for it
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.list.params	true	"params"
//	@Success		201		{object}	object{data=object{listingId=int}}
//	@Failure		400
//	@Failure		403
//	@Router			/listings [post]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		AssetRef domain.Address `json:"assetRef" validate:"required,address"`
		AssetId  domain.TokenId `json:"assetId" validate:"required"`
		Price    uint64         `json:"price"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id, err := h.listing.List(ctx, authMiddleware.Caller(c), p.AssetRef, p.AssetId, p.Price)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, map[string]listing.Id{"listingId": id})
}

// listActive
//
//	@Summary		Active listing ids
//	@Tags			listings
//	@Produce		json
//	@Success		200	{object}	object{data=[]int}
//	@Router			/listings/active [get]
func (h *handler) listActive(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	ids, err := h.listing.ListActive(ctx)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, ids)
}

// get
//
//	@Summary	Get listing
//	@Tags		listings
//	@Produce	json
//	@Param		id	path		int	true	"listing id"
//	@Success	200	{object}	object{data=listing.Listing}
//	@Failure	404
//	@Router		/listings/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	l, err := h.listing.Get(ctx, id)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

// events
//
//	@Summary	Listing event history
//	@Tags		listings
//	@Produce	json
//	@Param		id		path		int	true	"listing id"
//	@Param		offset	query		int	false	"offset"
//	@Param		limit	query		int	false	"limit"
//	@Success	200		{object}	object{data=[]event.Record}
//	@Router		/listings/{id}/events [get]
func (h *handler) events(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}

	opts := []event.FindAllOptionsFunc{event.WithListingId(uint64(id))}
	if c.QueryParam("limit") != "" {
		limit, err := strconv.ParseInt(c.QueryParam("limit"), 10, 32)
		if err != nil || limit < 0 {
			return delivery.MakeErrResp(c, domain.ErrBadParamInput)
		}
		var offset int64
		if raw := c.QueryParam("offset"); raw != "" {
			if offset, err = strconv.ParseInt(raw, 10, 32); err != nil || offset < 0 {
				return delivery.MakeErrResp(c, domain.ErrBadParamInput)
			}
		}
		opts = append(opts, event.WithPagination(int32(offset), int32(limit)))
	}

	res, err := h.event.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// updatePrice
//
//	@Summary	Update listing price
//	@Tags		listings
//	@Accept		json
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		id		path	int						true	"listing id"
//	@Param		params	body	http.updatePrice.params	true	"params"
//	@Success	200
//	@Failure	400
//	@Failure	403
//	@Failure	409
//	@Router		/listings/{id}/price [put]
func (h *handler) updatePrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Price uint64 `json:"price"`
	}

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.UpdatePrice(ctx, authMiddleware.Caller(c), id, p.Price); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// cancel
//
//	@Summary	Cancel listing
//	@Tags		listings
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		id	path	int	true	"listing id"
//	@Success	200
//	@Failure	403
//	@Failure	409
//	@Router		/listings/{id}/cancel [post]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	if err := h.listing.Cancel(ctx, authMiddleware.Caller(c), id); err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

// buy
//
//	@Summary		Buy listing
//	@Description	Pays with the caller's ledger balance, the excess over the price is refunded
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			id		path		int				true	"listing id"
//	@Param			params	body		http.buy.params	true	"params"
//	@Success		200		{object}	object{data=listing.Receipt}
//	@Failure		402
//	@Failure		403
//	@Failure		409
//	@Failure		502
//	@Router			/listings/{id}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Payment uint64 `json:"payment"`
	}

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	receipt, err := h.listing.Buy(ctx, authMiddleware.Caller(c), id, p.Payment)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

// listingsBySeller
//
//	@Summary		Listing ids of a seller
//	@Description	Every listing the seller created unless active=true
//	@Tags			accounts
//	@Produce		json
//	@Param			address	path		string	true	"seller address"
//	@Param			active	query		bool	false	"only active listings"
//	@Success		200		{object}	object{data=[]int}
//	@Router			/accounts/{address}/listings [get]
func (h *handler) listingsBySeller(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	activeOnly, _ := strconv.ParseBool(c.QueryParam("active"))
	ids, err := h.listing.ListingsBySeller(ctx, domain.Address(c.Param("address")), activeOnly)
	if err != nil {
		return delivery.MakeErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, ids)
}
