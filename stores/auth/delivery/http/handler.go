package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/signingMsg", handler.getSigningMsg)
}

// sign
//
//	@Summary		Get access token
//	@Description	Create access token for an address which signed the signing message
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.sign.params	true	"params"
//	@Success		201		{object}	object{data=string}
//	@Failure		400
//	@Failure		500
//	@Router			/auth/sign [post]
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address" validate:"required,address" example:"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"` // account address
		Signature string         `json:"signature" validate:"required"`                                                            // personal_sign over the signing message
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if tkn, err := h.auth.SignToken(ctx, p.Address, p.Signature); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeErrResp(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

// getSigningMsg
//
//	@Summary		Get signing message
//	@Description	Message the address signs with personal_sign to log in
//	@Tags			auth
//	@Produce		json
//	@Param			address	query		string	true	"account address"
//	@Success		200		{object}	object{data=object{msg=string}}
//	@Failure		400
//	@Router			/auth/signingMsg [get]
func (h *authHandler) getSigningMsg(c echo.Context) error {
	address := domain.Address(c.QueryParam("address"))
	if address.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}
	res := struct {
		Msg string `json:"msg"`
	}{
		Msg: h.auth.SigningMessage(address),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
