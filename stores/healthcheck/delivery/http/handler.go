package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	hcdomain "github.com/x-xyz/marketplace/domain/healthcheck"
)

type handler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	h := &handler{healthCheck: us}
	e.GET("/health", h.check)
}

// check
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	object{data=healthcheck.Report}
//	@Failure	503	{object}	object{data=healthcheck.Report}
//	@Router		/health [get]
func (h *handler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	report, err := h.healthCheck.Check(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, report)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, report)
}
