package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/metrics"
	"github.com/x-xyz/marketplace/base/validator"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	met metrics.Service
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{met: metrics.New("http")}
}

// AddContext attaches a request scoped ctx.Ctx under key "ctx"
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			reqId := c.Response().Header().Get(echo.HeaderXRequestID)
			cont := ctx.WithValue(ctx.Background(), "requestID", reqId)
			cont = ctx.WithLogFields(cont, log.Fields{"requestID": reqId})
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer m.met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
			}

			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			logger, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				logger = ctx.Background()
			}
			logger.WithFields(fields).Info("response")
			return nil
		}
	}
}

// RateLimit shares one token bucket of rpm requests per minute across all
// callers, the burst is a tenth of a minute
func (m *GoMiddleware) RateLimit(rpm int) echo.MiddlewareFunc {
	burst := rpm / 6
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				m.met.BumpSum("ratelimited", 1, "path", c.Path())
				return delivery.MakeJsonResp(c, http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}

// IsValidAddress rejects requests whose path param is not a hex account address
func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
