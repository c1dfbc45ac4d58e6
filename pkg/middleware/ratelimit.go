package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"tradejournal/config"
	"tradejournal/internal/dto"
)

// NewRateLimiterMiddleware limits requests per client IP using an in-memory
// token bucket store. State for idle clients expires after cfg.RateLimitTTL.
func NewRateLimiterMiddleware(cfg *config.API) echo.MiddlewareFunc {
	rlc := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.RateLimit),
				Burst:     cfg.RateLimitBurst,
				ExpiresIn: cfg.RateLimitTTL,
			},
		),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, dto.BaseResponse{
				Code:    http.StatusForbidden,
				Message: "rate limiter could not identify the request",
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, dto.BaseResponse{
				Code:    http.StatusTooManyRequests,
				Message: "too many requests, please slow down",
			})
		},
	}

	return middleware.RateLimiterWithConfig(rlc)
}
