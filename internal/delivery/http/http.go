package http

import (
	"context"
	"strconv"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"tradejournal/internal/dto"
	"tradejournal/internal/service"
	"tradejournal/pkg/notify"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	hub       *notify.Hub
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service, hub *notify.Hub) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
		hub:       hub,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api", h.UserScope)
	h.SetupTrades(base)
	h.SetupDays(base)
	h.SetupStats(base)
	h.SetupRisk(base)
	h.SetupProfile(base)
	h.SetupRules(base)
	h.SetupQuotes(base)
	h.SetupEvents(base)
}

const userIDContextKey = "user_id"

// UserScope resolves the acting user from the X-User-ID header. Session
// management lives in front of this service, the header is the trusted
// outcome of it.
func (h *HttpAPIHandler) UserScope(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get("X-User-ID")
		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			resp := dto.NewBadRequestResponse("missing or invalid X-User-ID header")
			return c.JSON(resp.Code, resp)
		}
		c.Set(userIDContextKey, uint(userID))
		return next(c)
	}
}

func userID(c echo.Context) uint {
	id, _ := c.Get(userIDContextKey).(uint)
	return id
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
