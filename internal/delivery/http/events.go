package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tradejournal/internal/dto"
)

func (h *HttpAPIHandler) SetupEvents(base *echo.Group) {
	v1 := base.Group("/v1/events")
	{
		v1.GET("/subscribe", h.SubscribeEvents)
	}
}

// SubscribeEvents long-polls the change feed: it blocks until something the
// user owns changes in the given table (or any table), then returns a
// payloadless signal. Clients respond by re-fetching whatever they display.
func (h *HttpAPIHandler) SubscribeEvents(c echo.Context) error {
	table := c.QueryParam("table")

	events, cancel := h.hub.Subscribe(table, userID(c))
	defer cancel()

	select {
	case ev, ok := <-events:
		if !ok {
			resp := dto.NewBaseResponse(http.StatusServiceUnavailable, "subscription closed", nil)
			return c.JSON(resp.Code, resp)
		}
		resp := dto.NewSuccessResponse("changed", ev)
		return c.JSON(resp.Code, resp)
	case <-c.Request().Context().Done():
		resp := dto.NewBaseResponse(http.StatusRequestTimeout, "client gone", nil)
		return c.JSON(resp.Code, resp)
	}
}
