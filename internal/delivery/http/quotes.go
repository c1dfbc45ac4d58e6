package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tradejournal/internal/dto"
)

func (h *HttpAPIHandler) SetupQuotes(base *echo.Group) {
	v1 := base.Group("/v1/quotes")
	{
		v1.GET("/random", h.RandomQuote)
	}
}

func (h *HttpAPIHandler) RandomQuote(c echo.Context) error {
	quote, err := h.service.QuoteService.Random(c.Request().Context())
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to load quote", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("quote", quote)
	return c.JSON(resp.Code, resp)
}
