package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tradejournal/internal/dto"
)

func (h *HttpAPIHandler) SetupRisk(base *echo.Group) {
	v1 := base.Group("/v1/risk")
	{
		v1.GET("/today", h.TodayRisk)
		v1.GET("/targets", h.TargetProgress)
	}
}

func (h *HttpAPIHandler) TodayRisk(c echo.Context) error {
	result, err := h.service.RiskService.Today(c.Request().Context(), userID(c))
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to evaluate risk", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("today risk", result)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) TargetProgress(c echo.Context) error {
	progress, err := h.service.RiskService.TargetProgress(c.Request().Context(), userID(c))
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to evaluate targets", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("target progress", progress)
	return c.JSON(resp.Code, resp)
}
