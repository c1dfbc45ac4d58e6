package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tradejournal/internal/dto"
	"tradejournal/internal/stats"
)

func (h *HttpAPIHandler) SetupStats(base *echo.Group) {
	v1 := base.Group("/v1/stats")
	{
		v1.GET("/overview", h.StatsOverview)
		v1.GET("/period", h.StatsPeriod)
		v1.GET("/summary", h.PnlSummary)
		v1.GET("/equity", h.EquityCurve)
		v1.GET("/daily", h.DailySeries)
		v1.GET("/extremes", h.Extremes)
	}
}

func (h *HttpAPIHandler) StatsOverview(c echo.Context) error {
	overview, err := h.service.StatsService.Overview(c.Request().Context(), userID(c), lookbackDays(c))
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to compute statistics", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("statistics overview", overview)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) StatsPeriod(c echo.Context) error {
	period := stats.Period(c.QueryParam("period"))
	if !period.Valid() {
		resp := dto.NewBadRequestResponse("period must be one of today, week, month, all")
		return c.JSON(resp.Code, resp)
	}

	result, err := h.service.StatsService.PeriodStats(c.Request().Context(), userID(c), period)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to compute period statistics", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("period statistics", result)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) PnlSummary(c echo.Context) error {
	summary, err := h.service.StatsService.PnlSummary(c.Request().Context(), userID(c))
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to compute summary", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("pnl summary", summary)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) EquityCurve(c echo.Context) error {
	points, err := h.service.StatsService.EquityCurve(c.Request().Context(), userID(c), lookbackDays(c))
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to build equity curve", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("equity curve", points)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) DailySeries(c echo.Context) error {
	points, err := h.service.StatsService.DailySeries(c.Request().Context(), userID(c))
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to build daily series", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("daily pnl", points)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) Extremes(c echo.Context) error {
	extremes, err := h.service.StatsService.Extremes(c.Request().Context(), userID(c), lookbackDays(c))
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to find extremes", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("extremes", extremes)
	return c.JSON(resp.Code, resp)
}

// lookbackDays parses the optional days query, 0 means all time.
func lookbackDays(c echo.Context) int {
	days, err := strconv.Atoi(c.QueryParam("days"))
	if err != nil || days < 0 {
		return 0
	}
	return days
}
