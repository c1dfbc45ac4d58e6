package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tradejournal/internal/dto"
)

func (h *HttpAPIHandler) SetupDays(base *echo.Group) {
	v1 := base.Group("/v1/days")
	{
		v1.POST("/start", h.StartDay)
		v1.GET("/today", h.GetToday)
		v1.GET("", h.ListMonthDays)
		v1.GET("/summary", h.MonthlySummary)
		v1.PUT("/:id/notes", h.UpdateDayNotes)
	}
}

func (h *HttpAPIHandler) StartDay(c echo.Context) error {
	req := new(dto.StartDayRequest)
	if err := c.Bind(req); err != nil {
		resp := dto.NewBadRequestResponse("invalid request body")
		return c.JSON(resp.Code, resp)
	}
	if err := h.validator.Struct(req); err != nil {
		resp := dto.NewBadRequestResponse(err.Error())
		return c.JSON(resp.Code, resp)
	}

	day, err := h.service.TradingDayService.StartDay(c.Request().Context(), userID(c), *req)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to start trading day", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("trading day started", day)
	return c.JSON(resp.Code, resp)
}

// GetToday returns null data when the pre-trading ritual has not run yet,
// a missing row is a normal empty state rather than an error.
func (h *HttpAPIHandler) GetToday(c echo.Context) error {
	day, err := h.service.TradingDayService.GetToday(c.Request().Context(), userID(c))
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to load trading day", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("today", day)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) ListMonthDays(c echo.Context) error {
	year, month, ok := monthParams(c)
	if !ok {
		resp := dto.NewBadRequestResponse("invalid month or year")
		return c.JSON(resp.Code, resp)
	}

	days, err := h.service.TradingDayService.ListMonth(c.Request().Context(), userID(c), year, month)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to load month", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("trading days", days)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) MonthlySummary(c echo.Context) error {
	year, month, ok := monthParams(c)
	if !ok {
		resp := dto.NewBadRequestResponse("invalid month or year")
		return c.JSON(resp.Code, resp)
	}

	summary, err := h.service.TradingDayService.MonthlySummary(c.Request().Context(), userID(c), year, month)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to summarize month", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("monthly summary", summary)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) UpdateDayNotes(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		resp := dto.NewBadRequestResponse("invalid trading day id")
		return c.JSON(resp.Code, resp)
	}

	req := new(dto.UpdateDayNotesRequest)
	if err := c.Bind(req); err != nil {
		resp := dto.NewBadRequestResponse("invalid request body")
		return c.JSON(resp.Code, resp)
	}
	if err := h.validator.Struct(req); err != nil {
		resp := dto.NewBadRequestResponse(err.Error())
		return c.JSON(resp.Code, resp)
	}

	day, err := h.service.TradingDayService.UpdateNotes(c.Request().Context(), userID(c), id, *req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp := dto.NewNotFoundResponse("trading day not found")
		return c.JSON(resp.Code, resp)
	}
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to update trading day", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("trading day updated", day)
	return c.JSON(resp.Code, resp)
}

func monthParams(c echo.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 2000 || year > 2200 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}
