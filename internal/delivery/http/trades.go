package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tradejournal/internal/dto"
	"tradejournal/pkg/utils"
)

func (h *HttpAPIHandler) SetupTrades(base *echo.Group) {
	v1 := base.Group("/v1/trades")
	{
		v1.POST("", h.CreateTrade)
		v1.GET("", h.ListTrades)
		v1.GET("/:id", h.GetTrade)
		v1.PUT("/:id", h.UpdateTrade)
		v1.DELETE("/:id", h.DeleteTrade)
	}
}

func (h *HttpAPIHandler) CreateTrade(c echo.Context) error {
	req := new(dto.CreateTradeRequest)
	if err := c.Bind(req); err != nil {
		resp := dto.NewBadRequestResponse("invalid request body")
		return c.JSON(resp.Code, resp)
	}
	if err := h.validator.Struct(req); err != nil {
		resp := dto.NewBadRequestResponse(err.Error())
		return c.JSON(resp.Code, resp)
	}

	trade, err := h.service.TradeService.Create(c.Request().Context(), userID(c), *req)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to create trade", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewBaseResponse(http.StatusCreated, "trade logged", trade)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) ListTrades(c echo.Context) error {
	param := dto.GetTradesParam{
		UserID:    userID(c),
		OrderDesc: c.QueryParam("order") == "desc",
	}

	if v := c.QueryParam("start_date"); v != "" {
		t, err := time.Parse(utils.DateKeyLayout, v)
		if err != nil {
			resp := dto.NewBadRequestResponse("invalid start_date")
			return c.JSON(resp.Code, resp)
		}
		param.StartDate = &t
	}
	if v := c.QueryParam("end_date"); v != "" {
		t, err := time.Parse(utils.DateKeyLayout, v)
		if err != nil {
			resp := dto.NewBadRequestResponse("invalid end_date")
			return c.JSON(resp.Code, resp)
		}
		param.EndDate = &t
	}
	if v := c.QueryParam("closed"); v != "" {
		param.IsClosed = utils.ToPointer(v == "true")
	}

	trades, err := h.service.TradeService.List(c.Request().Context(), param)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to list trades", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("trades", trades)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) GetTrade(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		resp := dto.NewBadRequestResponse("invalid trade id")
		return c.JSON(resp.Code, resp)
	}

	trade, err := h.service.TradeService.Get(c.Request().Context(), userID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp := dto.NewNotFoundResponse("trade not found")
		return c.JSON(resp.Code, resp)
	}
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to load trade", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("trade", trade)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) UpdateTrade(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		resp := dto.NewBadRequestResponse("invalid trade id")
		return c.JSON(resp.Code, resp)
	}

	req := new(dto.UpdateTradeRequest)
	if err := c.Bind(req); err != nil {
		resp := dto.NewBadRequestResponse("invalid request body")
		return c.JSON(resp.Code, resp)
	}
	if err := h.validator.Struct(req); err != nil {
		resp := dto.NewBadRequestResponse(err.Error())
		return c.JSON(resp.Code, resp)
	}

	trade, err := h.service.TradeService.Update(c.Request().Context(), userID(c), id, *req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp := dto.NewNotFoundResponse("trade not found")
		return c.JSON(resp.Code, resp)
	}
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to update trade", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("trade updated", trade)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) DeleteTrade(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		resp := dto.NewBadRequestResponse("invalid trade id")
		return c.JSON(resp.Code, resp)
	}

	err = h.service.TradeService.Delete(c.Request().Context(), userID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp := dto.NewNotFoundResponse("trade not found")
		return c.JSON(resp.Code, resp)
	}
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to delete trade", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("trade deleted", nil)
	return c.JSON(resp.Code, resp)
}
