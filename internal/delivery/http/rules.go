package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tradejournal/internal/dto"
)

func (h *HttpAPIHandler) SetupRules(base *echo.Group) {
	v1 := base.Group("/v1/rules")
	{
		v1.GET("", h.ListRules)
		v1.PUT("", h.ReplaceRules)
	}
}

func (h *HttpAPIHandler) ListRules(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	rules, err := h.service.RuleService.List(c.Request().Context(), userID(c), activeOnly)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to list rules", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("rules", rules)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) ReplaceRules(c echo.Context) error {
	req := new(dto.ReplaceRulesRequest)
	if err := c.Bind(req); err != nil {
		resp := dto.NewBadRequestResponse("invalid request body")
		return c.JSON(resp.Code, resp)
	}
	if err := h.validator.Struct(req); err != nil {
		resp := dto.NewBadRequestResponse(err.Error())
		return c.JSON(resp.Code, resp)
	}

	rules, err := h.service.RuleService.ReplaceAll(c.Request().Context(), userID(c), *req)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to replace rules", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("rules replaced", rules)
	return c.JSON(resp.Code, resp)
}
