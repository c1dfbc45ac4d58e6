package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tradejournal/internal/dto"
)

func (h *HttpAPIHandler) SetupProfile(base *echo.Group) {
	v1 := base.Group("/v1/profile")
	{
		v1.GET("", h.GetProfile)
		v1.PUT("", h.UpdateProfile)
		v1.PUT("/risk-limits", h.UpdateRiskLimits)
		v1.PUT("/goals", h.UpdateGoals)
		v1.POST("/onboarding", h.CompleteOnboarding)
	}
}

func (h *HttpAPIHandler) GetProfile(c echo.Context) error {
	profile, err := h.service.ProfileService.Get(c.Request().Context(), userID(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp := dto.NewNotFoundResponse("profile not found")
		return c.JSON(resp.Code, resp)
	}
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to load profile", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("profile", profile)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) UpdateProfile(c echo.Context) error {
	req := new(dto.UpdateProfileRequest)
	if err := c.Bind(req); err != nil {
		resp := dto.NewBadRequestResponse("invalid request body")
		return c.JSON(resp.Code, resp)
	}
	if err := h.validator.Struct(req); err != nil {
		resp := dto.NewBadRequestResponse(err.Error())
		return c.JSON(resp.Code, resp)
	}

	profile, err := h.service.ProfileService.UpdateProfile(c.Request().Context(), userID(c), *req)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to update profile", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("profile updated", profile)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) UpdateRiskLimits(c echo.Context) error {
	req := new(dto.UpdateRiskLimitsRequest)
	if err := c.Bind(req); err != nil {
		resp := dto.NewBadRequestResponse("invalid request body")
		return c.JSON(resp.Code, resp)
	}
	if err := h.validator.Struct(req); err != nil {
		resp := dto.NewBadRequestResponse(err.Error())
		return c.JSON(resp.Code, resp)
	}

	profile, err := h.service.ProfileService.UpdateRiskLimits(c.Request().Context(), userID(c), *req)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to update risk limits", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("risk limits updated", profile)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) UpdateGoals(c echo.Context) error {
	req := new(dto.UpdateGoalsRequest)
	if err := c.Bind(req); err != nil {
		resp := dto.NewBadRequestResponse("invalid request body")
		return c.JSON(resp.Code, resp)
	}
	if err := h.validator.Struct(req); err != nil {
		resp := dto.NewBadRequestResponse(err.Error())
		return c.JSON(resp.Code, resp)
	}

	profile, err := h.service.ProfileService.UpdateGoals(c.Request().Context(), userID(c), *req)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to update goals", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("goals updated", profile)
	return c.JSON(resp.Code, resp)
}

func (h *HttpAPIHandler) CompleteOnboarding(c echo.Context) error {
	req := new(dto.CompleteOnboardingRequest)
	if err := c.Bind(req); err != nil {
		resp := dto.NewBadRequestResponse("invalid request body")
		return c.JSON(resp.Code, resp)
	}
	if err := h.validator.Struct(req); err != nil {
		resp := dto.NewBadRequestResponse(err.Error())
		return c.JSON(resp.Code, resp)
	}

	profile, err := h.service.ProfileService.CompleteOnboarding(c.Request().Context(), userID(c), *req)
	if err != nil {
		resp := dto.NewBaseResponse(http.StatusInternalServerError, "failed to complete onboarding", nil)
		return c.JSON(resp.Code, resp)
	}

	resp := dto.NewSuccessResponse("onboarding completed", profile)
	return c.JSON(resp.Code, resp)
}
