package handler

import (
	"log/slog"
	"net/http"
	"time"

	"engage/internal/delivery/http/response"
	"engage/internal/domain/entity"
	domainerrors "engage/internal/domain/errors"
	"engage/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	EngagementUC usecase.EngagementUsecase
	Logger       *slog.Logger
}

// EngagementHandler exposes the engine to the host application
type EngagementHandler struct {
	engagementUC usecase.EngagementUsecase
	logger       *slog.Logger
}

func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{
		engagementUC: params.EngagementUC,
		logger:       params.Logger,
	}
}

// LocationUpdateRequest is a raw location fix; a missing timestamp means now
type LocationUpdateRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64   `json:"longitude" validate:"required,min=-180,max=180"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// LocationUpdateResponse reports whether the fix passed the debounce gate
type LocationUpdateResponse struct {
	Accepted bool `json:"accepted"`
}

// PermissionRequest carries the notification permission signal
type PermissionRequest struct {
	Granted *bool `json:"granted" validate:"required"`
}

// UpdateLocation handles POST /v1/locations
func (h *EngagementHandler) UpdateLocation(c echo.Context) error {
	var req LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	coordinate := entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if !coordinate.Valid() {
		return domainerrors.ErrInvalidCoordinate
	}

	var timestamp time.Time
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	accepted := h.engagementUC.OnLocationUpdate(c.Request().Context(), coordinate, timestamp)

	return response.Success(c, http.StatusOK, LocationUpdateResponse{Accepted: accepted}, "")
}

// Enable handles POST /v1/engagement/enable
func (h *EngagementHandler) Enable(c echo.Context) error {
	h.engagementUC.Enable()

	return response.Success(c, http.StatusOK, h.engagementUC.Status(), "Engagement enabled")
}

// Disable handles POST /v1/engagement/disable
func (h *EngagementHandler) Disable(c echo.Context) error {
	h.engagementUC.Disable(c.Request().Context())

	return response.Success(c, http.StatusOK, h.engagementUC.Status(), "Engagement disabled")
}

// GetStatus handles GET /v1/engagement
func (h *EngagementHandler) GetStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.engagementUC.Status(), "")
}

// SetPermission handles PUT /v1/notifications/permission
func (h *EngagementHandler) SetPermission(c echo.Context) error {
	var req PermissionRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	h.engagementUC.SetNotificationPermission(*req.Granted)

	return response.Success(c, http.StatusOK, h.engagementUC.Status(), "")
}

// GetRegions handles GET /v1/regions
func (h *EngagementHandler) GetRegions(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.engagementUC.Status().Regions, "")
}

// GetHistory handles GET /v1/history
func (h *EngagementHandler) GetHistory(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.engagementUC.History(), "")
}

// GetMerchantStats handles GET /v1/merchants/:merchantId/stats
func (h *EngagementHandler) GetMerchantStats(c echo.Context) error {
	merchantID := c.Param("merchantId")
	if merchantID == "" {
		return domainerrors.ErrInvalidRequest.WithDetails("merchant id is required")
	}

	return response.Success(c, http.StatusOK, h.engagementUC.MerchantStats(merchantID), "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
