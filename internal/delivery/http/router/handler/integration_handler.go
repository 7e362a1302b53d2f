package handler

import (
	"log/slog"
	"net/http"

	"gravity/internal/delivery/http/response"
	"gravity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IntegrationHandlerParams holds dependencies for IntegrationHandler, injected by Fx.
type IntegrationHandlerParams struct {
	fx.In

	IntegrationUC usecase.IntegrationUsecase
	Logger        *slog.Logger
}

// IntegrationHandler holds dependencies for provider-link handlers
type IntegrationHandler struct {
	integrationUC usecase.IntegrationUsecase
	logger        *slog.Logger
}

// NewIntegrationHandler is the constructor for IntegrationHandler
func NewIntegrationHandler(params IntegrationHandlerParams) *IntegrationHandler {
	return &IntegrationHandler{
		integrationUC: params.IntegrationUC,
		logger:        params.Logger,
	}
}

// LinkRequest represents the request body for linking the provider
type LinkRequest struct {
	Code string `json:"code" validate:"required"`
}

// Link handles the OAuth code exchange after the provider redirect
func (h *IntegrationHandler) Link(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid link input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	integration, err := h.integrationUC.Link(c.Request().Context(), userID, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Tokens never leave the server; only the public link state does.
	return response.Success(c, http.StatusCreated, map[string]string{
		"provider":   integration.Provider,
		"athlete_id": integration.ExternalAthleteID,
	}, "Provider linked successfully")
}

// Unlink removes the caller's provider link
func (h *IntegrationHandler) Unlink(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if err := h.integrationUC.Unlink(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Provider unlinked successfully")
}

// Status reports the caller's provider link state
func (h *IntegrationHandler) Status(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	status, err := h.integrationUC.Status(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "Integration status retrieved")
}

// Sync triggers a manual import of recent provider activities
func (h *IntegrationHandler) Sync(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	result, err := h.integrationUC.ManualSync(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Sync completed")
}
