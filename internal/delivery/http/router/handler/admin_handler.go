package handler

import (
	"log/slog"
	"net/http"

	"gravity/internal/delivery/http/response"
	"gravity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	LogUC  usecase.LogUsecase
	Logger *slog.Logger
}

// AdminHandler holds dependencies for moderation handlers. The admin
// check itself lives in the usecases, keyed on the caller's profile.
type AdminHandler struct {
	logUC  usecase.LogUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		logUC:  params.LogUC,
		logger: params.Logger,
	}
}

// OverrideVerificationRequest represents the request body for forcing a
// log's verified flag
type OverrideVerificationRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

// ListPendingReports returns unresolved moderation reports
func (h *AdminHandler) ListPendingReports(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return err
	}

	reports, err := h.logUC.ListPendingReports(c.Request().Context(), adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports, "Pending reports retrieved")
}

// DeleteLog removes a daily log
func (h *AdminHandler) DeleteLog(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return err
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid log ID")
	}

	if err := h.logUC.DeleteLog(c.Request().Context(), adminID, logID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Daily log deleted by admin",
		slog.String("admin_id", adminID.String()),
		slog.String("log_id", logID.String()),
	)

	return response.Success(c, http.StatusOK, nil, "Log deleted")
}

// OverrideVerification force-sets a log's verified flag
func (h *AdminHandler) OverrideVerification(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return err
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid log ID")
	}

	var req OverrideVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid override input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.logUC.OverrideVerification(c.Request().Context(), adminID, logID, *req.Verified); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Log verification overridden",
		slog.String("admin_id", adminID.String()),
		slog.String("log_id", logID.String()),
		slog.Bool("verified", *req.Verified),
	)

	return response.Success(c, http.StatusOK, nil, "Verification updated")
}
