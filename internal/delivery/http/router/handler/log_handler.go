package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gravity/internal/delivery/http/response"
	"gravity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LogHandlerParams holds dependencies for LogHandler, injected by Fx.
type LogHandlerParams struct {
	fx.In

	LogUC  usecase.LogUsecase
	Logger *slog.Logger
}

// LogHandler holds dependencies for feed and log handlers
type LogHandler struct {
	logUC  usecase.LogUsecase
	logger *slog.Logger
}

// NewLogHandler is the constructor for LogHandler
func NewLogHandler(params LogHandlerParams) *LogHandler {
	return &LogHandler{
		logUC:  params.LogUC,
		logger: params.Logger,
	}
}

// CommentRequest represents the request body for commenting on a log
type CommentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

// ReportRequest represents the request body for reporting a log
type ReportRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// RegisterDeviceRequest represents the request body for registering a push device
type RegisterDeviceRequest struct {
	FCMToken  string `json:"fcm_token" validate:"required"`
	UserAgent string `json:"user_agent"`
}

// Feed returns the newest logs with authors and comments
func (h *LogHandler) Feed(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, err := h.logUC.Feed(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Feed retrieved")
}

// AddComment attaches a comment to a log
func (h *LogHandler) AddComment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid log ID")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	comment, err := h.logUC.AddComment(c.Request().Context(), userID, logID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added")
}

// ReportLog files a moderation report against a log
func (h *LogHandler) ReportLog(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	logID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid log ID")
	}

	var req ReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	report, err := h.logUC.ReportLog(c.Request().Context(), userID, logID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, report, "Report filed")
}

// RegisterDevice records a push-notification target for the caller
func (h *LogHandler) RegisterDevice(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.logUC.RegisterDevice(c.Request().Context(), userID, req.FCMToken, req.UserAgent); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Device registered")
}

// Stats returns the caller's total days and current streak
func (h *LogHandler) Stats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.logUC.Stats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats computed")
}
