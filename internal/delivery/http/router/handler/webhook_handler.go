package handler

import (
	"log/slog"
	"net/http"

	"gravity/internal/delivery/http/response"
	"gravity/internal/domain/entity"
	"gravity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Logger    *slog.Logger
}

// WebhookHandler terminates the provider's webhook surface.
type WebhookHandler struct {
	webhookUC usecase.WebhookUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: params.WebhookUC,
		logger:    params.Logger,
	}
}

// VerifySubscription answers the provider's one-time subscription
// handshake. The echoed challenge must come back verbatim under the
// hub.challenge key or the provider rejects the subscription.
func (h *WebhookHandler) VerifySubscription(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	verifyToken := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	echoed, err := h.webhookUC.VerifySubscription(mode, verifyToken, challenge)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"hub.challenge": echoed})
}

// ReceiveEvent ingests one webhook delivery. The provider retries
// anything that is not a 200, so processing failures are logged and
// acknowledged; the event is lost rather than redelivered forever.
func (h *WebhookHandler) ReceiveEvent(c echo.Context) error {
	var event entity.ActivityEvent
	if err := c.Bind(&event); err != nil {
		h.logger.Warn("Malformed webhook payload", slog.Any("error", err))

		return c.String(http.StatusOK, "EVENT_RECEIVED")
	}

	if err := h.webhookUC.ProcessEvent(c.Request().Context(), &event); err != nil {
		h.logger.Error("Webhook event processing failed",
			slog.Int64("object_id", event.ObjectID),
			slog.Int64("owner_id", event.OwnerID),
			slog.Any("error", err),
		)
	}

	return c.String(http.StatusOK, "EVENT_RECEIVED")
}
