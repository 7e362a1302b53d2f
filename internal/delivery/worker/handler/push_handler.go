package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"gravity/config"
	deliverycontext "gravity/internal/delivery/context"
	"gravity/internal/domain/constants"
	"gravity/internal/domain/repository"
	"gravity/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// pushTitle is the notification title teammates see.
const pushTitle = "Gravity Update"

// fcmBatchSize is the provider's per-request token limit.
const fcmBatchSize = 500

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes log events delivered over a Pub/Sub push
// subscription and fans them out to the actor's challenge teammates.
// Deployments that push directly from the API server do not run this
// worker at all.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	profileRepo     repository.ProfileRepository
	socialRepo      repository.SocialRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	ProfileRepo     repository.ProfileRepository
	SocialRepo      repository.SocialRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests in deployed environments only.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		profileRepo:     params.ProfileRepo,
		socialRepo:      params.SocialRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.LogEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse log event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing log event",
		slog.String("log_id", event.LogID),
		slog.String("date", event.Date),
		slog.Bool("verified", event.Verified),
	)

	if err := h.processLogEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process log event",
			slog.String("log_id", event.LogID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub redelivery; anything else is acked to
		// keep poison messages from looping forever.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the publisher's attribute, then the inbound
// request context, then a fresh UUID.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processLogEvent pushes a teammate notification for one verified log.
func (h *PushHandler) processLogEvent(ctx context.Context, event *service.LogEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	// Unverified reconciliations carry no social weight.
	if !event.Verified {
		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	actor, err := h.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}
	if actor.CurrentChallengeID == nil {
		logger.Info("[Worker] Actor has no active challenge",
			slog.String("log_id", event.LogID),
		)

		return nil
	}

	teammates, err := h.profileRepo.ListByChallenge(ctx, *actor.CurrentChallengeID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	recipientIDs := make([]uuid.UUID, 0, len(teammates))
	for _, teammate := range teammates {
		if teammate.ID != actor.ID {
			recipientIDs = append(recipientIDs, teammate.ID)
		}
	}
	if len(recipientIDs) == 0 {
		return nil
	}

	devices, err := h.socialRepo.ListDevicesForUsers(ctx, recipientIDs)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}
	if len(devices) == 0 {
		logger.Info("[Worker] No devices registered for teammates",
			slog.String("log_id", event.LogID),
		)

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	body := fmt.Sprintf("%s logged a verified workout for %s", actor.Username, event.Date)
	data := map[string]string{
		"log_id": event.LogID,
		"date":   event.Date,
	}

	totalSent, totalFailed, invalidTokens := h.sendBatchedNotifications(ctx, tokens, body, data)

	h.cleanupInvalidTokens(ctx, invalidTokens)

	logger.Info("[Worker] Teammate notification completed",
		slog.String("log_id", event.LogID),
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// sendBatchedNotifications sends notifications in provider-sized batches.
func (h *PushHandler) sendBatchedNotifications(ctx context.Context, tokens []string, body string, data map[string]string) (sent, failed int, invalidTokens []string) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	for idx := 0; idx < len(tokens); idx += fcmBatchSize {
		end := min(idx+fcmBatchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalidTokens, sendErr := h.notificationSvc.SendBatchNotification(
			ctx, batch, pushTitle, body, data,
		)
		if sendErr != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			failed += len(batch)

			continue
		}

		sent += successCount
		failed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	return sent, failed, invalidTokens
}

// cleanupInvalidTokens drops devices the provider rejected.
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string) {
	if len(invalidTokens) == 0 {
		return
	}

	if err := h.socialRepo.DeleteDevicesByToken(ctx, invalidTokens); err != nil {
		h.logger.Warn("[Worker] Failed to delete invalid devices",
			slog.Int("count", len(invalidTokens)),
			slog.Any("error", err),
		)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
