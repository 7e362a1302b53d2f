package usecase

import (
	"context"

	"gravity/internal/domain/entity"
)

// WebhookUsecase handles provider webhook deliveries.
type WebhookUsecase interface {
	// VerifySubscription answers the provider's subscription handshake.
	// It returns the challenge string to echo back, or an error mapped
	// to 403 (token mismatch) / 400 (missing parameters) by the handler.
	VerifySubscription(mode, verifyToken, challenge string) (string, error)

	// ProcessEvent runs the full ingestion path for one delivery:
	// resolve the owner, fetch the activity, evaluate the rules and
	// reconcile the daily log. The returned error is for logging only;
	// the delivery is acknowledged regardless.
	ProcessEvent(ctx context.Context, event *entity.ActivityEvent) error
}
