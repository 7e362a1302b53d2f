package repository

import (
	"context"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialRepository stores the feed surface around daily logs: comments,
// moderation reports, and push-notification devices.
type SocialRepository interface {
	AddComment(ctx context.Context, comment *entity.Comment) error
	ListCommentsByLog(ctx context.Context, logID uuid.UUID) ([]*entity.Comment, error)

	AddReport(ctx context.Context, report *entity.Report) error
	ListReportsByStatus(ctx context.Context, status string) ([]*entity.Report, error)

	// RegisterDevice upserts a push target; duplicate tokens are kept
	// idempotent by the token uniqueness constraint.
	RegisterDevice(ctx context.Context, device *entity.PushDevice) error
	// ListDevicesForUsers returns the push targets for a set of users.
	ListDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushDevice, error)
	// DeleteDevicesByToken drops push targets whose tokens the provider
	// reported as invalid or unregistered.
	DeleteDevicesByToken(ctx context.Context, tokens []string) error
}
