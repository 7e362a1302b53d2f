package usecase

import (
	"context"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedItem is one daily log on the social feed, joined with its
// author's display data and comments.
type FeedItem struct {
	Log      *entity.DailyLog  `json:"log"`
	Username string            `json:"username"`
	Avatar   string            `json:"avatar,omitempty"`
	Comments []*entity.Comment `json:"comments"`
}

// UserStats summarizes one user's logging history.
type UserStats struct {
	TotalDays     int `json:"total_days"`
	CurrentStreak int `json:"current_streak"`
}

// LogUsecase covers the social surface around daily logs plus the
// privileged moderation operations.
type LogUsecase interface {
	// Feed returns the newest logs with authors and comments.
	Feed(ctx context.Context, limit int) ([]*FeedItem, error)

	// AddComment attaches a comment to a log.
	AddComment(ctx context.Context, userID, logID uuid.UUID, content string) (*entity.Comment, error)

	// ReportLog files a moderation report against a log.
	ReportLog(ctx context.Context, reporterID, logID uuid.UUID, reason string) (*entity.Report, error)

	// RegisterDevice records a push-notification target for the user.
	RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken, userAgent string) error

	// Stats computes the user's total logged days and current streak.
	Stats(ctx context.Context, userID uuid.UUID) (*UserStats, error)

	// ListPendingReports returns unresolved moderation reports. Caller
	// must be an admin.
	ListPendingReports(ctx context.Context, adminID uuid.UUID) ([]*entity.Report, error)

	// DeleteLog removes a log row. Caller must be an admin.
	DeleteLog(ctx context.Context, adminID, logID uuid.UUID) error

	// OverrideVerification force-sets a log's verified flag, bypassing
	// the verified-wins guard. Caller must be an admin.
	OverrideVerification(ctx context.Context, adminID, logID uuid.UUID, verified bool) error
}
