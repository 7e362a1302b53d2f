package repository

import (
	"context"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
)

// DailyLogRepository reconciles one row per (user, date).
type DailyLogRepository interface {
	// Upsert performs the conflict-aware write for (log.UserID, log.Date).
	// It is an atomic conditional write: when an existing row has
	// is_verified = true and source is not SourceAdmin, the call is a
	// no-op and returns false. Otherwise the incoming payload fully
	// replaces the row (or creates it) and the call returns true.
	Upsert(ctx context.Context, log *entity.DailyLog, source entity.LogSource) (bool, error)

	// FindByUserAndDate returns the row for the reconciliation key, or
	// ErrLogNotFound.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*entity.DailyLog, error)

	// FindByID returns a single log row.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyLog, error)

	// ListByUserSince returns a user's logs on or after the given date.
	ListByUserSince(ctx context.Context, userID uuid.UUID, since string) ([]*entity.DailyLog, error)

	// ListSince returns all logs on or after the given date, for the
	// leaderboard calculation.
	ListSince(ctx context.Context, since string) ([]*entity.DailyLog, error)

	// ListRecent returns the newest logs for the social feed.
	ListRecent(ctx context.Context, limit int) ([]*entity.DailyLog, error)

	// OverrideVerification is the explicit privileged path that may
	// re-open or force the verified flag on a row. It bypasses the
	// verified-wins guard and is reachable only from admin operations.
	OverrideVerification(ctx context.Context, id uuid.UUID, verified bool) error

	// Delete removes a log row (admin moderation).
	Delete(ctx context.Context, id uuid.UUID) error
}
