package repository

import (
	"context"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
)

// ChallengeRepository stores challenge configuration, including the
// rule sets the webhook path evaluates against.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// FindByJoinCode matches case-insensitively and trims surrounding
	// whitespace before comparing.
	FindByJoinCode(ctx context.Context, code string) (*entity.Challenge, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Challenge, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
