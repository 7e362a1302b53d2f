package repository

import (
	"context"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileRepository stores challenge participants.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]*entity.Profile, error)

	// SetCurrentChallenge links a user to a challenge (nil unlinks).
	SetCurrentChallenge(ctx context.Context, userID uuid.UUID, challengeID *uuid.UUID) error

	// SetReferencePhoto stores the biometric baseline and lock state.
	// The first successful upload sets the lock; unlocking is a
	// privileged operation.
	SetReferencePhoto(ctx context.Context, userID uuid.UUID, url string, locked bool) error
}
