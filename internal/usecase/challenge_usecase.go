package usecase

import (
	"context"
	"time"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
)

// ChallengeInput carries the fields of a new challenge.
type ChallengeInput struct {
	Name                string         `json:"name" validate:"required,max=100"`
	JoinCode            string         `json:"join_code" validate:"required,min=4,max=32"`
	StartDate           time.Time      `json:"start_date" validate:"required"`
	PenaltyAmount       float64        `json:"penalty_amount" validate:"gte=0"`
	RequiredDaysPerWeek int            `json:"required_days_per_week" validate:"gte=0,lte=7"`
	Rules               entity.RuleSet `json:"rules"`
}

// ChallengeUsecase manages challenges and their derived standings.
type ChallengeUsecase interface {
	// Create persists a challenge and auto-joins the creator, in one
	// transaction.
	Create(ctx context.Context, creatorID uuid.UUID, input *ChallengeInput) (*entity.Challenge, error)

	// Join links the user to the challenge matching the join code
	// (case-insensitive, whitespace-trimmed).
	Join(ctx context.Context, userID uuid.UUID, code string) (*entity.Challenge, error)

	// Get returns one challenge.
	Get(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)

	// JoinQR renders the challenge's join code as a PNG QR image.
	JoinQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// Leaderboard computes the current standings: missed days and
	// penalty due per participant, ascending by missed days.
	Leaderboard(ctx context.Context, id uuid.UUID) ([]*entity.LeaderboardEntry, error)
}
