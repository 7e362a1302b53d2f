// Package repository declares the persistence contracts the domain
// depends on. Concrete implementations live in internal/infra.
package repository

import (
	"context"

	"gravity/internal/domain/entity"
	"gravity/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors shared across repository implementations.
var (
	ErrIntegrationNotFound = errors.New("integration not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrLogNotFound         = errors.New("daily log not found")
)

// IntegrationRepository owns the provider credential rows. Only the
// token lifecycle manager may call the mutating methods.
type IntegrationRepository interface {
	// FindByUser returns the integration for (userID, provider).
	FindByUser(ctx context.Context, userID uuid.UUID, provider string) (*entity.Integration, error)
	// FindByExternalAthleteID resolves a webhook owner id to the local
	// integration, or ErrIntegrationNotFound for unlinked accounts.
	FindByExternalAthleteID(ctx context.Context, provider, athleteID string) (*entity.Integration, error)
	// Upsert creates or replaces the row for (userID, provider).
	Upsert(ctx context.Context, integration *entity.Integration) error
	// UpdateTokens persists a refreshed token pair. The new tokens must
	// be durable before any caller is handed the new access token.
	UpdateTokens(ctx context.Context, userID uuid.UUID, provider, accessToken, refreshToken string, expiresAt int64) error
	// Delete removes the link on unlink.
	Delete(ctx context.Context, userID uuid.UUID, provider string) error
}
