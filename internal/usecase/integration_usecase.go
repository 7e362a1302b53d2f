// Package usecase declares the application service interfaces consumed
// by the delivery layer.
package usecase

import (
	"context"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
)

// IntegrationStatus summarizes the state of a user's provider link.
type IntegrationStatus struct {
	Connected bool   `json:"connected"`
	Provider  string `json:"provider"`
	AthleteID string `json:"athlete_id,omitempty"`
	Scope     string `json:"scope,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// SyncResult reports the outcome of a manual activity sync.
type SyncResult struct {
	Synced int `json:"synced"`
	Total  int `json:"total"`
}

// IntegrationUsecase manages the provider link for one user.
type IntegrationUsecase interface {
	// Link exchanges an OAuth authorization code and stores the
	// integration.
	Link(ctx context.Context, userID uuid.UUID, code string) (*entity.Integration, error)

	// Unlink removes the provider link.
	Unlink(ctx context.Context, userID uuid.UUID) error

	// Status reports whether the user has a provider link and its
	// non-secret details.
	Status(ctx context.Context, userID uuid.UUID) (*IntegrationStatus, error)

	// ManualSync pulls the user's recent activities and reconciles one
	// daily log per activity day. Provider-side manual entries are
	// skipped.
	ManualSync(ctx context.Context, userID uuid.UUID) (*SyncResult, error)
}
