// Package service declares the contracts for external collaborators:
// the activity provider, inference models, blob storage, push
// notifications, and event publishing.
package service

import (
	"context"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenPair is the provider's response to a code exchange or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64  // Epoch seconds.
	AthleteID    string // Only populated on the initial code exchange.
	Scope        string
}

// ProviderClient is the outbound surface of the activity-tracking
// provider. Every call is a blocking I/O boundary and carries the
// caller's context for timeout and cancellation.
type ProviderClient interface {
	// ExchangeCode swaps an authorization code for a token pair. A
	// provider response carrying an error field fails the exchange.
	ExchangeCode(ctx context.Context, code string) (*TokenPair, error)

	// RefreshTokens exchanges a refresh token for a new pair. A response
	// without an access token is a terminal failure for this operation;
	// the caller must leave its stored tokens untouched.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)

	// FetchActivity retrieves the full detail of one activity.
	FetchActivity(ctx context.Context, accessToken string, activityID int64) (*entity.ActivityDetail, error)

	// FetchRecentActivities lists the athlete's latest activities.
	FetchRecentActivities(ctx context.Context, accessToken string, perPage int) ([]*entity.ActivityDetail, error)
}

// TokenManager guarantees callers a currently-valid access token for a
// linked integration. Refresh is single-flighted per integration key.
type TokenManager interface {
	ExchangeCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Integration, error)
	GetValidAccessToken(ctx context.Context, integration *entity.Integration) (string, error)
	Refresh(ctx context.Context, integration *entity.Integration) (*entity.Integration, error)
}
