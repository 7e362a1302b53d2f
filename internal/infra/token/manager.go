// Package token implements the provider token lifecycle: code exchange,
// expiry-driven refresh, and durable persistence of rotated pairs.
package token

import (
	"context"
	"time"

	"gravity/internal/domain/constants"
	"gravity/internal/domain/entity"
	"gravity/internal/domain/repository"
	"gravity/internal/domain/service"
	"gravity/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Manager owns Integration rows. Refresh is single-flighted per
// integration key: providers invalidate a refresh token on use, so a
// second concurrent refresh with the same stored token would fail.
type Manager struct {
	provider string
	client   service.ProviderClient
	repo     repository.IntegrationRepository
	group    singleflight.Group
	now      func() time.Time
}

// NewManager constructs the token lifecycle manager.
func NewManager(client service.ProviderClient, repo repository.IntegrationRepository) service.TokenManager {
	return &Manager{
		provider: constants.ProviderStrava,
		client:   client,
		repo:     repo,
		now:      time.Now,
	}
}

// ExchangeCode swaps an authorization code for a token pair and
// persists the resulting integration.
func (m *Manager) ExchangeCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Integration, error) {
	pair, err := m.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "code exchange failed")
	}

	integration := &entity.Integration{
		UserID:            userID,
		Provider:          m.provider,
		AccessToken:       pair.AccessToken,
		RefreshToken:      pair.RefreshToken,
		ExpiresAt:         pair.ExpiresAt,
		ExternalAthleteID: pair.AthleteID,
		Scope:             pair.Scope,
	}

	if err := m.repo.Upsert(ctx, integration); err != nil {
		return nil, errors.Wrap(err, "failed to persist integration")
	}

	return integration, nil
}

// GetValidAccessToken returns the stored access token, refreshing first
// when it has expired.
func (m *Manager) GetValidAccessToken(ctx context.Context, integration *entity.Integration) (string, error) {
	if !integration.Expired(m.now()) {
		return integration.AccessToken, nil
	}

	refreshed, err := m.Refresh(ctx, integration)
	if err != nil {
		return "", err
	}

	return refreshed.AccessToken, nil
}

// Refresh exchanges the stored refresh token for a new pair. The new
// tokens are durable before any caller sees them; on failure the stored
// pair is left untouched so a later retry remains possible. Concurrent
// callers for the same integration share one in-flight refresh.
func (m *Manager) Refresh(ctx context.Context, integration *entity.Integration) (*entity.Integration, error) {
	key := integration.UserID.String() + "/" + integration.Provider

	result, err, _ := m.group.Do(key, func() (any, error) {
		return m.refresh(ctx, integration)
	})
	if err != nil {
		return nil, err
	}

	return result.(*entity.Integration), nil
}

func (m *Manager) refresh(ctx context.Context, integration *entity.Integration) (*entity.Integration, error) {
	pair, err := m.client.RefreshTokens(ctx, integration.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "token refresh failed")
	}

	// Some providers omit the refresh token when it did not rotate;
	// keep the stored one in that case.
	refreshToken := pair.RefreshToken
	if refreshToken == "" {
		refreshToken = integration.RefreshToken
	}

	if err := m.repo.UpdateTokens(ctx, integration.UserID, integration.Provider,
		pair.AccessToken, refreshToken, pair.ExpiresAt); err != nil {
		return nil, errors.Wrap(err, "failed to persist refreshed tokens")
	}

	refreshed := *integration
	refreshed.AccessToken = pair.AccessToken
	refreshed.RefreshToken = refreshToken
	refreshed.ExpiresAt = pair.ExpiresAt

	return &refreshed, nil
}
