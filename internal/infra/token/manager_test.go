package token

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gravity/internal/domain/entity"
	"gravity/internal/domain/service"
	"gravity/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProviderClient counts refresh calls and can delay them to widen
// the race window for the single-flight assertion.
type fakeProviderClient struct {
	refreshCalls atomic.Int64
	refreshDelay time.Duration
	refreshErr   error
	pair         *service.TokenPair
}

func (f *fakeProviderClient) ExchangeCode(ctx context.Context, code string) (*service.TokenPair, error) {
	return f.pair, f.refreshErr
}

func (f *fakeProviderClient) RefreshTokens(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	f.refreshCalls.Add(1)
	if f.refreshDelay > 0 {
		time.Sleep(f.refreshDelay)
	}
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}

	return f.pair, nil
}

func (f *fakeProviderClient) FetchActivity(ctx context.Context, accessToken string, activityID int64) (*entity.ActivityDetail, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProviderClient) FetchRecentActivities(ctx context.Context, accessToken string, perPage int) ([]*entity.ActivityDetail, error) {
	return nil, errors.New("not implemented")
}

// fakeIntegrationRepo records writes in memory.
type fakeIntegrationRepo struct {
	mu          sync.Mutex
	stored      *entity.Integration
	updateCalls int
	upsertCalls int
}

func (f *fakeIntegrationRepo) FindByUser(ctx context.Context, userID uuid.UUID, provider string) (*entity.Integration, error) {
	return f.stored, nil
}

func (f *fakeIntegrationRepo) FindByExternalAthleteID(ctx context.Context, provider, athleteID string) (*entity.Integration, error) {
	return f.stored, nil
}

func (f *fakeIntegrationRepo) Upsert(ctx context.Context, integration *entity.Integration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upsertCalls++
	f.stored = integration

	return nil
}

func (f *fakeIntegrationRepo) UpdateTokens(ctx context.Context, userID uuid.UUID, provider, accessToken, refreshToken string, expiresAt int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.stored = &entity.Integration{
		UserID:       userID,
		Provider:     provider,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}

	return nil
}

func (f *fakeIntegrationRepo) Delete(ctx context.Context, userID uuid.UUID, provider string) error {
	return nil
}

func newTestManager(client *fakeProviderClient, repo *fakeIntegrationRepo, now time.Time) *Manager {
	m := NewManager(client, repo).(*Manager)
	m.now = func() time.Time { return now }

	return m
}

func expiredIntegration(now time.Time) *entity.Integration {
	return &entity.Integration{
		UserID:       uuid.New(),
		Provider:     "strava",
		AccessToken:  "at-old",
		RefreshToken: "rt-old",
		ExpiresAt:    now.Add(-time.Hour).Unix(),
	}
}

func TestGetValidAccessToken_FreshTokenReturnedUnchanged(t *testing.T) {
	now := time.Now()
	client := &fakeProviderClient{}
	repo := &fakeIntegrationRepo{}
	manager := newTestManager(client, repo, now)

	integration := expiredIntegration(now)
	integration.ExpiresAt = now.Add(time.Hour).Unix()

	token, err := manager.GetValidAccessToken(context.Background(), integration)

	require.NoError(t, err)
	assert.Equal(t, "at-old", token)
	assert.Equal(t, int64(0), client.refreshCalls.Load())
}

func TestGetValidAccessToken_ExpiredTriggersRefresh(t *testing.T) {
	now := time.Now()
	client := &fakeProviderClient{
		pair: &service.TokenPair{
			AccessToken:  "at-new",
			RefreshToken: "rt-new",
			ExpiresAt:    now.Add(6 * time.Hour).Unix(),
		},
	}
	repo := &fakeIntegrationRepo{}
	manager := newTestManager(client, repo, now)

	token, err := manager.GetValidAccessToken(context.Background(), expiredIntegration(now))

	require.NoError(t, err)
	assert.Equal(t, "at-new", token)
	assert.Equal(t, 1, repo.updateCalls, "new tokens must be durable before being handed out")
}

// Under N concurrent callers observing an expired token, exactly one
// refresh call reaches the provider and everyone shares its result.
func TestRefresh_SingleFlight(t *testing.T) {
	now := time.Now()
	client := &fakeProviderClient{
		refreshDelay: 50 * time.Millisecond,
		pair: &service.TokenPair{
			AccessToken:  "at-new",
			RefreshToken: "rt-new",
			ExpiresAt:    now.Add(6 * time.Hour).Unix(),
		},
	}
	repo := &fakeIntegrationRepo{}
	manager := newTestManager(client, repo, now)
	integration := expiredIntegration(now)

	const callers = 16

	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens[i], errs[i] = manager.GetValidAccessToken(context.Background(), integration)
		}()
	}
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "at-new", tokens[i])
	}
	assert.Equal(t, int64(1), client.refreshCalls.Load())
}

// Scenario: the provider responds without a new access token. The
// operation fails, stored tokens stay untouched, and a later retry
// remains possible.
func TestRefresh_MissingAccessTokenLeavesStoredTokens(t *testing.T) {
	now := time.Now()
	refreshErr := errors.New("provider response contains no access token")
	client := &fakeProviderClient{refreshErr: refreshErr}
	repo := &fakeIntegrationRepo{stored: expiredIntegration(now)}
	manager := newTestManager(client, repo, now)

	_, err := manager.Refresh(context.Background(), repo.stored)

	require.Error(t, err)
	assert.Equal(t, 0, repo.updateCalls)
	assert.Equal(t, "at-old", repo.stored.AccessToken)
	assert.Equal(t, "rt-old", repo.stored.RefreshToken)
}

func TestRefresh_KeepsStoredRefreshTokenWhenProviderOmitsIt(t *testing.T) {
	now := time.Now()
	client := &fakeProviderClient{
		pair: &service.TokenPair{
			AccessToken: "at-new",
			ExpiresAt:   now.Add(6 * time.Hour).Unix(),
		},
	}
	repo := &fakeIntegrationRepo{}
	manager := newTestManager(client, repo, now)

	refreshed, err := manager.Refresh(context.Background(), expiredIntegration(now))

	require.NoError(t, err)
	assert.Equal(t, "rt-old", refreshed.RefreshToken)
}

func TestExchangeCode_PersistsIntegration(t *testing.T) {
	now := time.Now()
	client := &fakeProviderClient{
		pair: &service.TokenPair{
			AccessToken:  "at-1",
			RefreshToken: "rt-1",
			ExpiresAt:    now.Add(6 * time.Hour).Unix(),
			AthleteID:    "7117",
			Scope:        "activity:read_all",
		},
	}
	repo := &fakeIntegrationRepo{}
	manager := newTestManager(client, repo, now)
	userID := uuid.New()

	integration, err := manager.ExchangeCode(context.Background(), userID, "the-code")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.upsertCalls)
	assert.Equal(t, userID, integration.UserID)
	assert.Equal(t, "7117", integration.ExternalAthleteID)
}
