package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	mockRepo "gravity/internal/mocks/repository"
	mockSvc "gravity/internal/mocks/service"
	mockUC "gravity/internal/mocks/usecase"
	"gravity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// integrationServiceFixtures holds all test dependencies for integration service tests.
type integrationServiceFixtures struct {
	service         usecase.IntegrationUsecase
	integrationRepo *mockRepo.MockIntegrationRepository
	profileRepo     *mockRepo.MockProfileRepository
	challengeRepo   *mockRepo.MockChallengeRepository
	dailyLogRepo    *mockRepo.MockDailyLogRepository
	tokenManager    *mockSvc.MockTokenManager
	providerClient  *mockSvc.MockProviderClient
	notifier        *mockUC.MockLogNotifier
}

func createTestIntegrationService(t *testing.T) integrationServiceFixtures {
	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	challengeRepo := mockRepo.NewMockChallengeRepository(t)
	dailyLogRepo := mockRepo.NewMockDailyLogRepository(t)
	tokenManager := mockSvc.NewMockTokenManager(t)
	providerClient := mockSvc.NewMockProviderClient(t)
	notifier := mockUC.NewMockLogNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewIntegrationService(integrationRepo, profileRepo, challengeRepo,
		dailyLogRepo, tokenManager, providerClient, notifier, logger)

	return integrationServiceFixtures{
		service:         svc,
		integrationRepo: integrationRepo,
		profileRepo:     profileRepo,
		challengeRepo:   challengeRepo,
		dailyLogRepo:    dailyLogRepo,
		tokenManager:    tokenManager,
		providerClient:  providerClient,
		notifier:        notifier,
	}
}

func TestIntegrationService_Link(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	userID := uuid.New()
	integration := &entity.Integration{
		UserID:            userID,
		Provider:          "strava",
		ExternalAthleteID: "42",
		Scope:             "read,activity:read_all",
	}

	fx.tokenManager.EXPECT().
		ExchangeCode(ctx, userID, "oauth-code").
		Return(integration, nil)

	linked, err := fx.service.Link(ctx, userID, "oauth-code")
	require.NoError(t, err)
	assert.Equal(t, "42", linked.ExternalAthleteID)
}

func TestIntegrationService_Link_ProviderFailure(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenManager.EXPECT().
		ExchangeCode(ctx, userID, "bad-code").
		Return(nil, errors.New("provider rejected code"))

	_, err := fx.service.Link(ctx, userID, "bad-code")
	require.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
}

func TestIntegrationService_Unlink_NotLinked(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.integrationRepo.EXPECT().
		Delete(ctx, userID, "strava").
		Return(repository.ErrIntegrationNotFound)

	err := fx.service.Unlink(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrIntegrationNotFound)
}

func TestIntegrationService_Status_NotLinked(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.integrationRepo.EXPECT().
		FindByUser(ctx, userID, "strava").
		Return(nil, repository.ErrIntegrationNotFound)

	status, err := fx.service.Status(ctx, userID)
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, "strava", status.Provider)
}

func TestIntegrationService_Status_Linked(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.integrationRepo.EXPECT().
		FindByUser(ctx, userID, "strava").
		Return(&entity.Integration{
			UserID:            userID,
			Provider:          "strava",
			ExternalAthleteID: "42",
			Scope:             "activity:read_all",
			ExpiresAt:         1790000000,
		}, nil)

	status, err := fx.service.Status(ctx, userID)
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "42", status.AthleteID)
	assert.Equal(t, int64(1790000000), status.ExpiresAt)
}

func TestIntegrationService_ManualSync_SkipsManualEntries(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()
	integration := &entity.Integration{UserID: userID, Provider: "strava"}

	activities := []*entity.ActivityDetail{
		{
			Category:      "Run",
			MovingTimeSec: 40 * 60,
			StartDate:     time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC),
		},
		{
			Category:      "Run",
			MovingTimeSec: 35 * 60,
			StartDate:     time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC),
			IsManualEntry: true,
		},
		{
			Category:      "Ride",
			MovingTimeSec: 60 * 60,
			StartDate:     time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC),
		},
	}

	fx.integrationRepo.EXPECT().
		FindByUser(ctx, userID, "strava").
		Return(integration, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, CurrentChallengeID: &challengeID}, nil)
	fx.challengeRepo.EXPECT().
		FindByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID}, nil)
	fx.tokenManager.EXPECT().
		GetValidAccessToken(ctx, integration).
		Return("access-token", nil)
	fx.providerClient.EXPECT().
		FetchRecentActivities(ctx, "access-token", 30).
		Return(activities, nil)
	fx.dailyLogRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DailyLog"), entity.SourceAutomated).
		Return(true, nil).
		Times(2)
	fx.notifier.EXPECT().
		NotifyLogReconciled(mock.Anything, mock.AnythingOfType("*entity.DailyLog"), entity.SourceAutomated).
		Times(2)

	result, err := fx.service.ManualSync(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Synced)
}

func TestIntegrationService_ManualSync_VerifiedDaysNotCounted(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()
	integration := &entity.Integration{UserID: userID, Provider: "strava"}

	fx.integrationRepo.EXPECT().
		FindByUser(ctx, userID, "strava").
		Return(integration, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, CurrentChallengeID: &challengeID}, nil)
	fx.challengeRepo.EXPECT().
		FindByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID}, nil)
	fx.tokenManager.EXPECT().
		GetValidAccessToken(ctx, integration).
		Return("access-token", nil)
	fx.providerClient.EXPECT().
		FetchRecentActivities(ctx, "access-token", 30).
		Return([]*entity.ActivityDetail{
			{
				Category:      "Run",
				MovingTimeSec: 40 * 60,
				StartDate:     time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC),
			},
		}, nil)
	fx.dailyLogRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DailyLog"), entity.SourceAutomated).
		Return(false, nil)

	result, err := fx.service.ManualSync(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 0, result.Synced)
}

func TestIntegrationService_ManualSync_RequiresActiveChallenge(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.integrationRepo.EXPECT().
		FindByUser(ctx, userID, "strava").
		Return(&entity.Integration{UserID: userID}, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID}, nil)

	_, err := fx.service.ManualSync(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrChallengeNotFound)
}

func TestIntegrationService_ManualSync_ProviderDown(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()
	integration := &entity.Integration{UserID: userID, Provider: "strava"}

	fx.integrationRepo.EXPECT().
		FindByUser(ctx, userID, "strava").
		Return(integration, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, CurrentChallengeID: &challengeID}, nil)
	fx.challengeRepo.EXPECT().
		FindByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID}, nil)
	fx.tokenManager.EXPECT().
		GetValidAccessToken(ctx, integration).
		Return("access-token", nil)
	fx.providerClient.EXPECT().
		FetchRecentActivities(ctx, "access-token", 30).
		Return(nil, errors.New("502 from provider"))

	_, err := fx.service.ManualSync(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
}
