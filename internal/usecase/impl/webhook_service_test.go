package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gravity/config"
	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	mockRepo "gravity/internal/mocks/repository"
	mockSvc "gravity/internal/mocks/service"
	mockUC "gravity/internal/mocks/usecase"
	"gravity/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// webhookServiceFixtures holds all test dependencies for webhook service tests.
type webhookServiceFixtures struct {
	service         usecase.WebhookUsecase
	integrationRepo *mockRepo.MockIntegrationRepository
	profileRepo     *mockRepo.MockProfileRepository
	challengeRepo   *mockRepo.MockChallengeRepository
	dailyLogRepo    *mockRepo.MockDailyLogRepository
	tokenManager    *mockSvc.MockTokenManager
	providerClient  *mockSvc.MockProviderClient
	notifier        *mockUC.MockLogNotifier
}

func createTestWebhookService(t *testing.T) webhookServiceFixtures {
	cfg := &config.Config{
		Provider: &config.ProviderConfig{VerifyToken: "hook-secret"},
	}

	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	challengeRepo := mockRepo.NewMockChallengeRepository(t)
	dailyLogRepo := mockRepo.NewMockDailyLogRepository(t)
	tokenManager := mockSvc.NewMockTokenManager(t)
	providerClient := mockSvc.NewMockProviderClient(t)
	notifier := mockUC.NewMockLogNotifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewWebhookService(cfg, integrationRepo, profileRepo, challengeRepo,
		dailyLogRepo, tokenManager, providerClient, notifier, logger)

	return webhookServiceFixtures{
		service:         service,
		integrationRepo: integrationRepo,
		profileRepo:     profileRepo,
		challengeRepo:   challengeRepo,
		dailyLogRepo:    dailyLogRepo,
		tokenManager:    tokenManager,
		providerClient:  providerClient,
		notifier:        notifier,
	}
}

func TestWebhookService_VerifySubscription(t *testing.T) {
	fx := createTestWebhookService(t)

	tests := []struct {
		name      string
		mode      string
		token     string
		challenge string
		wantErr   error
	}{
		{
			name:      "valid handshake echoes challenge",
			mode:      "subscribe",
			token:     "hook-secret",
			challenge: "echo-me-back",
		},
		{
			name:    "missing challenge",
			mode:    "subscribe",
			token:   "hook-secret",
			wantErr: domainerrors.ErrWebhookMissingParams,
		},
		{
			name:      "missing mode",
			token:     "hook-secret",
			challenge: "echo-me-back",
			wantErr:   domainerrors.ErrWebhookMissingParams,
		},
		{
			name:      "wrong mode",
			mode:      "unsubscribe",
			token:     "hook-secret",
			challenge: "echo-me-back",
			wantErr:   domainerrors.ErrWebhookTokenMismatch,
		},
		{
			name:      "wrong token",
			mode:      "subscribe",
			token:     "guessed-secret",
			challenge: "echo-me-back",
			wantErr:   domainerrors.ErrWebhookTokenMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			echo, err := fx.service.VerifySubscription(tt.mode, tt.token, tt.challenge)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, echo)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.challenge, echo)
		})
	}
}

func TestWebhookService_ProcessEvent_IgnoresNonActivityEvents(t *testing.T) {
	fx := createTestWebhookService(t)

	event := &entity.ActivityEvent{
		ObjectType: "athlete",
		AspectType: "update",
		OwnerID:    12345,
	}

	err := fx.service.ProcessEvent(context.Background(), event)
	require.NoError(t, err)
}

func TestWebhookService_ProcessEvent_UnlinkedAthleteIsNoOp(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	event := &entity.ActivityEvent{
		ObjectType: entity.ObjectTypeActivity,
		AspectType: entity.AspectCreate,
		OwnerID:    99887766,
		ObjectID:   1,
	}

	fx.integrationRepo.EXPECT().
		FindByExternalAthleteID(ctx, "strava", "99887766").
		Return(nil, repository.ErrIntegrationNotFound)

	err := fx.service.ProcessEvent(ctx, event)
	require.NoError(t, err)
}

func TestWebhookService_ProcessEvent_ReconcilesVerifiedLog(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()
	event := &entity.ActivityEvent{
		ObjectType: entity.ObjectTypeActivity,
		AspectType: entity.AspectCreate,
		OwnerID:    42,
		ObjectID:   1001,
	}

	integration := &entity.Integration{UserID: userID, Provider: "strava", ExternalAthleteID: "42"}
	minDuration := 30
	minHR := 120
	challenge := &entity.Challenge{
		ID: challengeID,
		Rules: entity.RuleSet{
			Default: entity.DefaultRule{
				MinDurationMinutes: &minDuration,
				MinHeartRate:       &minHR,
			},
		},
	}
	detail := &entity.ActivityDetail{
		Category:         "Run",
		MovingTimeSec:    45 * 60,
		AverageHeartrate: 151.4,
		DistanceMeters:   8000,
		StartDate:        time.Date(2026, 3, 1, 7, 30, 0, 0, time.UTC),
	}

	fx.integrationRepo.EXPECT().
		FindByExternalAthleteID(ctx, "strava", "42").
		Return(integration, nil)
	fx.tokenManager.EXPECT().
		GetValidAccessToken(ctx, integration).
		Return("access-token", nil)
	fx.providerClient.EXPECT().
		FetchActivity(ctx, "access-token", int64(1001)).
		Return(detail, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, CurrentChallengeID: &challengeID}, nil)
	fx.challengeRepo.EXPECT().
		FindByID(ctx, challengeID).
		Return(challenge, nil)

	var written *entity.DailyLog
	fx.dailyLogRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DailyLog"), entity.SourceAutomated).
		Run(func(_ context.Context, log *entity.DailyLog, _ entity.LogSource) {
			written = log
		}).
		Return(true, nil)
	fx.notifier.EXPECT().
		NotifyLogReconciled(mock.Anything, mock.AnythingOfType("*entity.DailyLog"), entity.SourceAutomated)

	err := fx.service.ProcessEvent(ctx, event)
	require.NoError(t, err)

	require.NotNil(t, written)
	assert.Equal(t, userID, written.UserID)
	assert.Equal(t, "2026-03-01", written.Date)
	assert.Equal(t, 45, written.DurationMinutes)
	assert.Equal(t, 151, written.AvgHeartRate)
	assert.InDelta(t, 8.0, written.DistanceKm, 0.001)
	assert.True(t, written.Verified())
}

func TestWebhookService_ProcessEvent_VerifiedRowSkipsRewrite(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()
	event := &entity.ActivityEvent{
		ObjectType: entity.ObjectTypeActivity,
		AspectType: entity.AspectUpdate,
		OwnerID:    42,
		ObjectID:   1002,
	}

	fx.integrationRepo.EXPECT().
		FindByExternalAthleteID(ctx, "strava", "42").
		Return(&entity.Integration{UserID: userID}, nil)
	fx.tokenManager.EXPECT().
		GetValidAccessToken(ctx, mock.Anything).
		Return("access-token", nil)
	fx.providerClient.EXPECT().
		FetchActivity(ctx, "access-token", int64(1002)).
		Return(&entity.ActivityDetail{
			Category:      "Run",
			MovingTimeSec: 10 * 60,
			StartDate:     time.Date(2026, 3, 1, 7, 30, 0, 0, time.UTC),
		}, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, CurrentChallengeID: &challengeID}, nil)
	fx.challengeRepo.EXPECT().
		FindByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID}, nil)
	fx.dailyLogRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.DailyLog"), entity.SourceAutomated).
		Return(false, nil)

	// No notifier expectation: a skipped write must not fan out.
	err := fx.service.ProcessEvent(ctx, event)
	require.NoError(t, err)
}

func TestWebhookService_ProcessEvent_NoActiveChallenge(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &entity.ActivityEvent{
		ObjectType: entity.ObjectTypeActivity,
		AspectType: entity.AspectCreate,
		OwnerID:    42,
		ObjectID:   1003,
	}

	fx.integrationRepo.EXPECT().
		FindByExternalAthleteID(ctx, "strava", "42").
		Return(&entity.Integration{UserID: userID}, nil)
	fx.tokenManager.EXPECT().
		GetValidAccessToken(ctx, mock.Anything).
		Return("access-token", nil)
	fx.providerClient.EXPECT().
		FetchActivity(ctx, "access-token", int64(1003)).
		Return(&entity.ActivityDetail{
			Category:  "Run",
			StartDate: time.Date(2026, 3, 1, 7, 30, 0, 0, time.UTC),
		}, nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID}, nil)

	err := fx.service.ProcessEvent(ctx, event)
	require.NoError(t, err)
}
