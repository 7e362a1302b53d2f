package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gravity/internal/domain/entity"
	"gravity/internal/domain/service"
	mockRepo "gravity/internal/mocks/repository"
	mockSvc "gravity/internal/mocks/service"
	"gravity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// logNotifierFixtures holds all test dependencies for log notifier tests.
type logNotifierFixtures struct {
	notifier        usecase.LogNotifier
	profileRepo     *mockRepo.MockProfileRepository
	socialRepo      *mockRepo.MockSocialRepository
	notificationSvc *mockSvc.MockNotificationService
	publisher       *mockSvc.MockEventPublisher
}

func createTestLogNotifier(t *testing.T) logNotifierFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	socialRepo := mockRepo.NewMockSocialRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	notifier := NewLogNotifier(profileRepo, socialRepo, notificationSvc, publisher, logger)

	return logNotifierFixtures{
		notifier:        notifier,
		profileRepo:     profileRepo,
		socialRepo:      socialRepo,
		notificationSvc: notificationSvc,
		publisher:       publisher,
	}
}

func verifiedLog(userID uuid.UUID) *entity.DailyLog {
	verified := true
	return &entity.DailyLog{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       "2026-03-01",
		IsVerified: &verified,
	}
}

func TestLogNotifier_PublishesAndPushesToTeammates(t *testing.T) {
	fx := createTestLogNotifier(t)

	ctx := context.Background()
	userID := uuid.New()
	teammateID := uuid.New()
	challengeID := uuid.New()
	log := verifiedLog(userID)

	var published *service.LogEvent
	fx.publisher.EXPECT().
		PublishLogEvent(ctx, mock.AnythingOfType("*service.LogEvent")).
		RunAndReturn(func(_ context.Context, event *service.LogEvent) error {
			published = event
			return nil
		})

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Username: "casey", CurrentChallengeID: &challengeID}, nil)
	fx.profileRepo.EXPECT().
		ListByChallenge(ctx, challengeID).
		Return([]*entity.Profile{
			{ID: userID, Username: "casey"},
			{ID: teammateID, Username: "sam"},
		}, nil)
	fx.socialRepo.EXPECT().
		ListDevicesForUsers(ctx, []uuid.UUID{teammateID}).
		Return([]*entity.PushDevice{{UserID: teammateID, FCMToken: "token-sam"}}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-sam"}, "Gravity Update",
			"casey logged a verified workout for 2026-03-01",
			map[string]string{"log_id": log.ID.String(), "date": "2026-03-01"}).
		Return(1, 0, nil, nil)

	fx.notifier.NotifyLogReconciled(ctx, log, entity.SourceAutomated)

	require.NotNil(t, published)
	assert.Equal(t, log.ID.String(), published.LogID)
	assert.Equal(t, "2026-03-01", published.Date)
	assert.True(t, published.Verified)
	assert.Equal(t, "automated", published.Source)
}

func TestLogNotifier_UnverifiedLogSkipsPush(t *testing.T) {
	fx := createTestLogNotifier(t)

	ctx := context.Background()
	verified := false
	log := &entity.DailyLog{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Date:       "2026-03-01",
		IsVerified: &verified,
	}

	fx.publisher.EXPECT().
		PublishLogEvent(ctx, mock.AnythingOfType("*service.LogEvent")).
		Return(nil)

	// No profile or notification expectations: unverified logs only
	// publish the event.
	fx.notifier.NotifyLogReconciled(ctx, log, entity.SourceHuman)
}

func TestLogNotifier_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestLogNotifier(t)

	ctx := context.Background()
	userID := uuid.New()
	log := verifiedLog(userID)

	fx.publisher.EXPECT().
		PublishLogEvent(ctx, mock.AnythingOfType("*service.LogEvent")).
		Return(errors.New("pubsub unavailable"))
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Username: "casey"}, nil)

	// Actor has no challenge, so the push path ends after the profile
	// load. The publish failure must not panic or propagate.
	fx.notifier.NotifyLogReconciled(ctx, log, entity.SourceAutomated)
}

func TestLogNotifier_NoDevicesNoSend(t *testing.T) {
	fx := createTestLogNotifier(t)

	ctx := context.Background()
	userID := uuid.New()
	teammateID := uuid.New()
	challengeID := uuid.New()
	log := verifiedLog(userID)

	fx.publisher.EXPECT().
		PublishLogEvent(ctx, mock.AnythingOfType("*service.LogEvent")).
		Return(nil)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Username: "casey", CurrentChallengeID: &challengeID}, nil)
	fx.profileRepo.EXPECT().
		ListByChallenge(ctx, challengeID).
		Return([]*entity.Profile{
			{ID: userID, Username: "casey"},
			{ID: teammateID, Username: "sam"},
		}, nil)
	fx.socialRepo.EXPECT().
		ListDevicesForUsers(ctx, []uuid.UUID{teammateID}).
		Return(nil, nil)

	fx.notifier.NotifyLogReconciled(ctx, log, entity.SourceAutomated)
}

func TestLogNotifier_NilNotificationServiceOnlyPublishes(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	socialRepo := mockRepo.NewMockSocialRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	notifier := NewLogNotifier(profileRepo, socialRepo, nil, publisher, logger)

	ctx := context.Background()
	log := verifiedLog(uuid.New())

	publisher.EXPECT().
		PublishLogEvent(ctx, mock.AnythingOfType("*service.LogEvent")).
		Return(nil)

	notifier.NotifyLogReconciled(ctx, log, entity.SourceAutomated)
}
