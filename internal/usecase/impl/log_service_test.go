package impl

import (
	"context"
	"testing"
	"time"

	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	mockRepo "gravity/internal/mocks/repository"
	"gravity/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// logServiceFixtures holds all test dependencies for log service tests.
type logServiceFixtures struct {
	service      usecase.LogUsecase
	dailyLogRepo *mockRepo.MockDailyLogRepository
	profileRepo  *mockRepo.MockProfileRepository
	socialRepo   *mockRepo.MockSocialRepository
}

func createTestLogService(t *testing.T) logServiceFixtures {
	dailyLogRepo := mockRepo.NewMockDailyLogRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	socialRepo := mockRepo.NewMockSocialRepository(t)

	svc := NewLogService(dailyLogRepo, profileRepo, socialRepo)

	return logServiceFixtures{
		service:      svc,
		dailyLogRepo: dailyLogRepo,
		profileRepo:  profileRepo,
		socialRepo:   socialRepo,
	}
}

func TestLogService_Feed(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	logA := &entity.DailyLog{ID: uuid.New(), UserID: userID, Date: "2026-03-02"}
	logB := &entity.DailyLog{ID: uuid.New(), UserID: userID, Date: "2026-03-01"}

	fx.dailyLogRepo.EXPECT().
		ListRecent(ctx, 20).
		Return([]*entity.DailyLog{logA, logB}, nil)

	// Both logs share one author; the profile loads once.
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Username: "casey", AvatarURL: "https://cdn.example.com/a.png"}, nil).
		Once()

	fx.socialRepo.EXPECT().
		ListCommentsByLog(ctx, logA.ID).
		Return([]*entity.Comment{{LogID: logA.ID, Content: "nice pace"}}, nil)
	fx.socialRepo.EXPECT().
		ListCommentsByLog(ctx, logB.ID).
		Return(nil, nil)

	items, err := fx.service.Feed(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "casey", items[0].Username)
	assert.Len(t, items[0].Comments, 1)
	assert.Empty(t, items[1].Comments)
}

func TestLogService_Feed_ClampsLimit(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()

	fx.dailyLogRepo.EXPECT().
		ListRecent(ctx, 100).
		Return(nil, nil)

	items, err := fx.service.Feed(ctx, 5000)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLogService_AddComment(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	userID := uuid.New()
	logID := uuid.New()

	fx.dailyLogRepo.EXPECT().
		FindByID(ctx, logID).
		Return(&entity.DailyLog{ID: logID}, nil)
	fx.socialRepo.EXPECT().
		AddComment(ctx, mock.AnythingOfType("*entity.Comment")).
		Return(nil)

	comment, err := fx.service.AddComment(ctx, userID, logID, "nice pace")
	require.NoError(t, err)
	assert.Equal(t, logID, comment.LogID)
	assert.Equal(t, userID, comment.UserID)
	assert.Equal(t, "nice pace", comment.Content)
}

func TestLogService_AddComment_UnknownLog(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()

	fx.dailyLogRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrLogNotFound)

	_, err := fx.service.AddComment(ctx, uuid.New(), uuid.New(), "nice pace")
	require.ErrorIs(t, err, domainerrors.ErrLogNotFound)
}

func TestLogService_ReportLog(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	reporterID := uuid.New()
	logID := uuid.New()

	fx.dailyLogRepo.EXPECT().
		FindByID(ctx, logID).
		Return(&entity.DailyLog{ID: logID}, nil)
	fx.socialRepo.EXPECT().
		AddReport(ctx, mock.AnythingOfType("*entity.Report")).
		Return(nil)

	report, err := fx.service.ReportLog(ctx, reporterID, logID, "screenshot looks reused")
	require.NoError(t, err)
	assert.Equal(t, "pending", report.Status)
	assert.Equal(t, reporterID, report.ReporterID)
}

func TestLogService_Stats_StreakIncludesToday(t *testing.T) {
	fx := createTestLogService(t)
	svc := fx.service.(*logService)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	userID := uuid.New()

	fx.dailyLogRepo.EXPECT().
		ListByUserSince(ctx, userID, "2025-03-09").
		Return([]*entity.DailyLog{
			{UserID: userID, Date: "2026-03-10"},
			{UserID: userID, Date: "2026-03-09"},
			{UserID: userID, Date: "2026-03-08"},
			{UserID: userID, Date: "2026-03-05"},
		}, nil)

	stats, err := fx.service.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalDays)
	assert.Equal(t, 3, stats.CurrentStreak)
}

func TestLogService_Stats_StreakSurvivesMissingToday(t *testing.T) {
	fx := createTestLogService(t)
	svc := fx.service.(*logService)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	userID := uuid.New()

	fx.dailyLogRepo.EXPECT().
		ListByUserSince(ctx, userID, "2025-03-09").
		Return([]*entity.DailyLog{
			{UserID: userID, Date: "2026-03-09"},
			{UserID: userID, Date: "2026-03-08"},
		}, nil)

	stats, err := fx.service.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.CurrentStreak)
}

func TestLogService_Stats_BrokenStreak(t *testing.T) {
	fx := createTestLogService(t)
	svc := fx.service.(*logService)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	userID := uuid.New()

	fx.dailyLogRepo.EXPECT().
		ListByUserSince(ctx, userID, "2025-03-09").
		Return([]*entity.DailyLog{
			{UserID: userID, Date: "2026-03-07"},
			{UserID: userID, Date: "2026-03-06"},
		}, nil)

	stats, err := fx.service.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDays)
	assert.Equal(t, 0, stats.CurrentStreak)
}

func TestLogService_OverrideVerification_RequiresAdmin(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(&entity.Profile{ID: adminID}, nil)

	err := fx.service.OverrideVerification(ctx, adminID, uuid.New(), false)
	require.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestLogService_OverrideVerification(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	adminID := uuid.New()
	logID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(&entity.Profile{ID: adminID, IsAdmin: true}, nil)
	fx.dailyLogRepo.EXPECT().
		OverrideVerification(ctx, logID, true).
		Return(nil)

	err := fx.service.OverrideVerification(ctx, adminID, logID, true)
	require.NoError(t, err)
}

func TestLogService_DeleteLog(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	adminID := uuid.New()
	logID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(&entity.Profile{ID: adminID, IsAdmin: true}, nil)
	fx.dailyLogRepo.EXPECT().
		Delete(ctx, logID).
		Return(nil)

	err := fx.service.DeleteLog(ctx, adminID, logID)
	require.NoError(t, err)
}

func TestLogService_ListPendingReports(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, adminID).
		Return(&entity.Profile{ID: adminID, IsAdmin: true}, nil)
	fx.socialRepo.EXPECT().
		ListReportsByStatus(ctx, "pending").
		Return([]*entity.Report{{Reason: "screenshot looks reused", Status: "pending"}}, nil)

	reports, err := fx.service.ListPendingReports(ctx, adminID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
}

func TestLogService_RegisterDevice(t *testing.T) {
	fx := createTestLogService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.socialRepo.EXPECT().
		RegisterDevice(ctx, mock.AnythingOfType("*entity.PushDevice")).
		RunAndReturn(func(_ context.Context, device *entity.PushDevice) error {
			assert.Equal(t, userID, device.UserID)
			assert.Equal(t, "fcm-token-1", device.FCMToken)
			return nil
		})

	err := fx.service.RegisterDevice(ctx, userID, "fcm-token-1", "gravity-ios/1.4")
	require.NoError(t, err)
}
