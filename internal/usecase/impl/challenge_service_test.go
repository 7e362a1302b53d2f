package impl

import (
	"context"
	"testing"
	"time"

	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	mockRepo "gravity/internal/mocks/repository"
	mockSvc "gravity/internal/mocks/service"
	"gravity/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// challengeServiceFixtures holds all test dependencies for challenge service tests.
type challengeServiceFixtures struct {
	service       usecase.ChallengeUsecase
	challengeRepo *mockRepo.MockChallengeRepository
	profileRepo   *mockRepo.MockProfileRepository
	dailyLogRepo  *mockRepo.MockDailyLogRepository
	txManager     *mockRepo.MockTransactionManager
	qrcodeSvc     *mockSvc.MockQRCodeService
}

func createTestChallengeService(t *testing.T) challengeServiceFixtures {
	challengeRepo := mockRepo.NewMockChallengeRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	dailyLogRepo := mockRepo.NewMockDailyLogRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)

	svc := NewChallengeService(challengeRepo, profileRepo, dailyLogRepo, txManager, qrcodeSvc)

	return challengeServiceFixtures{
		service:       svc,
		challengeRepo: challengeRepo,
		profileRepo:   profileRepo,
		dailyLogRepo:  dailyLogRepo,
		txManager:     txManager,
		qrcodeSvc:     qrcodeSvc,
	}
}

func TestChallengeService_Create_AutoJoinsCreator(t *testing.T) {
	fx := createTestChallengeService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	challengeID := uuid.New()
	input := &usecase.ChallengeInput{
		Name:          "March Grind",
		JoinCode:      "GRIND26",
		StartDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PenaltyAmount: 5,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txChallengeRepo := mockRepo.NewMockChallengeRepository(t)
	txProfileRepo := mockRepo.NewMockProfileRepository(t)

	factory.EXPECT().NewChallengeRepository().Return(txChallengeRepo)
	factory.EXPECT().NewProfileRepository().Return(txProfileRepo)

	txChallengeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Challenge")).
		Run(func(_ context.Context, challenge *entity.Challenge) {
			challenge.ID = challengeID
		}).
		Return(nil)
	txProfileRepo.EXPECT().
		SetCurrentChallenge(ctx, creatorID, mock.AnythingOfType("*uuid.UUID")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	challenge, err := fx.service.Create(ctx, creatorID, input)
	require.NoError(t, err)

	assert.Equal(t, challengeID, challenge.ID)
	assert.Equal(t, "March Grind", challenge.Name)
	assert.Equal(t, creatorID, challenge.CreatedBy)
}

func TestChallengeService_Join_InvalidCode(t *testing.T) {
	fx := createTestChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindByJoinCode(ctx, "NOPE").
		Return(nil, repository.ErrChallengeNotFound)

	_, err := fx.service.Join(ctx, userID, "NOPE")
	require.ErrorIs(t, err, domainerrors.ErrInvalidJoinCode)
}

func TestChallengeService_Join_LinksProfile(t *testing.T) {
	fx := createTestChallengeService(t)

	ctx := context.Background()
	userID := uuid.New()
	challengeID := uuid.New()
	challenge := &entity.Challenge{ID: challengeID, JoinCode: "GRIND26"}

	fx.challengeRepo.EXPECT().
		FindByJoinCode(ctx, "grind26").
		Return(challenge, nil)
	fx.profileRepo.EXPECT().
		SetCurrentChallenge(ctx, userID, &challenge.ID).
		Return(nil)

	joined, err := fx.service.Join(ctx, userID, "grind26")
	require.NoError(t, err)
	assert.Equal(t, challengeID, joined.ID)
}

func TestChallengeService_JoinQR(t *testing.T) {
	fx := createTestChallengeService(t)

	ctx := context.Background()
	challengeID := uuid.New()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.challengeRepo.EXPECT().
		FindByID(ctx, challengeID).
		Return(&entity.Challenge{ID: challengeID, JoinCode: "GRIND26"}, nil)
	fx.qrcodeSvc.EXPECT().
		GenerateJoinQR("GRIND26").
		Return(png, nil)

	data, err := fx.service.JoinQR(ctx, challengeID)
	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestChallengeService_Leaderboard(t *testing.T) {
	fx := createTestChallengeService(t)
	svc := fx.service.(*challengeService)

	now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	challengeID := uuid.New()
	steady := uuid.New()
	slacker := uuid.New()
	challenge := &entity.Challenge{
		ID:            challengeID,
		StartDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PenaltyAmount: 5,
	}

	fx.challengeRepo.EXPECT().
		FindByID(ctx, challengeID).
		Return(challenge, nil)
	fx.profileRepo.EXPECT().
		ListByChallenge(ctx, challengeID).
		Return([]*entity.Profile{
			{ID: slacker, Username: "alex"},
			{ID: steady, Username: "sam"},
		}, nil)

	// steady logged 10 of the 10 elapsed days; slacker logged 7 with
	// one day double-logged, which must count once.
	var logs []*entity.DailyLog
	for day := 1; day <= 10; day++ {
		logs = append(logs, &entity.DailyLog{
			UserID: steady,
			Date:   time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		})
	}
	for day := 1; day <= 7; day++ {
		logs = append(logs, &entity.DailyLog{
			UserID: slacker,
			Date:   time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		})
	}
	logs = append(logs, &entity.DailyLog{UserID: slacker, Date: "2026-03-03"})

	fx.dailyLogRepo.EXPECT().
		ListSince(ctx, "2026-03-01").
		Return(logs, nil)

	entries, err := fx.service.Leaderboard(ctx, challengeID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, steady, entries[0].UserID)
	assert.Equal(t, 0, entries[0].MissedDays)
	assert.Equal(t, 0.0, entries[0].PenaltyDue)

	assert.Equal(t, slacker, entries[1].UserID)
	assert.Equal(t, 3, entries[1].MissedDays)
	assert.Equal(t, 15.0, entries[1].PenaltyDue)
}

func TestChallengeService_Leaderboard_FutureStartHasNoMisses(t *testing.T) {
	fx := createTestChallengeService(t)
	svc := fx.service.(*challengeService)

	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	challengeID := uuid.New()
	userID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindByID(ctx, challengeID).
		Return(&entity.Challenge{
			ID:            challengeID,
			StartDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			PenaltyAmount: 5,
		}, nil)
	fx.profileRepo.EXPECT().
		ListByChallenge(ctx, challengeID).
		Return([]*entity.Profile{{ID: userID, Username: "sam"}}, nil)
	fx.dailyLogRepo.EXPECT().
		ListSince(ctx, "2026-03-01").
		Return(nil, nil)

	entries, err := fx.service.Leaderboard(ctx, challengeID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].MissedDays)
	assert.Equal(t, 0.0, entries[0].PenaltyDue)
}
