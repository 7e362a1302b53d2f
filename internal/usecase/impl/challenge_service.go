package impl

import (
	"context"
	"math"
	"sort"
	"time"

	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	"gravity/internal/domain/service"
	"gravity/internal/errors"
	"gravity/internal/usecase"

	"github.com/google/uuid"
)

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	profileRepo   repository.ProfileRepository
	dailyLogRepo  repository.DailyLogRepository
	txManager     repository.TransactionManager
	qrcodeSvc     service.QRCodeService
	now           func() time.Time
}

// NewChallengeService creates the challenge management service.
func NewChallengeService(
	challengeRepo repository.ChallengeRepository,
	profileRepo repository.ProfileRepository,
	dailyLogRepo repository.DailyLogRepository,
	txManager repository.TransactionManager,
	qrcodeSvc service.QRCodeService,
) usecase.ChallengeUsecase {
	return &challengeService{
		challengeRepo: challengeRepo,
		profileRepo:   profileRepo,
		dailyLogRepo:  dailyLogRepo,
		txManager:     txManager,
		qrcodeSvc:     qrcodeSvc,
		now:           time.Now,
	}
}

// Create persists the challenge and auto-joins its creator in one
// transaction.
func (s *challengeService) Create(ctx context.Context, creatorID uuid.UUID, input *usecase.ChallengeInput) (*entity.Challenge, error) {
	challenge := &entity.Challenge{
		Name:                input.Name,
		JoinCode:            input.JoinCode,
		StartDate:           input.StartDate,
		PenaltyAmount:       input.PenaltyAmount,
		RequiredDaysPerWeek: input.RequiredDaysPerWeek,
		Rules:               input.Rules,
		CreatedBy:           creatorID,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewChallengeRepository().Create(ctx, challenge); err != nil {
			return err
		}

		return factory.NewProfileRepository().SetCurrentChallenge(ctx, creatorID, &challenge.ID)
	})
	if err != nil {
		return nil, err
	}

	return challenge, nil
}

// Join links the user to the challenge matching the join code.
func (s *challengeService) Join(ctx context.Context, userID uuid.UUID, code string) (*entity.Challenge, error) {
	challenge, err := s.challengeRepo.FindByJoinCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrInvalidJoinCode
		}

		return nil, err
	}

	if err := s.profileRepo.SetCurrentChallenge(ctx, userID, &challenge.ID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return challenge, nil
}

// Get returns one challenge.
func (s *challengeService) Get(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	challenge, err := s.challengeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrChallengeNotFound
		}

		return nil, err
	}

	return challenge, nil
}

// JoinQR renders the challenge's join code as a PNG image.
func (s *challengeService) JoinQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	challenge, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.qrcodeSvc.GenerateJoinQR(challenge.JoinCode)
}

// Leaderboard computes the standings on read. A day counts as logged
// when any daily log exists for it; missed days and penalty derive from
// the elapsed span since the challenge start.
func (s *challengeService) Leaderboard(ctx context.Context, id uuid.UUID) ([]*entity.LeaderboardEntry, error) {
	challenge, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := s.profileRepo.ListByChallenge(ctx, id)
	if err != nil {
		return nil, err
	}

	since := challenge.StartDate.UTC().Format("2006-01-02")
	logs, err := s.dailyLogRepo.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	loggedDates := make(map[uuid.UUID]map[string]struct{})
	for _, log := range logs {
		if loggedDates[log.UserID] == nil {
			loggedDates[log.UserID] = make(map[string]struct{})
		}
		loggedDates[log.UserID][log.Date] = struct{}{}
	}

	daysElapsed := int(math.Floor(s.now().Sub(challenge.StartDate).Hours() / 24))
	if daysElapsed < 0 {
		daysElapsed = 0
	}

	entries := make([]*entity.LeaderboardEntry, 0, len(participants))
	for _, participant := range participants {
		missed := daysElapsed - len(loggedDates[participant.ID])
		if missed < 0 {
			missed = 0
		}

		entries = append(entries, &entity.LeaderboardEntry{
			UserID:     participant.ID,
			Username:   participant.Username,
			IsAdmin:    participant.IsAdmin,
			MissedDays: missed,
			PenaltyDue: float64(missed) * challenge.PenaltyAmount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MissedDays < entries[j].MissedDays
	})

	return entries, nil
}
