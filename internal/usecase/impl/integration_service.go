package impl

import (
	"context"
	"log/slog"

	"gravity/internal/domain/constants"
	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	"gravity/internal/domain/rules"
	"gravity/internal/domain/service"
	"gravity/internal/errors"
	"gravity/internal/usecase"

	"github.com/google/uuid"
)

// syncPageSize is how many recent activities a manual sync considers.
const syncPageSize = 30

type integrationService struct {
	integrationRepo repository.IntegrationRepository
	profileRepo     repository.ProfileRepository
	challengeRepo   repository.ChallengeRepository
	dailyLogRepo    repository.DailyLogRepository
	tokenManager    service.TokenManager
	providerClient  service.ProviderClient
	notifier        usecase.LogNotifier
	logger          *slog.Logger
}

// NewIntegrationService creates the provider-link service.
func NewIntegrationService(
	integrationRepo repository.IntegrationRepository,
	profileRepo repository.ProfileRepository,
	challengeRepo repository.ChallengeRepository,
	dailyLogRepo repository.DailyLogRepository,
	tokenManager service.TokenManager,
	providerClient service.ProviderClient,
	notifier usecase.LogNotifier,
	logger *slog.Logger,
) usecase.IntegrationUsecase {
	return &integrationService{
		integrationRepo: integrationRepo,
		profileRepo:     profileRepo,
		challengeRepo:   challengeRepo,
		dailyLogRepo:    dailyLogRepo,
		tokenManager:    tokenManager,
		providerClient:  providerClient,
		notifier:        notifier,
		logger:          logger,
	}
}

// Link exchanges the OAuth code and stores the integration.
func (s *integrationService) Link(ctx context.Context, userID uuid.UUID, code string) (*entity.Integration, error) {
	integration, err := s.tokenManager.ExchangeCode(ctx, userID, code)
	if err != nil {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage(err.Error())
	}

	s.logger.Info("Provider linked",
		slog.String("user_id", userID.String()),
		slog.String("athlete_id", integration.ExternalAthleteID),
	)

	return integration, nil
}

// Unlink removes the provider link.
func (s *integrationService) Unlink(ctx context.Context, userID uuid.UUID) error {
	if err := s.integrationRepo.Delete(ctx, userID, constants.ProviderStrava); err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return domainerrors.ErrIntegrationNotFound
		}

		return err
	}

	return nil
}

// Status reports the non-secret state of the user's provider link.
func (s *integrationService) Status(ctx context.Context, userID uuid.UUID) (*usecase.IntegrationStatus, error) {
	integration, err := s.integrationRepo.FindByUser(ctx, userID, constants.ProviderStrava)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return &usecase.IntegrationStatus{
				Connected: false,
				Provider:  constants.ProviderStrava,
			}, nil
		}

		return nil, err
	}

	return &usecase.IntegrationStatus{
		Connected: true,
		Provider:  integration.Provider,
		AthleteID: integration.ExternalAthleteID,
		Scope:     integration.Scope,
		ExpiresAt: integration.ExpiresAt,
	}, nil
}

// ManualSync pulls recent activities and reconciles one log per day.
// Provider-side manual entries are skipped: a manual sync exists to
// backfill tracked workouts, not self-typed ones.
func (s *integrationService) ManualSync(ctx context.Context, userID uuid.UUID) (*usecase.SyncResult, error) {
	integration, err := s.integrationRepo.FindByUser(ctx, userID, constants.ProviderStrava)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return nil, domainerrors.ErrIntegrationNotFound
		}

		return nil, err
	}

	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}
	if profile.CurrentChallengeID == nil {
		return nil, domainerrors.ErrChallengeNotFound.WrapMessage("user has no active challenge")
	}

	challenge, err := s.challengeRepo.FindByID(ctx, *profile.CurrentChallengeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load challenge")
	}

	accessToken, err := s.tokenManager.GetValidAccessToken(ctx, integration)
	if err != nil {
		return nil, err
	}

	activities, err := s.providerClient.FetchRecentActivities(ctx, accessToken, syncPageSize)
	if err != nil {
		return nil, domainerrors.ErrProviderUnavailable.WrapMessage(err.Error())
	}

	result := &usecase.SyncResult{Total: len(activities)}
	for _, detail := range activities {
		if detail.IsManualEntry {
			continue
		}

		decision := rules.Evaluate(detail, challenge.Rules)
		stats := rules.Derive(detail)

		log := &entity.DailyLog{
			UserID:          userID,
			Date:            detail.Date(),
			AvgHeartRate:    stats.AvgHeartRate,
			DurationMinutes: stats.DurationMinutes,
			DistanceKm:      stats.DistanceKm,
			IsVerified:      &decision.Verified,
			Notes:           decision.Notes,
		}

		applied, err := s.dailyLogRepo.Upsert(ctx, log, entity.SourceAutomated)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upsert daily log")
		}
		if applied {
			result.Synced++
			s.notifier.NotifyLogReconciled(context.WithoutCancel(ctx), log, entity.SourceAutomated)
		}
	}

	return result, nil
}
