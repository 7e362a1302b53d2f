package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strconv"

	"gravity/config"
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

type webhookService struct {
	verifyToken     string
	integrationRepo repository.IntegrationRepository
	profileRepo     repository.ProfileRepository
	challengeRepo   repository.ChallengeRepository
	dailyLogRepo    repository.DailyLogRepository
	tokenManager    service.TokenManager
	providerClient  service.ProviderClient
	notifier        usecase.LogNotifier
	logger          *slog.Logger
}

// NewWebhookService creates the webhook ingestion service.
func NewWebhookService(
	cfg *config.Config,
	integrationRepo repository.IntegrationRepository,
	profileRepo repository.ProfileRepository,
	challengeRepo repository.ChallengeRepository,
	dailyLogRepo repository.DailyLogRepository,
	tokenManager service.TokenManager,
	providerClient service.ProviderClient,
	notifier usecase.LogNotifier,
	logger *slog.Logger,
) usecase.WebhookUsecase {
	verifyToken := ""
	if cfg.Provider != nil {
		verifyToken = cfg.Provider.VerifyToken
	}

	return &webhookService{
		verifyToken:     verifyToken,
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

// VerifySubscription answers the provider's subscription handshake.
func (s *webhookService) VerifySubscription(mode, verifyToken, challenge string) (string, error) {
	if mode == "" || verifyToken == "" || challenge == "" {
		return "", domainerrors.ErrWebhookMissingParams
	}

	if mode != "subscribe" ||
		subtle.ConstantTimeCompare([]byte(verifyToken), []byte(s.verifyToken)) != 1 {
		return "", domainerrors.ErrWebhookTokenMismatch
	}

	return challenge, nil
}

// ProcessEvent runs the ingestion path for one webhook delivery. Every
// outcome short of a processed activity is a logged no-op; the handler
// acknowledges the delivery regardless of the returned error.
func (s *webhookService) ProcessEvent(ctx context.Context, event *entity.ActivityEvent) error {
	if !event.IsActivityChange() {
		s.logger.Debug("Ignoring webhook event",
			slog.String("object_type", event.ObjectType),
			slog.String("aspect_type", event.AspectType),
		)

		return nil
	}

	athleteID := strconv.FormatInt(event.OwnerID, 10)
	integration, err := s.integrationRepo.FindByExternalAthleteID(ctx, constants.ProviderStrava, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			// Deliveries for athletes that never linked are expected
			// after unlink; acknowledge and move on.
			s.logger.Info("Webhook for unlinked athlete", slog.String("athlete_id", athleteID))

			return nil
		}

		return errors.Wrap(err, "failed to resolve webhook owner")
	}

	accessToken, err := s.tokenManager.GetValidAccessToken(ctx, integration)
	if err != nil {
		return errors.Wrap(err, "failed to obtain access token")
	}

	detail, err := s.providerClient.FetchActivity(ctx, accessToken, event.ObjectID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch activity detail")
	}

	log, err := s.reconcile(ctx, integration.UserID, detail)
	if err != nil {
		return err
	}
	if log != nil {
		s.notifier.NotifyLogReconciled(context.WithoutCancel(ctx), log, entity.SourceAutomated)
	}

	return nil
}

// reconcile evaluates one activity against the owner's challenge rules
// and upserts the daily log at automated trust. It returns the written
// log, or nil when the write was skipped.
func (s *webhookService) reconcile(ctx context.Context, userID uuid.UUID, detail *entity.ActivityDetail) (*entity.DailyLog, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}
	if profile.CurrentChallengeID == nil {
		s.logger.Info("Activity owner has no active challenge", slog.String("user_id", userID.String()))

		return nil, nil
	}

	challenge, err := s.challengeRepo.FindByID(ctx, *profile.CurrentChallengeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load challenge")
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
	if !applied {
		s.logger.Info("Daily log already verified, skipping automated write",
			slog.String("user_id", userID.String()),
			slog.String("date", log.Date),
		)

		return nil, nil
	}

	return log, nil
}
