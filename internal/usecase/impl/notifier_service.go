// Package impl provides the concrete application services behind the
// usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"gravity/internal/domain/entity"
	"gravity/internal/domain/repository"
	"gravity/internal/domain/service"
	"gravity/internal/usecase"

	"github.com/google/uuid"
)

// pushTitle is the notification title teammates see.
const pushTitle = "Gravity Update"

type logNotifier struct {
	profileRepo     repository.ProfileRepository
	socialRepo      repository.SocialRepository
	notificationSvc service.NotificationService
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// NewLogNotifier creates the fan-out service for reconciled logs. The
// notification service may be nil when Firebase is not configured.
func NewLogNotifier(
	profileRepo repository.ProfileRepository,
	socialRepo repository.SocialRepository,
	notificationSvc service.NotificationService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.LogNotifier {
	return &logNotifier{
		profileRepo:     profileRepo,
		socialRepo:      socialRepo,
		notificationSvc: notificationSvc,
		publisher:       publisher,
		logger:          logger,
	}
}

// NotifyLogReconciled publishes the log event and, for verified logs,
// pushes a notification to the actor's challenge teammates. Every
// failure is logged and swallowed; callers never see an error.
func (s *logNotifier) NotifyLogReconciled(ctx context.Context, log *entity.DailyLog, source entity.LogSource) {
	event := &service.LogEvent{
		LogID:    log.ID.String(),
		UserID:   log.UserID.String(),
		Date:     log.Date,
		Verified: log.Verified(),
		Source:   source.String(),
	}
	if err := s.publisher.PublishLogEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish log event",
			slog.String("log_id", event.LogID),
			slog.Any("error", err),
		)
	}

	if !log.Verified() {
		return
	}

	if err := s.pushToTeammates(ctx, log); err != nil {
		s.logger.Warn("Failed to push teammate notification",
			slog.String("log_id", event.LogID),
			slog.Any("error", err),
		)
	}
}

func (s *logNotifier) pushToTeammates(ctx context.Context, log *entity.DailyLog) error {
	if s.notificationSvc == nil {
		return nil
	}

	actor, err := s.profileRepo.FindByID(ctx, log.UserID)
	if err != nil {
		return err
	}
	if actor.CurrentChallengeID == nil {
		return nil
	}

	teammates, err := s.profileRepo.ListByChallenge(ctx, *actor.CurrentChallengeID)
	if err != nil {
		return err
	}

	recipientIDs := make([]uuid.UUID, 0, len(teammates))
	for _, teammate := range teammates {
		if teammate.ID != actor.ID {
			recipientIDs = append(recipientIDs, teammate.ID)
		}
	}

	devices, err := s.socialRepo.ListDevicesForUsers(ctx, recipientIDs)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	body := fmt.Sprintf("%s logged a verified workout for %s", actor.Username, log.Date)
	data := map[string]string{
		"log_id": log.ID.String(),
		"date":   log.Date,
	}

	success, failure, invalid, err := s.notificationSvc.SendBatchNotification(ctx, tokens, pushTitle, body, data)
	if err != nil {
		return err
	}

	s.logger.Info("Teammate notification sent",
		slog.String("log_id", log.ID.String()),
		slog.Int("success", success),
		slog.Int("failure", failure),
		slog.Int("invalid_tokens", len(invalid)),
	)

	return nil
}
