package impl

import (
	"context"
	"time"

	"gravity/internal/domain/constants"
	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	"gravity/internal/errors"
	"gravity/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100

	// statsWindowDays bounds how far back the stats query reaches.
	statsWindowDays = 366
)

type logService struct {
	dailyLogRepo repository.DailyLogRepository
	profileRepo  repository.ProfileRepository
	socialRepo   repository.SocialRepository
	now          func() time.Time
}

// NewLogService creates the social and moderation service around daily
// logs.
func NewLogService(
	dailyLogRepo repository.DailyLogRepository,
	profileRepo repository.ProfileRepository,
	socialRepo repository.SocialRepository,
) usecase.LogUsecase {
	return &logService{
		dailyLogRepo: dailyLogRepo,
		profileRepo:  profileRepo,
		socialRepo:   socialRepo,
		now:          time.Now,
	}
}

// Feed returns the newest logs joined with authors and comments.
func (s *logService) Feed(ctx context.Context, limit int) ([]*usecase.FeedItem, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	logs, err := s.dailyLogRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	profiles := make(map[uuid.UUID]*entity.Profile)
	items := make([]*usecase.FeedItem, 0, len(logs))
	for _, log := range logs {
		profile, ok := profiles[log.UserID]
		if !ok {
			profile, err = s.profileRepo.FindByID(ctx, log.UserID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to load log author")
			}
			profiles[log.UserID] = profile
		}

		comments, err := s.socialRepo.ListCommentsByLog(ctx, log.ID)
		if err != nil {
			return nil, err
		}

		items = append(items, &usecase.FeedItem{
			Log:      log,
			Username: profile.Username,
			Avatar:   profile.AvatarURL,
			Comments: comments,
		})
	}

	return items, nil
}

// AddComment attaches a comment to an existing log.
func (s *logService) AddComment(ctx context.Context, userID, logID uuid.UUID, content string) (*entity.Comment, error) {
	if _, err := s.findLog(ctx, logID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		LogID:   logID,
		UserID:  userID,
		Content: content,
	}
	if err := s.socialRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ReportLog files a moderation report against an existing log.
func (s *logService) ReportLog(ctx context.Context, reporterID, logID uuid.UUID, reason string) (*entity.Report, error) {
	if _, err := s.findLog(ctx, logID); err != nil {
		return nil, err
	}

	report := &entity.Report{
		LogID:      logID,
		ReporterID: reporterID,
		Reason:     reason,
		Status:     constants.ReportStatusPending,
	}
	if err := s.socialRepo.AddReport(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// RegisterDevice records a push target for the user.
func (s *logService) RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken, userAgent string) error {
	device := &entity.PushDevice{
		UserID:    userID,
		FCMToken:  fcmToken,
		UserAgent: userAgent,
	}

	return s.socialRepo.RegisterDevice(ctx, device)
}

// Stats computes total logged days and the current streak. The streak
// counts consecutive logged days ending today, or ending yesterday when
// today has no log yet.
func (s *logService) Stats(ctx context.Context, userID uuid.UUID) (*usecase.UserStats, error) {
	now := s.now().UTC()
	since := now.AddDate(0, 0, -statsWindowDays).Format("2006-01-02")

	logs, err := s.dailyLogRepo.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	logged := make(map[string]struct{}, len(logs))
	for _, log := range logs {
		logged[log.Date] = struct{}{}
	}

	day := now
	if _, ok := logged[day.Format("2006-01-02")]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := logged[day.Format("2006-01-02")]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return &usecase.UserStats{
		TotalDays:     len(logged),
		CurrentStreak: streak,
	}, nil
}

// ListPendingReports returns unresolved reports. Admin only.
func (s *logService) ListPendingReports(ctx context.Context, adminID uuid.UUID) ([]*entity.Report, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	return s.socialRepo.ListReportsByStatus(ctx, constants.ReportStatusPending)
}

// DeleteLog removes a log row. Admin only.
func (s *logService) DeleteLog(ctx context.Context, adminID, logID uuid.UUID) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	if err := s.dailyLogRepo.Delete(ctx, logID); err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			return domainerrors.ErrLogNotFound
		}

		return err
	}

	return nil
}

// OverrideVerification force-sets the verified flag. Admin only; this
// is the single path around the verified-wins guard.
func (s *logService) OverrideVerification(ctx context.Context, adminID, logID uuid.UUID, verified bool) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	if err := s.dailyLogRepo.OverrideVerification(ctx, logID, verified); err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			return domainerrors.ErrLogNotFound
		}

		return err
	}

	return nil
}

func (s *logService) findLog(ctx context.Context, logID uuid.UUID) (*entity.DailyLog, error) {
	log, err := s.dailyLogRepo.FindByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			return nil, domainerrors.ErrLogNotFound
		}

		return nil, err
	}

	return log, nil
}

func (s *logService) requireAdmin(ctx context.Context, adminID uuid.UUID) error {
	profile, err := s.profileRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrPermissionDenied
		}

		return err
	}
	if !profile.IsAdmin {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}
