package postgres

import (
	"context"

	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	"gravity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// socialRepository implements the repository.SocialRepository interface.
type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository is the constructor for socialRepository.
func NewSocialRepository(db *gorm.DB) repository.SocialRepository {
	return &socialRepository{
		db: db,
	}
}

// AddComment persists a new comment on a daily log.
func (repo *socialRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		LogID:   comment.LogID,
		UserID:  comment.UserID,
		Content: comment.Content,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLogNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListCommentsByLog returns the comments on one daily log, oldest first.
func (repo *socialRepository) ListCommentsByLog(ctx context.Context, logID uuid.UUID) ([]*entity.Comment, error) {
	var commentMs []*model.CommentModel

	err := repo.db.WithContext(ctx).
		Where("log_id = ?", logID).
		Order("created_at ASC").
		Find(&commentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, commentM := range commentMs {
		comments = append(comments, &entity.Comment{
			ID:        commentM.ID,
			LogID:     commentM.LogID,
			UserID:    commentM.UserID,
			Content:   commentM.Content,
			CreatedAt: commentM.CreatedAt,
		})
	}

	return comments, nil
}

// AddReport persists a new moderation report.
func (repo *socialRepository) AddReport(ctx context.Context, report *entity.Report) error {
	reportM := &model.ReportModel{
		LogID:      report.LogID,
		ReporterID: report.ReporterID,
		Reason:     report.Reason,
		Status:     report.Status,
	}

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLogNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt

	return nil
}

// ListReportsByStatus returns reports in the given moderation state.
func (repo *socialRepository) ListReportsByStatus(ctx context.Context, status string) ([]*entity.Report, error) {
	var reportMs []*model.ReportModel

	err := repo.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&reportMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	reports := make([]*entity.Report, 0, len(reportMs))
	for _, reportM := range reportMs {
		reports = append(reports, &entity.Report{
			ID:         reportM.ID,
			LogID:      reportM.LogID,
			ReporterID: reportM.ReporterID,
			Reason:     reportM.Reason,
			Status:     reportM.Status,
			CreatedAt:  reportM.CreatedAt,
		})
	}

	return reports, nil
}

// RegisterDevice upserts a push target keyed by its FCM token, so
// re-registration from the same device moves the token to the latest
// user.
func (repo *socialRepository) RegisterDevice(ctx context.Context, device *entity.PushDevice) error {
	deviceM := &model.PushDeviceModel{
		UserID:    device.UserID,
		FCMToken:  device.FCMToken,
		UserAgent: device.UserAgent,
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "fcm_token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "user_agent"}),
	}

	if err := repo.db.WithContext(ctx).Clauses(onConflict).Create(deviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("unknown user for push device")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to register device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt

	return nil
}

// ListDevicesForUsers returns the push targets for a set of users.
func (repo *socialRepository) ListDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushDevice, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var deviceMs []*model.PushDeviceModel

	err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&deviceMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list push devices")
	}

	devices := make([]*entity.PushDevice, 0, len(deviceMs))
	for _, deviceM := range deviceMs {
		devices = append(devices, &entity.PushDevice{
			ID:        deviceM.ID,
			UserID:    deviceM.UserID,
			FCMToken:  deviceM.FCMToken,
			UserAgent: deviceM.UserAgent,
			CreatedAt: deviceM.CreatedAt,
		})
	}

	return devices, nil
}

// DeleteDevicesByToken drops push targets the provider reported as
// invalid or unregistered.
func (repo *socialRepository) DeleteDevicesByToken(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("fcm_token IN ?", tokens).
		Delete(&model.PushDeviceModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete push devices")
	}

	return nil
}
