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

// dailyLogRepository implements the repository.DailyLogRepository interface.
type dailyLogRepository struct {
	db *gorm.DB
}

// NewDailyLogRepository is the constructor for dailyLogRepository.
func NewDailyLogRepository(db *gorm.DB) repository.DailyLogRepository {
	return &dailyLogRepository{
		db: db,
	}
}

// Upsert writes the reconciled row for (log.UserID, log.Date) in one
// conditional statement. A verified row is immutable to non-admin
// writers: the ON CONFLICT update carries a WHERE clause that skips the
// update when is_verified is already true, and the rows-affected count
// tells the caller whether the write landed. Admin writers omit the
// guard entirely.
func (repo *dailyLogRepository) Upsert(ctx context.Context, log *entity.DailyLog, source entity.LogSource) (bool, error) {
	logM := fromDailyLogDomain(log)

	assignments := clause.Assignments(map[string]any{
		"avg_heart_rate":   logM.AvgHeartRate,
		"duration_minutes": logM.DurationMinutes,
		"distance_km":      logM.DistanceKm,
		"photo_proof_url":  logM.PhotoProofURL,
		"hand_signal_url":  logM.HandSignalURL,
		"is_verified":      logM.IsVerified,
		"notes":            logM.Notes,
	})

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: assignments,
	}
	if source != entity.SourceAdmin {
		onConflict.Where = clause.Where{Exprs: []clause.Expression{
			gorm.Expr("daily_logs.is_verified IS DISTINCT FROM TRUE"),
		}}
	}

	result := repo.db.WithContext(ctx).Clauses(onConflict).Create(logM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrUserNotFound.WrapMessage("unknown user for daily log")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert daily log")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return true, nil
}

// FindByUserAndDate retrieves the single row for the reconciliation key.
func (repo *dailyLogRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*entity.DailyLog, error) {
	var logM model.DailyLogModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&logM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find daily log by user and date")
	}

	return toDailyLogDomain(&logM), nil
}

// FindByID retrieves a daily log by its unique ID.
func (repo *dailyLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyLog, error) {
	var logM model.DailyLogModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&logM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find daily log by id")
	}

	return toDailyLogDomain(&logM), nil
}

// ListByUserSince returns a user's logs on or after the given date,
// newest first.
func (repo *dailyLogRepository) ListByUserSince(ctx context.Context, userID uuid.UUID, since string) ([]*entity.DailyLog, error) {
	var logMs []*model.DailyLogModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&logMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily logs by user")
	}

	return toDailyLogDomainList(logMs), nil
}

// ListSince returns all logs on or after the given date.
func (repo *dailyLogRepository) ListSince(ctx context.Context, since string) ([]*entity.DailyLog, error) {
	var logMs []*model.DailyLogModel

	err := repo.db.WithContext(ctx).
		Where("date >= ?", since).
		Order("date DESC").
		Find(&logMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily logs since date")
	}

	return toDailyLogDomainList(logMs), nil
}

// ListRecent returns the newest logs for the social feed.
func (repo *dailyLogRepository) ListRecent(ctx context.Context, limit int) ([]*entity.DailyLog, error) {
	var logMs []*model.DailyLogModel

	err := repo.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&logMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent daily logs")
	}

	return toDailyLogDomainList(logMs), nil
}

// OverrideVerification force-sets the verified flag, ignoring the
// verified-wins guard. Callers must gate this behind admin checks.
func (repo *dailyLogRepository) OverrideVerification(ctx context.Context, id uuid.UUID, verified bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DailyLogModel{}).
		Where("id = ?", id).
		Update("is_verified", verified)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to override verification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLogNotFound
	}

	return nil
}

// Delete removes a daily log row.
func (repo *dailyLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DailyLogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete daily log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLogNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDailyLogDomain converts a GORM DailyLogModel to a domain DailyLog entity.
func toDailyLogDomain(data *model.DailyLogModel) *entity.DailyLog {
	if data == nil {
		return nil
	}

	return &entity.DailyLog{
		ID:              data.ID,
		UserID:          data.UserID,
		Date:            data.Date,
		AvgHeartRate:    data.AvgHeartRate,
		DurationMinutes: data.DurationMinutes,
		DistanceKm:      data.DistanceKm,
		PhotoProofURL:   data.PhotoProofURL,
		HandSignalURL:   data.HandSignalURL,
		IsVerified:      data.IsVerified,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
	}
}

func toDailyLogDomainList(data []*model.DailyLogModel) []*entity.DailyLog {
	logs := make([]*entity.DailyLog, 0, len(data))
	for _, logM := range data {
		logs = append(logs, toDailyLogDomain(logM))
	}

	return logs
}

// fromDailyLogDomain converts a domain DailyLog entity to a GORM DailyLogModel.
func fromDailyLogDomain(data *entity.DailyLog) *model.DailyLogModel {
	if data == nil {
		return nil
	}

	return &model.DailyLogModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Date:            data.Date,
		AvgHeartRate:    data.AvgHeartRate,
		DurationMinutes: data.DurationMinutes,
		DistanceKm:      data.DistanceKm,
		PhotoProofURL:   data.PhotoProofURL,
		HandSignalURL:   data.HandSignalURL,
		IsVerified:      data.IsVerified,
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
	}
}
