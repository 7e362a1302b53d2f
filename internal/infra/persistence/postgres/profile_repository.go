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
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a single profile by its unique ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// ListByChallenge returns every participant of a challenge.
func (repo *profileRepository) ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel

	err := repo.db.WithContext(ctx).
		Where("current_challenge_id = ?", challengeID).
		Order("username ASC").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by challenge")
	}

	profiles := make([]*entity.Profile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// SetCurrentChallenge links a user to a challenge, or unlinks with nil.
func (repo *profileRepository) SetCurrentChallenge(ctx context.Context, userID uuid.UUID, challengeID *uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", userID).
		Update("current_challenge_id", challengeID)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrChallengeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set current challenge")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// SetReferencePhoto stores the biometric baseline and its lock state.
func (repo *profileRepository) SetReferencePhoto(ctx context.Context, userID uuid.UUID, url string, locked bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"reference_photo_url":  url,
			"reference_photo_lock": locked,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set reference photo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:                 data.ID,
		Username:           data.Username,
		AvatarURL:          data.AvatarURL,
		ReferencePhotoURL:  data.ReferencePhotoURL,
		ReferencePhotoLock: data.ReferencePhotoLock,
		IsAdmin:            data.IsAdmin,
		CurrentChallengeID: data.CurrentChallengeID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
