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

// integrationRepository implements the repository.IntegrationRepository interface.
type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository is the constructor for integrationRepository.
func NewIntegrationRepository(db *gorm.DB) repository.IntegrationRepository {
	return &integrationRepository{
		db: db,
	}
}

// FindByUser retrieves the credential row for (userID, provider).
func (repo *integrationRepository) FindByUser(ctx context.Context, userID uuid.UUID, provider string) (*entity.Integration, error) {
	var integrationM model.IntegrationModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		First(&integrationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntegrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find integration by user")
	}

	return toIntegrationDomain(&integrationM), nil
}

// FindByExternalAthleteID resolves a webhook owner id to the local
// integration.
func (repo *integrationRepository) FindByExternalAthleteID(ctx context.Context, provider, athleteID string) (*entity.Integration, error) {
	var integrationM model.IntegrationModel

	err := repo.db.WithContext(ctx).
		Where("provider = ? AND external_athlete_id = ?", provider, athleteID).
		First(&integrationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntegrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find integration by athlete id")
	}

	return toIntegrationDomain(&integrationM), nil
}

// Upsert creates or fully replaces the credential row for
// (userID, provider).
func (repo *integrationRepository) Upsert(ctx context.Context, integration *entity.Integration) error {
	integrationM := fromIntegrationDomain(integration)

	onConflict := clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token", "refresh_token", "expires_at", "external_athlete_id", "scope",
		}),
	}

	if err := repo.db.WithContext(ctx).Clauses(onConflict).Create(integrationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("unknown user for integration")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert integration")
	}

	integration.CreatedAt = integrationM.CreatedAt
	integration.UpdatedAt = integrationM.UpdatedAt

	return nil
}

// UpdateTokens persists a refreshed token pair. Callers rely on this
// completing before the new access token is handed out.
func (repo *integrationRepository) UpdateTokens(ctx context.Context, userID uuid.UUID, provider, accessToken, refreshToken string, expiresAt int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IntegrationModel{}).
		Where("user_id = ? AND provider = ?", userID, provider).
		Updates(map[string]any{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"expires_at":    expiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update integration tokens")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIntegrationNotFound
	}

	return nil
}

// Delete removes the provider link.
func (repo *integrationRepository) Delete(ctx context.Context, userID uuid.UUID, provider string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		Delete(&model.IntegrationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete integration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIntegrationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toIntegrationDomain converts a GORM IntegrationModel to a domain Integration entity.
func toIntegrationDomain(data *model.IntegrationModel) *entity.Integration {
	if data == nil {
		return nil
	}

	return &entity.Integration{
		UserID:            data.UserID,
		Provider:          data.Provider,
		AccessToken:       data.AccessToken,
		RefreshToken:      data.RefreshToken,
		ExpiresAt:         data.ExpiresAt,
		ExternalAthleteID: data.ExternalAthleteID,
		Scope:             data.Scope,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromIntegrationDomain converts a domain Integration entity to a GORM IntegrationModel.
func fromIntegrationDomain(data *entity.Integration) *model.IntegrationModel {
	if data == nil {
		return nil
	}

	return &model.IntegrationModel{
		UserID:            data.UserID,
		Provider:          data.Provider,
		AccessToken:       data.AccessToken,
		RefreshToken:      data.RefreshToken,
		ExpiresAt:         data.ExpiresAt,
		ExternalAthleteID: data.ExternalAthleteID,
		Scope:             data.Scope,
	}
}
