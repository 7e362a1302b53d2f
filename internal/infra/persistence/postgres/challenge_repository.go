package postgres

import (
	"context"
	"strings"

	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	"gravity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// challengeRepository implements the repository.ChallengeRepository interface.
type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository is the constructor for challengeRepository.
func NewChallengeRepository(db *gorm.DB) repository.ChallengeRepository {
	return &challengeRepository{
		db: db,
	}
}

// Create persists a new challenge.
func (repo *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	challengeM := fromChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidJoinCode.WrapMessage("join code already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required challenge fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create challenge")
	}

	challenge.ID = challengeM.ID
	challenge.CreatedAt = challengeM.CreatedAt

	return nil
}

// FindByID retrieves a challenge by its unique ID.
func (repo *challengeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by id")
	}

	return toChallengeDomain(&challengeM), nil
}

// FindByJoinCode matches the join code case-insensitively, ignoring
// surrounding whitespace.
func (repo *challengeRepository) FindByJoinCode(ctx context.Context, code string) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel

	normalized := strings.ToUpper(strings.TrimSpace(code))

	err := repo.db.WithContext(ctx).
		Where("UPPER(join_code) = ?", normalized).
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by join code")
	}

	return toChallengeDomain(&challengeM), nil
}

// ListByCreator returns the challenges created by one user.
func (repo *challengeRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Challenge, error) {
	var challengeMs []*model.ChallengeModel

	err := repo.db.WithContext(ctx).
		Where("created_by = ?", creatorID).
		Order("created_at DESC").
		Find(&challengeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenges by creator")
	}

	challenges := make([]*entity.Challenge, 0, len(challengeMs))
	for _, challengeM := range challengeMs {
		challenges = append(challenges, toChallengeDomain(challengeM))
	}

	return challenges, nil
}

// Delete removes a challenge.
func (repo *challengeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ChallengeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete challenge")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChallengeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toChallengeDomain converts a GORM ChallengeModel to a domain Challenge entity.
func toChallengeDomain(data *model.ChallengeModel) *entity.Challenge {
	if data == nil {
		return nil
	}

	return &entity.Challenge{
		ID:                  data.ID,
		Name:                data.Name,
		JoinCode:            data.JoinCode,
		StartDate:           data.StartDate,
		PenaltyAmount:       data.PenaltyAmount,
		RequiredDaysPerWeek: data.RequiredDaysPerWeek,
		Rules:               entity.RuleSet(data.Rules),
		CreatedBy:           data.CreatedBy,
		CreatedAt:           data.CreatedAt,
	}
}

// fromChallengeDomain converts a domain Challenge entity to a GORM ChallengeModel.
func fromChallengeDomain(data *entity.Challenge) *model.ChallengeModel {
	if data == nil {
		return nil
	}

	return &model.ChallengeModel{
		ID:                  data.ID,
		Name:                data.Name,
		JoinCode:            strings.ToUpper(strings.TrimSpace(data.JoinCode)),
		StartDate:           data.StartDate,
		PenaltyAmount:       data.PenaltyAmount,
		RequiredDaysPerWeek: data.RequiredDaysPerWeek,
		Rules:               model.RuleSetColumn(data.Rules),
		CreatedBy:           data.CreatedBy,
	}
}
