package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RuleSetColumn stores a challenge rule set as a jsonb column.
type RuleSetColumn entity.RuleSet

// Value implements driver.Valuer.
func (r RuleSetColumn) Value() (driver.Value, error) {
	data, err := json.Marshal(entity.RuleSet(r))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal rule set")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (r *RuleSetColumn) Scan(value any) error {
	if value == nil {
		*r = RuleSetColumn{}

		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported rule set column type %T", value)
	}

	var rules entity.RuleSet
	if err := json.Unmarshal(data, &rules); err != nil {
		return errors.Wrap(err, "failed to unmarshal rule set")
	}
	*r = RuleSetColumn(rules)

	return nil
}

// ChallengeModel mirrors the 'challenges' table. Join codes are stored
// uppercase and matched case-insensitively.
type ChallengeModel struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                string        `gorm:"type:varchar(100);not null"`
	JoinCode            string        `gorm:"type:varchar(32);not null;unique"`
	StartDate           time.Time     `gorm:"type:date;not null"`
	PenaltyAmount       float64       `gorm:"not null;default:0"`
	RequiredDaysPerWeek int           `gorm:"not null;default:0"`
	Rules               RuleSetColumn `gorm:"type:jsonb;not null"`
	CreatedBy           uuid.UUID     `gorm:"type:uuid;not null"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChallengeModel) TableName() string {
	return "challenges"
}
