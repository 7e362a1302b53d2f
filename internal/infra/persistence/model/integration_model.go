package model

import (
	"time"

	"github.com/google/uuid"
)

// IntegrationModel mirrors the 'integrations' table. One row per
// (user, provider), enforced by a composite unique index.
type IntegrationModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_integrations_user_provider"`
	Provider          string    `gorm:"type:varchar(50);not null;uniqueIndex:uniq_integrations_user_provider"`
	AccessToken       string    `gorm:"type:text;not null"`
	RefreshToken      string    `gorm:"type:text;not null"`
	ExpiresAt         int64     `gorm:"not null"`
	ExternalAthleteID string    `gorm:"type:varchar(64);index:idx_integrations_athlete"`
	Scope             string    `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (IntegrationModel) TableName() string {
	return "integrations"
}
