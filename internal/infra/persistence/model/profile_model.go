// Package model holds the GORM persistence models. They are exported so
// the GORM Gen tool can reference them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The ID matches the
// external auth subject, so rows are created with explicit IDs rather
// than database defaults.
type ProfileModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key"`
	Username           string     `gorm:"type:varchar(100);not null"`
	AvatarURL          string     `gorm:"type:text"`
	ReferencePhotoURL  string     `gorm:"type:text"`
	ReferencePhotoLock bool       `gorm:"not null;default:false"`
	IsAdmin            bool       `gorm:"not null;default:false"`
	CurrentChallengeID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Integrations []IntegrationModel `gorm:"foreignKey:UserID"`
	PushDevices  []PushDeviceModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
