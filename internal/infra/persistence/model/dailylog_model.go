package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyLogModel mirrors the 'daily_logs' table. The composite unique
// index on (user_id, date) is the reconciliation key: every write path
// funnels through an upsert against it.
type DailyLogModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_daily_logs_user_date"`
	Date            string    `gorm:"type:date;not null;uniqueIndex:uniq_daily_logs_user_date"`
	AvgHeartRate    int       `gorm:"not null;default:0"`
	DurationMinutes int       `gorm:"not null;default:0"`
	DistanceKm      float64   `gorm:"not null;default:0"`
	PhotoProofURL   *string   `gorm:"type:text"`
	HandSignalURL   *string   `gorm:"type:text"`
	IsVerified      *bool
	Notes           string `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyLogModel) TableName() string {
	return "daily_logs"
}
