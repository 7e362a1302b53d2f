package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LogID     uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_log"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// ReportModel mirrors the 'reports' table.
type ReportModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LogID      uuid.UUID `gorm:"type:uuid;not null;index:idx_reports_log"`
	ReporterID uuid.UUID `gorm:"type:uuid;not null"`
	Reason     string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(20);not null;index:idx_reports_status"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}

// PushDeviceModel mirrors the 'push_devices' table. The unique token
// constraint keeps device registration idempotent.
type PushDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_push_devices_user"`
	FCMToken  string    `gorm:"type:text;not null;unique"`
	UserAgent string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushDeviceModel) TableName() string {
	return "push_devices"
}
