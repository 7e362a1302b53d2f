package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimestampPolicy selects how a capture-date mismatch is handled.
type TimestampPolicy int

const (
	// TimestampBlocking rejects any mismatch (retroactive proof upload).
	TimestampBlocking TimestampPolicy = iota
	// TimestampSoftConfirm allows the user to explicitly override a
	// mismatch warning (immediate liveness capture).
	TimestampSoftConfirm
)

// EvidenceSubmission is the transient input of the evidence pipeline.
type EvidenceSubmission struct {
	Date                 string // Claimed activity date, YYYY-MM-DD.
	StatsPhoto           []byte // Screenshot of the workout stats.
	StatsPhotoModTime    time.Time
	LivenessPhoto        []byte // Photo of the participant, matched against the reference.
	LivenessPhotoModTime time.Time
	SelfReportedHR       *int
	SelfReportedMinutes  *int
	Policy               TimestampPolicy
	OverrideMismatch     bool // Only honored under TimestampSoftConfirm.
}

// AutofillHints carries best-effort OCR extractions surfaced as
// pre-fill suggestions. A nil field means no confident match.
type AutofillHints struct {
	HeartRate *int `json:"heart_rate,omitempty"`
	Minutes   *int `json:"minutes,omitempty"`
}

// Comment is a remark left on a daily log in the social feed.
type Comment struct {
	ID        uuid.UUID
	LogID     uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
}

// Report flags a daily log for moderator review.
type Report struct {
	ID         uuid.UUID
	LogID      uuid.UUID
	ReporterID uuid.UUID
	Reason     string
	Status     string
	CreatedAt  time.Time
}

// PushDevice is a registered push-notification target for a user.
type PushDevice struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FCMToken  string
	UserAgent string
	CreatedAt time.Time
}
