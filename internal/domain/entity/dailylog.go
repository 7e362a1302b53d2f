package entity

import (
	"time"

	"github.com/google/uuid"
)

// LogSource ranks the trust level of a daily-log writer. Reconciliation
// uses it to arbitrate between automated imports and human submissions:
// once a row is verified, a lower-trust writer can no longer alter it.
type LogSource int

const (
	// SourceAutomated is a provider webhook or manual sync import.
	SourceAutomated LogSource = iota
	// SourceHuman is participant-submitted evidence that passed verification.
	SourceHuman
	// SourceAdmin is the explicit privileged override; it bypasses verified-wins.
	SourceAdmin
)

// String names the source for event payloads and logs.
func (s LogSource) String() string {
	switch s {
	case SourceHuman:
		return "human"
	case SourceAdmin:
		return "admin"
	default:
		return "automated"
	}
}

// DailyLog is the reconciled record of one workout day. Exactly one row
// exists per (user, date).
type DailyLog struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Date            string // Calendar date, YYYY-MM-DD.
	AvgHeartRate    int
	DurationMinutes int
	DistanceKm      float64
	PhotoProofURL   *string // nil means photo evidence is still pending.
	HandSignalURL   *string
	IsVerified      *bool // Tri-state: true / false / pending (nil).
	Notes           string
	CreatedAt       time.Time
}

// Verified reports whether this log has been positively verified.
func (l *DailyLog) Verified() bool {
	return l.IsVerified != nil && *l.IsVerified
}
