package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRule holds the thresholds applied to activities whose category
// has no dedicated exception. Optionality is explicit: a nil field means
// the corresponding check is skipped.
type DefaultRule struct {
	MinDurationMinutes *int `json:"min_duration_minutes,omitempty"`
	MinHeartRate       *int `json:"min_hr,omitempty"`
}

// ExceptionRule overrides the default thresholds for one sport category.
type ExceptionRule struct {
	MinKm           *float64 `json:"min_km,omitempty"`
	MaxPaceMinPerKm *float64 `json:"max_pace_min_per_km,omitempty"`
}

// RuleSet is a challenge's verification configuration: one default rule
// plus per-category exceptions. The shape is fixed; it is not a
// scripting surface.
type RuleSet struct {
	Default    DefaultRule              `json:"default"`
	Exceptions map[string]ExceptionRule `json:"exceptions,omitempty"`
}

// Challenge groups participants under one rule set and penalty scheme.
type Challenge struct {
	ID                  uuid.UUID
	Name                string
	JoinCode            string
	StartDate           time.Time
	PenaltyAmount       float64
	RequiredDaysPerWeek int // Stored but not yet consumed by the leaderboard.
	Rules               RuleSet
	CreatedBy           uuid.UUID
	CreatedAt           time.Time
}

// LeaderboardEntry is the derived standing of one participant. It is
// computed on read and never stored.
type LeaderboardEntry struct {
	UserID     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	IsAdmin    bool      `json:"is_admin"`
	MissedDays int       `json:"missed_days"`
	PenaltyDue float64   `json:"penalty_due"`
}
