package entity

import (
	"time"

	"github.com/google/uuid"
)

// Integration holds the OAuth credential pair linking a user to an
// activity-tracking provider. There is exactly one per (user, provider).
// All mutation goes through the token lifecycle manager; no other
// component may write these fields.
type Integration struct {
	UserID            uuid.UUID
	Provider          string // Provider identifier, e.g. "strava".
	AccessToken       string
	RefreshToken      string
	ExpiresAt         int64  // Epoch seconds at which the access token expires.
	ExternalAthleteID string // The provider-side account id, used for webhook owner lookup.
	Scope             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Expired reports whether the access token is no longer usable at the
// given instant.
func (i *Integration) Expired(now time.Time) bool {
	return now.Unix() >= i.ExpiresAt
}
