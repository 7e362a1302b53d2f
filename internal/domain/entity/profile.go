// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a challenge participant.
type Profile struct {
	ID                 uuid.UUID  // Matches the external auth subject for this user.
	Username           string     // Display name shown on the feed and leaderboard.
	AvatarURL          string     // Optional avatar image.
	ReferencePhotoURL  string     // Biometric baseline image used by evidence verification.
	ReferencePhotoLock bool       // Once true, the reference photo can only change via admin unlock.
	IsAdmin            bool       // Grants access to the moderation endpoints.
	CurrentChallengeID *uuid.UUID // The challenge this user currently participates in, nil if none.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasReferencePhoto reports whether a biometric baseline exists for this user.
func (p *Profile) HasReferencePhoto() bool {
	return p.ReferencePhotoURL != ""
}
