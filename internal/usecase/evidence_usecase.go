package usecase

import (
	"context"

	"gravity/internal/domain/entity"

	"github.com/google/uuid"
)

// EvidenceResult is the outcome of an evidence submission. Rejection is
// a recorded outcome, not an error: the daily log is persisted either
// way, with Notes explaining a rejection.
type EvidenceResult struct {
	Log      *entity.DailyLog `json:"log"`
	Accepted bool             `json:"accepted"`
	Reasons  []string         `json:"reasons,omitempty"`
}

// EvidenceUsecase runs the photo evidence verification pipeline.
type EvidenceUsecase interface {
	// Submit verifies an evidence submission (timestamp provenance plus
	// biometric liveness) and reconciles the daily log at human trust.
	Submit(ctx context.Context, userID uuid.UUID, submission *entity.EvidenceSubmission) (*EvidenceResult, error)

	// Autofill extracts best-effort HR and duration hints from a stats
	// screenshot. It never fails the submission path; on any OCR
	// trouble it returns empty hints.
	Autofill(ctx context.Context, statsPhoto []byte) *entity.AutofillHints

	// SetReferencePhoto uploads the biometric baseline. The first
	// successful upload locks it; subsequent attempts fail with
	// ErrReferencePhotoLocked until an admin unlocks.
	SetReferencePhoto(ctx context.Context, userID uuid.UUID, photo []byte) (string, error)

	// UnlockReferencePhoto clears the lock so the user can upload a new
	// baseline. Caller must be an admin.
	UnlockReferencePhoto(ctx context.Context, adminID, userID uuid.UUID) error
}
