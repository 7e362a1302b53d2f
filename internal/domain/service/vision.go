package service

import (
	"context"

	"gravity/internal/domain/entity"
	"gravity/internal/errors"
)

// Distinct biometric rejection reasons. They are surfaced verbatim so
// the participant knows which image to fix.
var (
	ErrNoFaceInReference = errors.New("no face detected in the reference photo")
	ErrNoFaceInEvidence  = errors.New("no face detected in the evidence photo")
	ErrFaceMismatch      = errors.New("face verification failed: not the same person")
)

// FaceMatch is the result of comparing an evidence face against the
// reference descriptor.
type FaceMatch struct {
	Match    bool
	Distance float64
}

// FaceMatcher compares a user's locked reference photo with a submitted
// evidence photo. Implementations hold process-wide model state that is
// initialized exactly once and read-only afterwards.
type FaceMatcher interface {
	// Match detects a single face in each image, computes descriptors
	// and compares by distance. The three rejection modes (no face in
	// the reference, no face in the evidence, distance above threshold)
	// surface as the sentinel errors above; infrastructure failures
	// surface as ordinary wrapped errors.
	Match(ctx context.Context, referenceURL string, evidence []byte) (*FaceMatch, error)
}

// TextRecognizer extracts raw text from a stats screenshot. It backs
// the best-effort OCR autofill; callers must treat any failure as
// non-fatal.
type TextRecognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)

	// ExtractHints recognizes the image and pattern-matches the text
	// for heart-rate and duration pre-fill suggestions.
	ExtractHints(ctx context.Context, image []byte) (entity.AutofillHints, error)
}
