package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gravity/internal/domain/entity"
	domainerrors "gravity/internal/domain/errors"
	"gravity/internal/domain/repository"
	"gravity/internal/domain/service"
	"gravity/internal/errors"
	"gravity/internal/usecase"

	"github.com/google/uuid"
)

// notesPhotoEvidence marks a log verified through the evidence pipeline
// rather than a provider import.
const notesPhotoEvidence = "Verified by Photo Evidence"

type evidenceService struct {
	profileRepo    repository.ProfileRepository
	dailyLogRepo   repository.DailyLogRepository
	timestamper    service.PhotoTimestamper
	faceMatcher    service.FaceMatcher
	textRecognizer service.TextRecognizer
	evidenceStore  service.EvidenceStore
	notifier       usecase.LogNotifier
	logger         *slog.Logger
}

// NewEvidenceService creates the evidence verification pipeline.
func NewEvidenceService(
	profileRepo repository.ProfileRepository,
	dailyLogRepo repository.DailyLogRepository,
	timestamper service.PhotoTimestamper,
	faceMatcher service.FaceMatcher,
	textRecognizer service.TextRecognizer,
	evidenceStore service.EvidenceStore,
	notifier usecase.LogNotifier,
	logger *slog.Logger,
) usecase.EvidenceUsecase {
	return &evidenceService{
		profileRepo:    profileRepo,
		dailyLogRepo:   dailyLogRepo,
		timestamper:    timestamper,
		faceMatcher:    faceMatcher,
		textRecognizer: textRecognizer,
		evidenceStore:  evidenceStore,
		notifier:       notifier,
		logger:         logger,
	}
}

// Submit runs both mandatory checks and persists the outcome either
// way: acceptance reconciles a verified log, rejection records the
// reasons on an unverified one.
func (s *evidenceService) Submit(ctx context.Context, userID uuid.UUID, submission *entity.EvidenceSubmission) (*usecase.EvidenceResult, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	var reasons []string

	if reason := s.checkTimestamp(submission); reason != "" {
		reasons = append(reasons, reason)
	}

	biometricReason, err := s.checkBiometric(ctx, profile, submission.LivenessPhoto)
	if err != nil {
		return nil, err
	}
	if biometricReason != "" {
		reasons = append(reasons, biometricReason)
	}

	accepted := len(reasons) == 0

	log := &entity.DailyLog{
		UserID:     userID,
		Date:       submission.Date,
		IsVerified: &accepted,
	}
	if submission.SelfReportedHR != nil {
		log.AvgHeartRate = *submission.SelfReportedHR
	}
	if submission.SelfReportedMinutes != nil {
		log.DurationMinutes = *submission.SelfReportedMinutes
	}

	if accepted {
		log.Notes = notesPhotoEvidence

		photoURL, err := s.evidenceStore.UploadEvidence(ctx, "stats.jpg", submission.StatsPhoto)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload stats photo")
		}
		livenessURL, err := s.evidenceStore.UploadEvidence(ctx, "liveness.jpg", submission.LivenessPhoto)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload liveness photo")
		}
		log.PhotoProofURL = &photoURL
		log.HandSignalURL = &livenessURL
	} else {
		log.Notes = "Rejected: " + strings.Join(reasons, "; ")
	}

	applied, err := s.dailyLogRepo.Upsert(ctx, log, entity.SourceHuman)
	if err != nil {
		return nil, err
	}
	if !applied {
		s.logger.Info("Daily log already verified, evidence submission skipped",
			slog.String("user_id", userID.String()),
			slog.String("date", submission.Date),
		)
	}
	if applied && accepted {
		s.notifier.NotifyLogReconciled(context.WithoutCancel(ctx), log, entity.SourceHuman)
	}

	return &usecase.EvidenceResult{
		Log:      log,
		Accepted: accepted,
		Reasons:  reasons,
	}, nil
}

// checkTimestamp verifies the stats photo was captured on the claimed
// date. Under the soft-confirm policy an explicit user override clears
// the mismatch; the blocking policy never does.
func (s *evidenceService) checkTimestamp(submission *entity.EvidenceSubmission) string {
	captured, err := s.timestamper.CaptureTime(submission.StatsPhoto, submission.StatsPhotoModTime)
	if err != nil {
		return fmt.Sprintf("Timestamp Fail: could not read capture time (%s)", err)
	}

	capturedDate := captured.UTC().Format("2006-01-02")
	if capturedDate == submission.Date {
		return ""
	}

	if submission.Policy == entity.TimestampSoftConfirm && submission.OverrideMismatch {
		return ""
	}

	return fmt.Sprintf("Timestamp Fail: photo captured %s, claimed %s", capturedDate, submission.Date)
}

// checkBiometric compares the liveness photo against the locked
// reference. The three model rejections become recorded reasons; an
// unreachable inference service is a surfaced fault instead, because
// the user can do nothing about it.
func (s *evidenceService) checkBiometric(ctx context.Context, profile *entity.Profile, liveness []byte) (string, error) {
	if !profile.HasReferencePhoto() {
		return "Biometric Fail: no reference photo on file", nil
	}

	_, err := s.faceMatcher.Match(ctx, profile.ReferencePhotoURL, liveness)
	switch {
	case err == nil:
		return "", nil
	case errors.Is(err, service.ErrNoFaceInReference),
		errors.Is(err, service.ErrNoFaceInEvidence),
		errors.Is(err, service.ErrFaceMismatch):
		return "Biometric Fail: " + err.Error(), nil
	default:
		return "", domainerrors.ErrBiometricUnavailable.WrapMessage(err.Error())
	}
}

// Autofill extracts pre-fill hints from the stats screenshot. OCR
// trouble degrades to empty hints, never an error.
func (s *evidenceService) Autofill(ctx context.Context, statsPhoto []byte) *entity.AutofillHints {
	hints, err := s.textRecognizer.ExtractHints(ctx, statsPhoto)
	if err != nil {
		s.logger.Warn("OCR autofill failed, falling back to manual entry", slog.Any("error", err))

		return &entity.AutofillHints{}
	}

	return &hints
}

// SetReferencePhoto uploads the biometric baseline and locks it.
func (s *evidenceService) SetReferencePhoto(ctx context.Context, userID uuid.UUID, photo []byte) (string, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", err
	}
	if profile.ReferencePhotoLock {
		return "", domainerrors.ErrReferencePhotoLocked
	}

	url, err := s.evidenceStore.UploadEvidence(ctx, "reference.jpg", photo)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload reference photo")
	}

	if err := s.profileRepo.SetReferencePhoto(ctx, userID, url, true); err != nil {
		return "", err
	}

	return url, nil
}

// UnlockReferencePhoto clears the baseline lock. Admin only.
func (s *evidenceService) UnlockReferencePhoto(ctx context.Context, adminID, userID uuid.UUID) error {
	admin, err := s.profileRepo.FindByID(ctx, adminID)
	if err != nil {
		return err
	}
	if !admin.IsAdmin {
		return domainerrors.ErrPermissionDenied
	}

	target, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	return s.profileRepo.SetReferencePhoto(ctx, userID, target.ReferencePhotoURL, false)
}
