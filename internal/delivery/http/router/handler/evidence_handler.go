package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"gravity/internal/delivery/http/response"
	"gravity/internal/domain/entity"
	"gravity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxEvidencePhotoBytes caps a single uploaded photo.
const maxEvidencePhotoBytes = 15 << 20

// EvidenceHandlerParams holds dependencies for EvidenceHandler, injected by Fx.
type EvidenceHandlerParams struct {
	fx.In

	EvidenceUC usecase.EvidenceUsecase
	Logger     *slog.Logger
}

// EvidenceHandler holds dependencies for evidence submission handlers
type EvidenceHandler struct {
	evidenceUC usecase.EvidenceUsecase
	logger     *slog.Logger
}

// NewEvidenceHandler is the constructor for EvidenceHandler
func NewEvidenceHandler(params EvidenceHandlerParams) *EvidenceHandler {
	return &EvidenceHandler{
		evidenceUC: params.EvidenceUC,
		logger:     params.Logger,
	}
}

// Submit handles a multipart evidence submission: the stats screenshot,
// the liveness photo, and the claimed date. The response distinguishes
// acceptance from rejection; both are 200s because both are recorded.
func (h *EvidenceHandler) Submit(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	date := c.FormValue("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return response.BadRequest(c, "INVALID_DATE", "date must be YYYY-MM-DD")
	}

	statsPhoto, statsModTime, err := readPhotoField(c, "stats_photo")
	if err != nil {
		return response.BadRequest(c, "MISSING_PHOTO", "stats_photo file is required")
	}
	livenessPhoto, livenessModTime, err := readPhotoField(c, "liveness_photo")
	if err != nil {
		return response.BadRequest(c, "MISSING_PHOTO", "liveness_photo file is required")
	}

	submission := &entity.EvidenceSubmission{
		Date:                 date,
		StatsPhoto:           statsPhoto,
		StatsPhotoModTime:    statsModTime,
		LivenessPhoto:        livenessPhoto,
		LivenessPhotoModTime: livenessModTime,
		Policy:               parsePolicy(c.FormValue("policy")),
		OverrideMismatch:     c.FormValue("override_mismatch") == "true",
	}

	if hr, err := strconv.Atoi(c.FormValue("self_reported_hr")); err == nil {
		submission.SelfReportedHR = &hr
	}
	if minutes, err := strconv.Atoi(c.FormValue("self_reported_minutes")); err == nil {
		submission.SelfReportedMinutes = &minutes
	}

	result, err := h.evidenceUC.Submit(c.Request().Context(), userID, submission)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Evidence accepted"
	if !result.Accepted {
		message = "Evidence rejected"
	}

	return response.Success(c, http.StatusOK, result, message)
}

// Autofill extracts pre-fill hints from a stats screenshot
func (h *EvidenceHandler) Autofill(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}

	statsPhoto, _, err := readPhotoField(c, "stats_photo")
	if err != nil {
		return response.BadRequest(c, "MISSING_PHOTO", "stats_photo file is required")
	}

	hints := h.evidenceUC.Autofill(c.Request().Context(), statsPhoto)

	return response.Success(c, http.StatusOK, hints, "Autofill hints extracted")
}

// SetReferencePhoto uploads the caller's biometric baseline
func (h *EvidenceHandler) SetReferencePhoto(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	photo, _, err := readPhotoField(c, "photo")
	if err != nil {
		return response.BadRequest(c, "MISSING_PHOTO", "photo file is required")
	}

	url, err := h.evidenceUC.SetReferencePhoto(c.Request().Context(), userID, photo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"reference_photo_url": url},
		"Reference photo set")
}

// UnlockReferencePhoto clears a user's reference photo lock. Admin only.
func (h *EvidenceHandler) UnlockReferencePhoto(c echo.Context) error {
	adminID, err := getUserID(c)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.evidenceUC.UnlockReferencePhoto(c.Request().Context(), adminID, targetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Reference photo unlocked")
}

// readPhotoField reads one uploaded file and its client-side
// modification time, the EXIF fallback for screenshots.
func readPhotoField(c echo.Context, field string) ([]byte, time.Time, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, time.Time{}, err
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return nil, time.Time{}, err
	}

	modTime := time.Now().UTC()
	if millis, err := strconv.ParseInt(c.FormValue(field+"_last_modified"), 10, 64); err == nil {
		modTime = time.UnixMilli(millis).UTC()
	}

	return data, modTime, nil
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(io.LimitReader(file, maxEvidencePhotoBytes))
}

func parsePolicy(raw string) entity.TimestampPolicy {
	if raw == "soft_confirm" {
		return entity.TimestampSoftConfirm
	}

	return entity.TimestampBlocking
}
