// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"gravity/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrAuthRequired means there is no local session on an interactive path.
	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Authentication required",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Integration errors. Relink is terminal until the user reconnects
	// the provider; provider-unavailable is transient and retryable.
	ErrIntegrationNotFound = NewBaseError(
		http.StatusNotFound,
		"INTEGRATION_NOT_FOUND",
		"Provider is not connected",
		"",
	)

	ErrIntegrationRelink = NewBaseError(
		http.StatusUnauthorized,
		"INTEGRATION_RELINK_REQUIRED",
		"Provider authorization expired, please reconnect",
		"",
	)

	ErrProviderUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PROVIDER_UNAVAILABLE",
		"Activity provider is unreachable",
		"",
	)

	ErrChallengeNotFound = NewBaseError(
		http.StatusNotFound,
		"CHALLENGE_NOT_FOUND",
		"Challenge not found",
		"",
	)

	ErrInvalidJoinCode = NewBaseError(
		http.StatusNotFound,
		"INVALID_JOIN_CODE",
		"Invalid challenge code",
		"",
	)

	ErrLogNotFound = NewBaseError(
		http.StatusNotFound,
		"LOG_NOT_FOUND",
		"Daily log not found",
		"",
	)

	// Evidence pipeline. A rejection is a business outcome carrying its
	// reasons; it is persisted with the explanation, never treated as a
	// fault.
	ErrEvidenceRejected = NewBaseError(
		http.StatusUnprocessableEntity,
		"EVIDENCE_REJECTED",
		"Evidence verification failed",
		"",
	)

	ErrReferencePhotoLocked = NewBaseError(
		http.StatusConflict,
		"REFERENCE_PHOTO_LOCKED",
		"Reference photo is locked and can only be changed by an admin",
		"",
	)

	ErrBiometricUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BIOMETRIC_UNAVAILABLE",
		"Face verification service is unreachable",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"Permission denied",
		"",
	)

	// Webhook handshake outcomes. The provider retries on anything but
	// a clean echo, so the codes matter more than the bodies.
	ErrWebhookMissingParams = NewBaseError(
		http.StatusBadRequest,
		"WEBHOOK_MISSING_PARAMS",
		"Missing subscription verification parameters",
		"",
	)

	ErrWebhookTokenMismatch = NewBaseError(
		http.StatusForbidden,
		"WEBHOOK_TOKEN_MISMATCH",
		"Subscription verification failed",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database failure.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)

	return errors.WithStack(base)
}
