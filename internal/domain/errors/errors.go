// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"inkwell/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Entry-related errors
	ErrEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTRY_NOT_FOUND",
		"Entry not found",
		"",
	)

	ErrAlreadySubmitted = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_SUBMITTED",
		"You have already submitted an entry",
		"",
	)

	ErrSubmissionClosed = NewBaseError(
		http.StatusBadRequest,
		"SUBMISSION_CLOSED",
		"Submissions are currently closed",
		"",
	)

	ErrWordCountOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"WORD_COUNT_OUT_OF_RANGE",
		"Entry word count is outside the allowed range",
		"",
	)

	// Voting-related errors
	ErrAlreadyVoted = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_VOTED",
		"You have already voted for an entry",
		"",
	)

	ErrSelfVote = NewBaseError(
		http.StatusBadRequest,
		"SELF_VOTE",
		"You cannot vote for your own entry",
		"",
	)

	ErrDuplicateVoter = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_VOTER",
		"You are already in this entry's voter list",
		"",
	)

	ErrNotVoted = NewBaseError(
		http.StatusBadRequest,
		"NOT_VOTED",
		"You have no active vote for this entry",
		"",
	)

	ErrVotingClosed = NewBaseError(
		http.StatusBadRequest,
		"VOTING_CLOSED",
		"Voting is currently closed",
		"",
	)

	// Timeline-related errors
	ErrTimelineNotFound = NewBaseError(
		http.StatusNotFound,
		"TIMELINE_NOT_FOUND",
		"Competition timeline has not been configured",
		"",
	)

	// Admin auth-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Missing, invalid or expired session",
		"",
	)

	ErrSecretKeyMismatch = NewBaseError(
		http.StatusForbidden,
		"SECRET_KEY_MISMATCH",
		"Admin secret key does not match",
		"",
	)

	ErrAdminAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ADMIN_ALREADY_EXISTS",
		"An admin with this email already exists",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Identity-related errors
	ErrIDTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"ID_TOKEN_INVALID",
		"Invalid or expired sign-in token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrMaintenanceMode = NewBaseError(
		http.StatusServiceUnavailable,
		"MAINTENANCE_MODE",
		"Service is under maintenance",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
