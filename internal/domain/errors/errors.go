package errors

import (
	"net/http"

	"autoserv/internal/errors"
)

// Kind classifies an error for the boundary that turns it into a response.
type Kind string

const (
	KindValidation Kind = "validation" // Client supplied malformed or incomplete input. Never persisted.
	KindConflict   Kind = "conflict"   // Uniqueness violation. Never persisted as a duplicate.
	KindStore      Kind = "store"      // Persistence failure. Surfaced as an internal failure.
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
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

// Predefined error types
var (
	// Registration input
	ErrMissingRequiredField = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"MISSING_REQUIRED_FIELD",
		"name, email and password are required",
		"",
	)

	ErrInvalidName = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_NAME",
		"Name must be between 2 and 60 characters",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid email format",
		"",
	)

	ErrSecretTooShort = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password must be at least 6 characters",
		"",
	)

	ErrSecretTooLong = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_TOO_LONG",
		"Password must be at most 72 bytes",
		"",
	)

	ErrInvalidInput = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request body",
		"",
	)

	ErrEmptyBody = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"EMPTY_BODY",
		"Empty JSON body",
		"",
	)

	ErrInvalidEvent = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_EVENT",
		"Event is missing account_id or email",
		"",
	)

	// Account uniqueness
	ErrEmailAlreadyInUse = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"Email already in use",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"Not Found",
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

// Unwrap exposes the driver error to errors.Is and errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns KindStore
func (e *DatabaseExecuteError) Kind() Kind {
	return KindStore
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
	return "Internal server error, please try again later"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the classification of the first AppError in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
