package errors

import (
	"carecorner/internal/errors"
)

// ErrorKind classifies an application error independently of any transport.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindUnauthorized
	KindConflict
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() ErrorKind   // Error classification
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      ErrorKind
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(kind ErrorKind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Unwrap exposes the underlying cause, if any
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches any BaseError carrying the same error code, so classified copies
// created by WithCause or WithDetails still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() ErrorKind {
	return e.kind
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
	clone := *e
	clone.details = details

	return &clone
}

// WithCause attaches the underlying error. The message stays user-facing while
// the cause is kept for logging.
func (e *BaseError) WithCause(cause error) *BaseError {
	clone := *e
	clone.cause = cause

	return &clone
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"Missing required fields",
		"",
	)

	// User-related errors
	ErrDuplicateEmail = NewBaseError(
		KindConflict,
		"EMAIL_ALREADY_EXISTS",
		"Email already exists",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		KindInternal,
		"REGISTRATION_FAILED",
		"Registration failed",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		KindUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrLoginFailed = NewBaseError(
		KindInternal,
		"LOGIN_FAILED",
		"Login failed",
		"",
	)

	ErrHashingFailed = NewBaseError(
		KindInternal,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// ErrMalformedHash means a stored credential is not in any recognized encoding.
	ErrMalformedHash = NewBaseError(
		KindInternal,
		"MALFORMED_PASSWORD_HASH",
		"Login failed",
		"",
	)

	// Post-related errors
	ErrPostNotFound = NewBaseError(
		KindNotFound,
		"POST_NOT_FOUND",
		"Post not found",
		"",
	)

	ErrFetchPostsFailed = NewBaseError(
		KindInternal,
		"FETCH_POSTS_FAILED",
		"Failed to fetch posts",
		"",
	)

	ErrCreatePostFailed = NewBaseError(
		KindInternal,
		"CREATE_POST_FAILED",
		"Failed to create post",
		"",
	)

	ErrFetchPostFailed = NewBaseError(
		KindInternal,
		"FETCH_POST_FAILED",
		"Failed to fetch post details",
		"",
	)

	ErrDeletePostFailed = NewBaseError(
		KindInternal,
		"DELETE_POST_FAILED",
		"Failed to delete post",
		"",
	)

	// Comment-related errors
	ErrAddCommentFailed = NewBaseError(
		KindInternal,
		"ADD_COMMENT_FAILED",
		"Failed to add comment",
		"",
	)

	// Migration-related errors
	ErrMigrationFailed = NewBaseError(
		KindInternal,
		"CREDENTIAL_MIGRATION_FAILED",
		"Credential migration failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		"NOT_FOUND",
		"Resource not found",
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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() ErrorKind {
	return KindInternal
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

// KindOf reports the classification of err. Errors outside the taxonomy are internal.
func KindOf(err error) ErrorKind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
