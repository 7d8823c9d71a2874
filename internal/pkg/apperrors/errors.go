package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrMemberNotFound   = errors.New("member not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrInvalidSortDirection = errors.New("invalid sort method")
	ErrValidationFailed     = errors.New("validation failed")
	ErrBadRequest           = errors.New("bad request")

	// Member errors
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// NewPostNotFoundError creates a not-found error for a missing post
func NewPostNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrPostNotFound,
		Message: message,
	}
}

// NewMemberNotFoundError creates a not-found error for a missing member
func NewMemberNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrMemberNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
