package errors

import "fmt"

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Code returns the machine-readable code of an AppError, or "" for any
// other error.
func Code(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ""
}

// Common error codes
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeAlreadyExists    = "ALREADY_EXISTS"
	ErrCodeRateLimit        = "RATE_LIMIT_EXCEEDED"
)

// Gamification error codes
const (
	ErrCodeInvalidLevelName    = "LEVEL_NAME_INVALID"
	ErrCodeInvalidThreshold    = "LEVEL_THRESHOLD_INVALID"
	ErrCodeInvalidLevel        = "LEVEL_INVALID"
	ErrCodeDuplicateCompletion = "DUPLICATE_LESSON_COMPLETION"
	ErrCodeUnknownPointSource  = "UNKNOWN_POINT_SOURCE"
)
