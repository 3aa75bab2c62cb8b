package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound          = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists     = new(ErrCodeAlreadyExists, "resource already exists")
	ErrVersionConflict   = new(ErrCodeVersionConflict, "version conflict")
	ErrValidation        = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation  = new(ErrCodeInvalidOperation, "invalid operation")
	ErrInvalidQuantity   = new(ErrCodeInvalidQuantity, "invalid quantity")
	ErrQuotaExceeded     = new(ErrCodeQuotaExceeded, "quarterly quota exceeded")
	ErrSequenceExhausted = new(ErrCodeSequenceExhausted, "beacon code sequence exhausted")
	ErrPartialCommit     = new(ErrCodePartialCommit, "partial commit inconsistency")
	ErrDatabase          = new(ErrCodeDatabase, "database error")
	ErrSystem            = new(ErrCodeSystemError, "system error")
	// statusCodes orders sentinel checks so an error carrying more than
	// one mark always maps to the same status; graver classes come first.
	statusCodes = []struct {
		err    error
		status int
	}{
		{ErrPartialCommit, http.StatusInternalServerError},
		{ErrSequenceExhausted, http.StatusServiceUnavailable},
		{ErrQuotaExceeded, http.StatusTooManyRequests},
		{ErrVersionConflict, http.StatusConflict},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidQuantity, http.StatusBadRequest},
		{ErrInvalidOperation, http.StatusBadRequest},
		{ErrValidation, http.StatusBadRequest},
		{ErrDatabase, http.StatusInternalServerError},
		{ErrSystem, http.StatusInternalServerError},
	}
)

const (
	ErrCodeSystemError       = "system_error"
	ErrCodeNotFound          = "not_found"
	ErrCodeAlreadyExists     = "already_exists"
	ErrCodeVersionConflict   = "version_conflict"
	ErrCodeValidation        = "validation_error"
	ErrCodeInvalidOperation  = "invalid_operation"
	ErrCodeInvalidQuantity   = "invalid_quantity"
	ErrCodeQuotaExceeded     = "quota_exceeded"
	ErrCodeSequenceExhausted = "sequence_exhausted"
	ErrCodePartialCommit     = "partial_commit_inconsistency"
	ErrCodeDatabase          = "database_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// New creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsVersionConflict checks if an error is a version conflict error
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsInvalidQuantity checks if an error is an invalid quantity error
func IsInvalidQuantity(err error) bool {
	return errors.Is(err, ErrInvalidQuantity)
}

// IsQuotaExceeded checks if an error is a quota exceeded error
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}

// IsSequenceExhausted checks if an error is a sequence exhausted error
func IsSequenceExhausted(err error) bool {
	return errors.Is(err, ErrSequenceExhausted)
}

// IsPartialCommit checks if an error is a partial commit inconsistency
func IsPartialCommit(err error) bool {
	return errors.Is(err, ErrPartialCommit)
}

// IsDatabase checks if an error is a database error
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

func HTTPStatusFromErr(err error) int {
	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return sc.status
		}
	}
	return http.StatusInternalServerError
}
