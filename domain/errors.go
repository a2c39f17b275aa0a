package domain

import (
	"fmt"
)

// ErrorCode represents the type of domain error
type ErrorCode string

const (
	// ErrCodeNotFound indicates that a requested resource was not found
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeDuplicate indicates that a resource with the same identity already exists
	ErrCodeDuplicate ErrorCode = "DUPLICATE"

	// ErrCodeInvalidInput indicates that the input provided is invalid
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeInvalidOperation indicates an operation that is not allowed for the target
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// ErrCodeUnknownZone indicates an IANA timezone identifier that cannot be resolved
	ErrCodeUnknownZone ErrorCode = "UNKNOWN_ZONE"

	// ErrCodeRepository indicates a repository operation error
	ErrCodeRepository ErrorCode = "REPOSITORY_ERROR"

	// ErrCodePersistence indicates that persisting state failed after the
	// in-memory mutation was already applied
	ErrCodePersistence ErrorCode = "PERSISTENCE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error
func (e *DomainError) WithDetails(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// NewDomainErrorWithCause creates a new domain error with an underlying cause
func NewDomainErrorWithCause(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Err:     err,
	}
}

// Common domain errors

// ErrNotFound creates a not found error
func ErrNotFound(resource string, id string) *DomainError {
	return NewDomainError(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetails("resource", resource).
		WithDetails("id", id)
}

// ErrDuplicate creates a duplicate resource error
func ErrDuplicate(resource string, key string) *DomainError {
	return NewDomainError(ErrCodeDuplicate, fmt.Sprintf("%s already exists", resource)).
		WithDetails("resource", resource).
		WithDetails("key", key)
}

// ErrInvalidInput creates an invalid input error
func ErrInvalidInput(field string, reason string) *DomainError {
	return NewDomainError(ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetails("field", field).
		WithDetails("reason", reason)
}

// ErrInvalidOperation creates an invalid operation error
func ErrInvalidOperation(operation string, target string, reason string) *DomainError {
	return NewDomainError(ErrCodeInvalidOperation,
		fmt.Sprintf("cannot %s %s: %s", operation, target, reason)).
		WithDetails("operation", operation).
		WithDetails("target", target).
		WithDetails("reason", reason)
}

// ErrUnknownZone creates an unknown timezone error
func ErrUnknownZone(zone string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeUnknownZone,
		fmt.Sprintf("unknown timezone: %s", zone), err).
		WithDetails("zone", zone)
}

// ErrRepository creates a repository error
func ErrRepository(operation string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeRepository, fmt.Sprintf("repository error in %s", operation), err).
		WithDetails("operation", operation)
}

// ErrPersistence creates a persistence error. The in-memory mutation that
// triggered the save is kept; callers surface this error without rolling back.
func ErrPersistence(operation string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodePersistence, fmt.Sprintf("failed to persist %s", operation), err).
		WithDetails("operation", operation)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Code
	}
	return ""
}
