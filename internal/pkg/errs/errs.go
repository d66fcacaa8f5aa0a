package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidationFailed is the sentinel for client payloads that fail schema
	// validation. The concrete ValidationError carries per-field detail.
	ErrValidationFailed = errors.New("validation failed")

	// ErrBadRequest is the sentinel for well-formed requests that violate a
	// business rule.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is the sentinel for requests referencing an absent entity.
	ErrNotFound = errors.New("object not found")

	// ErrConnectivity is the sentinel for unreachable storage.
	ErrConnectivity = errors.New("database connection failed")

	// ErrQueryFailed is the sentinel for operations the storage rejected.
	ErrQueryFailed = errors.New("database query failed")
)

// FieldViolation describes a single schema violation in a client payload.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every field-level violation found in a payload,
// not just the first one.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates a ValidationError from the collected violations.
func NewValidationError(violations []FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// BadRequestError reports a business-rule violation with a curated message
// safe to return to the caller.
type BadRequestError struct {
	Message string
	Cause   error
}

// NewBadRequestError creates a BadRequestError with the given message.
func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

// NewBadRequestErrorWithCause creates a BadRequestError wrapping a cause.
func NewBadRequestErrorWithCause(message string, cause error) *BadRequestError {
	return &BadRequestError{Message: message, Cause: cause}
}

func (e *BadRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", e.Message, sanitize(e.Cause.Error()))
	}
	return e.Message
}

func (e *BadRequestError) Unwrap() error {
	return ErrBadRequest
}

// NotFoundError reports that an identifier-scoped operation matched no row.
// This is a domain-level outcome, not a storage fault.
type NotFoundError struct {
	Entity string
	ID     any
	Cause  error
}

// NewNotFoundError creates a NotFoundError for the given entity and identifier.
func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewNotFoundErrorWithCause creates a NotFoundError wrapping a cause.
func NewNotFoundErrorWithCause(entity string, id any, cause error) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id, Cause: cause}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ConnectivityError reports that storage could not be reached. The cause is
// kept for logging but never rendered to the caller.
type ConnectivityError struct {
	Cause error
}

// NewConnectivityError creates a ConnectivityError wrapping a cause.
func NewConnectivityError(cause error) *ConnectivityError {
	return &ConnectivityError{Cause: cause}
}

func (e *ConnectivityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("database connection failed (cause: %s)", sanitize(e.Cause.Error()))
	}
	return "database connection failed"
}

func (e *ConnectivityError) Unwrap() error {
	return ErrConnectivity
}

// QueryError reports that storage rejected the operation, for example a
// malformed statement or a constraint violation. The cause is kept for
// logging but never rendered to the caller.
type QueryError struct {
	Cause error
}

// NewQueryError creates a QueryError wrapping a cause.
func NewQueryError(cause error) *QueryError {
	return &QueryError{Cause: cause}
}

func (e *QueryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("database query failed (cause: %s)", sanitize(e.Cause.Error()))
	}
	return "database query failed"
}

func (e *QueryError) Unwrap() error {
	return ErrQueryFailed
}

// sanitize strips newlines from wrapped error text so a single log line
// cannot be split by attacker-controlled input.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
