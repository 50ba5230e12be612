package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// NotPermittedError represents a role-based rejection. It is returned as a
// status value and checked by callers, never raised as a panic.
type NotPermittedError struct {
	Operation string
}

func (e *NotPermittedError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("not permitted: %s", e.Operation)
	}
	return "not permitted"
}

// Is matches any NotPermittedError regardless of the attempted operation.
func (e *NotPermittedError) Is(target error) bool {
	_, ok := target.(*NotPermittedError)
	return ok
}

// AuthenticationError represents a credential failure from the partition
// store (invalid or expired principal). Surfaced as a login failure, never
// retried automatically.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Is matches any AuthenticationError.
func (e *AuthenticationError) Is(target error) bool {
	_, ok := target.(*AuthenticationError)
	return ok
}

// PartitionUnavailableError represents a timeout or network failure opening
// a partition. Non-critical steps treat it as best-effort-skip; primary
// operations surface it to the caller.
type PartitionUnavailableError struct {
	Partition string
	Cause     error
}

func (e *PartitionUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("partition %s unavailable: %v", e.Partition, e.Cause)
	}
	return fmt.Sprintf("partition %s unavailable", e.Partition)
}

func (e *PartitionUnavailableError) Unwrap() error {
	return e.Cause
}

// Is matches any PartitionUnavailableError.
func (e *PartitionUnavailableError) Is(target error) bool {
	_, ok := target.(*PartitionUnavailableError)
	return ok
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Entity Not Found Errors
var (
	ErrPersonNotFound   = &NotFoundError{Entity: "person"}
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
	ErrTaskNotFound     = &NotFoundError{Entity: "task"}
	ErrLocationNotFound = &NotFoundError{Entity: "location"}
)

// Already Exists Errors
var (
	ErrTeamExists = &AlreadyExistsError{Entity: "team", Context: "with this name"}
)

// Permission Errors
var (
	ErrNotPermitted = &NotPermittedError{}
	ErrAuthFailure  = &AuthenticationError{Message: "authentication rejected by partition store"}
)

// Partition Errors
var (
	ErrPartitionUnavailable = &PartitionUnavailableError{}
	ErrWriteInProgress      = errors.New("another write is already active on this partition handle")
)

// Business Logic Errors
var (
	ErrMemberAlreadyInTeam = errors.New("person is already a member of this team")
	ErrMemberNotInTeam     = errors.New("person is not a member of this team")
)
