// Package apperr defines the error taxonomy shared by services and handlers.
// Every failure path returns one of these typed errors so callers can map
// them to an HTTP status without string matching.
package apperr

import (
	"fmt"

	"cha-pyeong/internal/models"
)

// ValidationError reports bad input shape or range. It always names the
// offending field and is recoverable by the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for a named field.
func Validation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// AuthorizationError reports that the viewer's role is insufficient for the
// requested operation. It is never retried and surfaced verbatim.
type AuthorizationError struct {
	Role      models.Role
	Operation string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role %q is not allowed to %s", e.Role, e.Operation)
}

// Forbidden builds an AuthorizationError.
func Forbidden(role models.Role, operation string) *AuthorizationError {
	return &AuthorizationError{Role: role, Operation: operation}
}

// NotFoundError reports a reference to a nonexistent resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError.
func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// WriteKind distinguishes the stages at which a multi-record write can fail.
type WriteKind string

const (
	// WriteReference: a pre-write foreign reference (tea or user) was invalid.
	WriteReference WriteKind = "reference"
	// WriteInsert: the primary row itself could not be inserted; the store
	// is untouched.
	WriteInsert WriteKind = "insert"
	// WriteScore: the score row could not be persisted; the compensating
	// delete of the assessment succeeded, so the store is clean.
	WriteScore WriteKind = "score"
	// WriteCleanup: the score row failed AND the compensating delete failed.
	// This is the one genuinely dangerous case: an orphaned assessment
	// remains in the store.
	WriteCleanup WriteKind = "cleanup"
)

// WriteError reports a persistence failure with enough detail to tell the
// stages apart.
type WriteError struct {
	Kind WriteKind
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s write failed (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Write builds a WriteError.
func Write(kind WriteKind, op string, err error) *WriteError {
	return &WriteError{Kind: kind, Op: op, Err: err}
}
