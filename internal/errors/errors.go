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

// ForbiddenError represents an error when the acting user lacks the
// required role (owner-or-admin, member, or self) for an operation
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "forbidden"
}

// InvalidTransitionError is returned when the membership ledger rejects a
// transition because the row's current status is not in the operation's
// allowed predecessor set. It carries the operation name and the blocking
// status so callers can surface the exact per-operation reason.
type InvalidTransitionError struct {
	Operation string
	Status    string
	Reason    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s rejected from status %q: %s", e.Operation, e.Status, e.Reason)
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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// CacheWriteError wraps a failed best-effort cache write. The primary store
// write it accompanies has already committed and must not be rolled back.
type CacheWriteError struct {
	Key string
	Err error
}

func (e *CacheWriteError) Error() string {
	return fmt.Sprintf("cache write failed for key %q: %v", e.Key, e.Err)
}

func (e *CacheWriteError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrCompanyNotFound      = &NotFoundError{Entity: "company"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "membership"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
	ErrJoinRequestNotFound  = &NotFoundError{Entity: "join request"}
	ErrQuizNotFound         = &NotFoundError{Entity: "quiz"}
	ErrQuestionNotFound     = &NotFoundError{Entity: "question"}
	ErrResultNotFound       = &NotFoundError{Entity: "result"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Authorization Errors
var (
	ErrNotOwnerOrAdmin = &ForbiddenError{Message: "user is not an owner or admin of this company"}
	ErrNotMember       = &ForbiddenError{Message: "user is not a member of this company"}
	ErrNotSelf         = &ForbiddenError{Message: "operation is only allowed on your own account"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrAccountExists      = errors.New("account already exists")
)

// Business Logic Errors
var (
	ErrQuizHasNoQuestions = &ValidationError{Field: "questions", Message: "quiz has no questions"}
	ErrTransitionConflict = errors.New("membership status changed concurrently")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsCacheWrite checks if an error is a CacheWriteError
func IsCacheWrite(err error) bool {
	var cacheErr *CacheWriteError
	return errors.As(err, &cacheErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(operation, status, reason string) error {
	return &InvalidTransitionError{Operation: operation, Status: status, Reason: reason}
}

// NewCacheWriteError wraps a cache failure for the given key
func NewCacheWriteError(key string, err error) error {
	return &CacheWriteError{Key: key, Err: err}
}
