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

// ConflictError is returned when an exclusive entity (camera type, person)
// is already held by another source.
type ConflictError struct {
	Entity string
	Holder string
}

func (e *ConflictError) Error() string {
	if e.Holder != "" {
		return fmt.Sprintf("%s is already assigned to %s", e.Entity, e.Holder)
	}
	return fmt.Sprintf("%s is already assigned", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
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

// MissingContextError is raised locally, before any network call, when an
// operation needs an episode or a selected source that is not set.
type MissingContextError struct {
	What string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("no %s selected", e.What)
}

// Is enables errors.Is() comparison for MissingContextError
func (e *MissingContextError) Is(target error) bool {
	t, ok := target.(*MissingContextError)
	if !ok {
		return false
	}
	return e.What == t.What
}

// BackendError wraps a rejected or failed remote operation
type BackendError struct {
	Op      string
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s failed: status=%d %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEpisodeNotFound = &NotFoundError{Entity: "episode"}
	ErrSceneNotFound   = &NotFoundError{Entity: "scene"}
	ErrSourceNotFound  = &NotFoundError{Entity: "source"}
)

// Missing Context Errors
var (
	ErrNoEpisode        = &MissingContextError{What: "episode"}
	ErrNoSourceSelected = &MissingContextError{What: "source"}
)

// Transport Errors
var (
	ErrNotConnected   = errors.New("realtime connection is not established")
	ErrRequestTimeout = errors.New("realtime request timed out")
	ErrConnClosed     = errors.New("realtime connection closed")
)

// Business Logic Errors
var (
	ErrSwitchInProgress = errors.New("a source switch is already in progress")
	ErrUnknownKind      = errors.New("unknown assignment kind")
	ErrNotAudioSource   = errors.New("source has no volume control")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// ConflictHolder returns the holder named by a ConflictError, if any
func ConflictHolder(err error) string {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Holder
	}
	return ""
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsMissingContext checks if an error is a MissingContextError
func IsMissingContext(err error) bool {
	var missingErr *MissingContextError
	return errors.As(err, &missingErr)
}

// IsBackend checks if an error is a BackendError
func IsBackend(err error) bool {
	var backendErr *BackendError
	return errors.As(err, &backendErr)
}

// IsTimeout checks if an error is a realtime or context timeout
func IsTimeout(err error) bool {
	return errors.Is(err, ErrRequestTimeout)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, holder string) error {
	return &ConflictError{Entity: entity, Holder: holder}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewBackendError creates a new BackendError
func NewBackendError(op string, status int, message string) error {
	return &BackendError{Op: op, Status: status, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
