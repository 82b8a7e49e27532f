package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "scene"}
		assert.Equal(t, "scene not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "scene"}
		err2 := &NotFoundError{Entity: "scene"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrSceneNotFound, ErrSourceNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrEpisodeNotFound))
		assert.False(t, IsNotFound(ErrSwitchInProgress))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with holder", func(t *testing.T) {
		err := &ConflictError{Entity: "camera type Kamera 1", Holder: "Cam2"}
		assert.Equal(t, "camera type Kamera 1 is already assigned to Cam2", err.Error())
	})

	t.Run("Error message without holder", func(t *testing.T) {
		err := &ConflictError{Entity: "person"}
		assert.Equal(t, "person is already assigned", err.Error())
	})

	t.Run("IsConflict through wrapping", func(t *testing.T) {
		err := fmt.Errorf("assign: %w", NewConflictError("person", "Mic3"))
		assert.True(t, IsConflict(err))
		assert.Equal(t, "Mic3", ConflictHolder(err))
	})

	t.Run("ConflictHolder on other errors", func(t *testing.T) {
		assert.Equal(t, "", ConflictHolder(ErrNoEpisode))
		assert.False(t, IsConflict(ErrNoEpisode))
	})
}

func TestMissingContextError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "no episode selected", ErrNoEpisode.Error())
		assert.Equal(t, "no source selected", ErrNoSourceSelected.Error())
	})

	t.Run("errors.Is distinguishes what is missing", func(t *testing.T) {
		wrapped := fmt.Errorf("open workflow: %w", ErrNoEpisode)
		assert.True(t, errors.Is(wrapped, ErrNoEpisode))
		assert.False(t, errors.Is(wrapped, ErrNoSourceSelected))
		assert.True(t, IsMissingContext(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "position", Message: "out of range"}
		assert.Equal(t, "validation error: position - out of range", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("kind", "invalid")))
		assert.False(t, IsValidation(ErrSceneNotFound))
	})
}

func TestBackendError(t *testing.T) {
	t.Run("Error message with status", func(t *testing.T) {
		err := NewBackendError("assign-media", 500, "boom")
		assert.Equal(t, "assign-media failed: status=500 boom", err.Error())
		assert.True(t, IsBackend(err))
	})

	t.Run("Error message without status", func(t *testing.T) {
		err := NewBackendError("toggle_source", 0, "Source not found")
		assert.Equal(t, "toggle_source failed: Source not found", err.Error())
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsTimeout", func(t *testing.T) {
		assert.True(t, IsTimeout(fmt.Errorf("toggle_source: %w", ErrRequestTimeout)))
		assert.False(t, IsTimeout(ErrNotConnected))
	})

	t.Run("IsConfiguration", func(t *testing.T) {
		assert.True(t, IsConfiguration(NewConfigurationError("missing url")))
		assert.False(t, IsConfiguration(ErrNoEpisode))
	})
}
