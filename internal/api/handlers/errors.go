package handlers

import (
	"errors"
	"net/http"

	apperrors "studio-console/internal/errors"
	"studio-console/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// ConflictResponse is returned when an entity is held by another source
type ConflictResponse struct {
	Error  string `json:"error" example:"camera:2 is already assigned to Cam1"`
	Holder string `json:"holder,omitempty" example:"Cam1"`
}

// respondError maps service errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ConflictResponse{Error: err.Error(), Holder: apperrors.ConflictHolder(err)})
	case errors.Is(err, apperrors.ErrSwitchInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsMissingContext(err):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrUnknownKind),
		errors.Is(err, apperrors.ErrNotAudioSource):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsTimeout(err):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotConnected), errors.Is(err, apperrors.ErrConnClosed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case apperrors.IsBackend(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).Errorf("Unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
