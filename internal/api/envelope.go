package api

import (
	"errors"
	"net/http"
	"time"

	"homelandmeals/backend/internal/ai"
	"homelandmeals/backend/internal/repository"
	"homelandmeals/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the error envelope.
const (
	codeValidation    = "VALIDATION_ERROR"
	codeNotFound      = "NOT_FOUND"
	codeConfiguration = "CONFIGURATION_ERROR"
	codePersistence   = "PERSISTENCE_ERROR"
)

// respondSuccess writes the standard success envelope.
func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"success":   true,
		"message":   message,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// respondError writes the standard error envelope. errorCode may be empty.
func respondError(c *gin.Context, status int, message, errorCode string) {
	body := gin.H{
		"error":     true,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if errorCode != "" {
		body["error_code"] = errorCode
	}
	c.AbortWithStatusJSON(status, body)
}

// respondServiceError maps service-layer errors onto the error envelope.
// Ownership mismatches already arrive as repository.ErrNotFound, so they
// render as 404 like any other miss.
func respondServiceError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondError(c, http.StatusBadRequest, vErr.Error(), codeValidation)
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, "Resource not found", codeNotFound)
	case errors.Is(err, ai.ErrAPIKeyMissing):
		respondError(c, http.StatusInternalServerError, "AI service is not configured", codeConfiguration)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", codePersistence)
	}
}
