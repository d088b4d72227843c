package api

import (
	"net/http"

	"homelandmeals/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubscriberHandler holds the subscriber service dependency.
type SubscriberHandler struct {
	subscribers service.SubscriberService
}

func NewSubscriberHandler(subscribers service.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscribers: subscribers}
}

// EmailSignupRequest defines the expected JSON for an email signup.
type EmailSignupRequest struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	HealthUpdates bool   `json:"health_updates"`
	Source        string `json:"source"`
}

func (h *SubscriberHandler) EmailSignup(c *gin.Context) {
	var req EmailSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), codeValidation)
		return
	}

	subscriber, err := h.subscribers.Signup(c.Request.Context(), service.SignupInput{
		Email:         req.Email,
		Name:          req.Name,
		HealthUpdates: req.HealthUpdates,
		Source:        req.Source,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Successfully subscribed", subscriber)
}
