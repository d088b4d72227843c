package api

import (
	"net/http"

	"homelandmeals/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the tracking service dependency for profile routes.
type ProfileHandler struct {
	tracking service.TrackingService
}

func NewProfileHandler(tracking service.TrackingService) *ProfileHandler {
	return &ProfileHandler{tracking: tracking}
}

// CreateProfileRequest defines the expected JSON for creating a profile.
type CreateProfileRequest struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	HeightCm      float64  `json:"height_cm"`
	WeightKg      float64  `json:"weight_kg"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`
	GoalWeightKg  *float64 `json:"goal_weight_kg"`
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), codeValidation)
		return
	}

	profile, err := h.tracking.CreateProfile(c.Request.Context(), service.CreateProfileInput{
		Name:          req.Name,
		Age:           req.Age,
		Gender:        req.Gender,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
		GoalWeightKg:  req.GoalWeightKg,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Profile created successfully", profile)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.tracking.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Profile retrieved", profile)
}
