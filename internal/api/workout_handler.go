package api

import (
	"net/http"
	"strconv"

	"homelandmeals/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the tracking service dependency for workout and
// stats routes.
type WorkoutHandler struct {
	tracking service.TrackingService
}

func NewWorkoutHandler(tracking service.TrackingService) *WorkoutHandler {
	return &WorkoutHandler{tracking: tracking}
}

// LogWorkout accepts form fields and derives calories burned from duration
// and intensity.
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	duration, err := strconv.Atoi(c.PostForm("duration_minutes"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "duration_minutes must be an integer", codeValidation)
		return
	}

	entry, err := h.tracking.LogWorkout(c.Request.Context(), service.LogWorkoutInput{
		UserID:          c.PostForm("user_id"),
		ActivityName:    c.PostForm("activity_name"),
		DurationMinutes: duration,
		Intensity:       c.PostForm("intensity"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Workout logged successfully", entry)
}

func (h *WorkoutHandler) GetDailyStats(c *gin.Context) {
	stats, err := h.tracking.DailyStats(c.Request.Context(), c.Param("user_id"), c.Param("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Daily stats retrieved", stats)
}
