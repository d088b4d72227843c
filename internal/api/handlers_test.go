package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homelandmeals/backend/internal/ai"
	"homelandmeals/backend/internal/config"
	"homelandmeals/backend/internal/domain"
	"homelandmeals/backend/internal/repository"
	"homelandmeals/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTracking returns fixed values; per-test fields override behavior.
type stubTracking struct {
	statsErr error
	stats    *domain.DailyStats
}

func (s *stubTracking) CreateProfile(_ context.Context, _ service.CreateProfileInput) (*domain.UserProfile, error) {
	return &domain.UserProfile{ID: "p1"}, nil
}

func (s *stubTracking) GetProfile(_ context.Context, id string) (*domain.UserProfile, error) {
	if id != "p1" {
		return nil, repository.ErrNotFound
	}
	return &domain.UserProfile{ID: "p1"}, nil
}

func (s *stubTracking) AnalyzeFood(_ context.Context, _, _ string, _ []byte, _ string) (*service.FoodAnalysisResult, error) {
	return &service.FoodAnalysisResult{Entry: &domain.FoodEntry{ID: "f1"}}, nil
}

func (s *stubTracking) ListFoodEntries(_ context.Context, _, _ string) ([]domain.FoodEntry, error) {
	return nil, nil
}

func (s *stubTracking) LogWorkout(_ context.Context, _ service.LogWorkoutInput) (*domain.WorkoutEntry, error) {
	return &domain.WorkoutEntry{ID: "w1"}, nil
}

func (s *stubTracking) DailyStats(_ context.Context, _, date string) (*domain.DailyStats, error) {
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	return s.stats, nil
}

type stubRecipes struct{}

func (stubRecipes) CreateRecipe(_ context.Context, _ service.CreateRecipeInput) (*domain.Recipe, error) {
	return &domain.Recipe{ID: "r1"}, nil
}
func (stubRecipes) ListRecipes(_ context.Context, _ service.ListRecipesInput) ([]domain.Recipe, error) {
	return nil, nil
}
func (stubRecipes) GetRecipe(_ context.Context, _ string) (*domain.Recipe, error) {
	return nil, repository.ErrNotFound
}
func (stubRecipes) ToggleFavorite(_ context.Context, _, _ string) (*domain.Recipe, error) {
	return nil, repository.ErrNotFound
}
func (stubRecipes) DeleteRecipe(_ context.Context, _, _ string) error {
	return repository.ErrNotFound
}

type stubSubscribers struct{}

func (stubSubscribers) Signup(_ context.Context, input service.SignupInput) (*domain.EmailSubscriber, error) {
	return &domain.EmailSubscriber{ID: "s1", Email: input.Email}, nil
}

type stubAI struct{}

func (stubAI) AnalyzeFoodImage(_ context.Context, _ string) (ai.Payload, error) { return nil, nil }
func (stubAI) ConvertRecipe(_ context.Context, _, _ string) (ai.Payload, error) { return nil, nil }
func (stubAI) SuggestRecipes(_ context.Context, _ ai.SuggestionRequest) (ai.Payload, error) {
	return ai.Payload{"suggestions": []any{}}, nil
}
func (stubAI) CookingGuidance(_ context.Context, _ ai.GuidanceRequest) (ai.Payload, error) {
	return ai.Payload{"guidance": "Use medium heat."}, nil
}
func (stubAI) AnalyzeRecipe(_ context.Context, _ string) (ai.Payload, error) {
	return ai.Payload{"health_score": 7.0}, nil
}

func newTestRouter(tracking service.TrackingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		tracking, stubRecipes{}, stubSubscribers{}, stubAI{})
	return router
}

func TestDailyStatsEndpoint(t *testing.T) {
	t.Run("malformed date is a 400 envelope", func(t *testing.T) {
		tracking := &stubTracking{statsErr: &service.ValidationError{Fields: map[string]string{"date": "invalid date format, use YYYY-MM-DD"}}}
		router := newTestRouter(tracking)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/daily-stats/user-1/not-a-date", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["error"])
		assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("success envelope wraps the stats", func(t *testing.T) {
		tracking := &stubTracking{stats: &domain.DailyStats{UserID: "user-1", Date: "2026-08-30", DailyTarget: 2000}}
		router := newTestRouter(tracking)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/daily-stats/user-1/2026-08-30", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		assert.Equal(t, 2000.0, data["daily_target"])
	})
}

func TestGetProfileEndpoint(t *testing.T) {
	router := newTestRouter(&stubTracking{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestEmailSignupEndpoint(t *testing.T) {
	router := newTestRouter(&stubTracking{})

	t.Run("bad body is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/email-signup", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid signup succeeds", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/email-signup",
			bytes.NewBufferString(`{"email": "priya@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestIngredientSubstitutionEndpoint(t *testing.T) {
	router := newTestRouter(&stubTracking{})

	t.Run("known ingredient", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ingredient-substitutions/Garam%20Masala", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		data := body["data"].(map[string]any)
		assert.Contains(t, data["substitute"], "allspice")
	})

	t.Run("unknown ingredient gets the default", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/ingredient-substitutions/truffle", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		data := body["data"].(map[string]any)
		assert.Equal(t, "Not found in database", data["substitute"])
	})
}

func TestCopilotChatEndpoint(t *testing.T) {
	router := newTestRouter(&stubTracking{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/copilot/chat",
		bytes.NewBufferString(`{"message": "how do I temper spices?"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	assert.Equal(t, "Use medium heat.", data["response"])
}
