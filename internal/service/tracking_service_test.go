package service

import (
	"context"
	"testing"
	"time"

	"homelandmeals/backend/internal/ai"
	"homelandmeals/backend/internal/domain"
	"homelandmeals/backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- in-memory fakes ---

type fakeProfileRepo struct {
	profiles map[string]*domain.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.UserProfile{}}
}

func (f *fakeProfileRepo) Create(_ context.Context, p *domain.UserProfile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.UserProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

type fakeFoodRepo struct {
	entries []domain.FoodEntry
	totals  repository.FoodTotals
}

func (f *fakeFoodRepo) Create(_ context.Context, e *domain.FoodEntry) error {
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeFoodRepo) ListByUser(_ context.Context, userID, date string, limit int64) ([]domain.FoodEntry, error) {
	var out []domain.FoodEntry
	for _, e := range f.entries {
		if e.UserID == userID && (date == "" || e.DateConsumed == date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFoodRepo) TotalsByDate(_ context.Context, _, _ string) (repository.FoodTotals, error) {
	return f.totals, nil
}

type fakeWorkoutRepo struct {
	entries []domain.WorkoutEntry
	totals  repository.WorkoutTotals
}

func (f *fakeWorkoutRepo) Create(_ context.Context, e *domain.WorkoutEntry) error {
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeWorkoutRepo) TotalsByDate(_ context.Context, _, _ string) (repository.WorkoutTotals, error) {
	return f.totals, nil
}

// fakeAI returns canned payloads for each task.
type fakeAI struct {
	foodPayload       ai.Payload
	conversionPayload ai.Payload
	err               error
}

func (f *fakeAI) AnalyzeFoodImage(_ context.Context, _ string) (ai.Payload, error) {
	return f.foodPayload, f.err
}

func (f *fakeAI) ConvertRecipe(_ context.Context, _, _ string) (ai.Payload, error) {
	return f.conversionPayload, f.err
}

func (f *fakeAI) SuggestRecipes(_ context.Context, _ ai.SuggestionRequest) (ai.Payload, error) {
	return ai.Payload{"suggestions": []any{}}, f.err
}

func (f *fakeAI) CookingGuidance(_ context.Context, _ ai.GuidanceRequest) (ai.Payload, error) {
	return ai.Payload{"guidance": "ok"}, f.err
}

func (f *fakeAI) AnalyzeRecipe(_ context.Context, _ string) (ai.Payload, error) {
	return ai.Payload{"health_score": 5.0}, f.err
}

func newTrackingServiceForTest(profiles *fakeProfileRepo, food *fakeFoodRepo, workouts *fakeWorkoutRepo, aiSvc ai.Service) TrackingService {
	if profiles == nil {
		profiles = newFakeProfileRepo()
	}
	if food == nil {
		food = &fakeFoodRepo{}
	}
	if workouts == nil {
		workouts = &fakeWorkoutRepo{}
	}
	if aiSvc == nil {
		aiSvc = &fakeAI{}
	}
	return NewTrackingService(profiles, food, workouts, aiSvc, nil, nil)
}

// --- tests ---

func validProfileInput() CreateProfileInput {
	return CreateProfileInput{
		Name:          "Priya",
		Age:           28,
		Gender:        "female",
		HeightCm:      165,
		WeightKg:      62,
		ActivityLevel: "moderately_active",
		Goal:          "lose_weight",
	}
}

func TestCreateProfile(t *testing.T) {
	t.Run("computes the calorie target on creation", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, nil)

		profile, err := svc.CreateProfile(context.Background(), validProfileInput())
		require.NoError(t, err)
		assert.NotEmpty(t, profile.ID)
		assert.InDelta(t, 1592.89, profile.DailyCalorieTarget, 0.001)
	})

	t.Run("rejects out-of-range fields and names them", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, nil)

		input := validProfileInput()
		input.Age = 12
		input.HeightCm = 90
		input.Gender = "other"

		_, err := svc.CreateProfile(context.Background(), input)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "age")
		assert.Contains(t, vErr.Fields, "height_cm")
		assert.Contains(t, vErr.Fields, "gender")
		assert.NotContains(t, vErr.Fields, "weight_kg")
	})

	t.Run("rejects out-of-range goal weight", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, nil)

		input := validProfileInput()
		goalWeight := 20.0
		input.GoalWeightKg = &goalWeight

		_, err := svc.CreateProfile(context.Background(), input)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "goal_weight_kg")
	})
}

func TestAnalyzeFood(t *testing.T) {
	foodPayload := ai.Payload{
		"meal_name":                "Chicken Biryani",
		"ingredients":              []any{"rice", "chicken"},
		"calories_per_serving":     450.0,
		"serving_size":             "1 plate",
		"protein_g":                25.0,
		"carbs_g":                  60.0,
		"fat_g":                    14.0,
		"fiber_g":                  4.0,
		"sugar_g":                  3.0,
		"sodium_mg":                520.0,
		"analysis_confidence":      0.85,
		"cultural_context":         "Classic South Asian rice dish",
		"ingredient_substitutions": []any{},
		"quick_recipe_tips":        "Use pre-cooked rice",
	}

	t.Run("persists the entry for today", func(t *testing.T) {
		food := &fakeFoodRepo{}
		svc := newTrackingServiceForTest(nil, food, nil, &fakeAI{foodPayload: foodPayload})

		result, err := svc.AnalyzeFood(context.Background(), "user-1", "dinner", []byte("img"), "image/jpeg")
		require.NoError(t, err)
		require.Len(t, food.entries, 1)
		assert.Equal(t, "Chicken Biryani", result.Entry.MealName)
		assert.Equal(t, domain.MealDinner, result.Entry.MealType)
		assert.Equal(t, time.Now().UTC().Format("2006-01-02"), result.Entry.DateConsumed)
		assert.Equal(t, "Classic South Asian rice dish", result.CulturalContext)
	})

	t.Run("empty meal type defaults to lunch", func(t *testing.T) {
		food := &fakeFoodRepo{}
		svc := newTrackingServiceForTest(nil, food, nil, &fakeAI{foodPayload: foodPayload})

		result, err := svc.AnalyzeFood(context.Background(), "user-1", "", []byte("img"), "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, domain.MealLunch, result.Entry.MealType)
	})

	t.Run("unknown meal type is rejected", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, &fakeAI{foodPayload: foodPayload})

		_, err := svc.AnalyzeFood(context.Background(), "user-1", "brunch", []byte("img"), "image/jpeg")
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("missing api key propagates", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, &fakeAI{err: ai.ErrAPIKeyMissing})

		_, err := svc.AnalyzeFood(context.Background(), "user-1", "lunch", []byte("img"), "image/jpeg")
		assert.ErrorIs(t, err, ai.ErrAPIKeyMissing)
	})
}

func TestListFoodEntries(t *testing.T) {
	t.Run("rejects malformed dates", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, nil)

		for _, bad := range []string{"2026-1-05", "05-01-2026", "yesterday", "2026-13-01"} {
			_, err := svc.ListFoodEntries(context.Background(), "user-1", bad)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr, "date %q should be rejected", bad)
		}
	})

	t.Run("empty filter lists all", func(t *testing.T) {
		food := &fakeFoodRepo{entries: []domain.FoodEntry{
			{UserID: "user-1", DateConsumed: "2026-08-29"},
			{UserID: "user-1", DateConsumed: "2026-08-30"},
			{UserID: "user-2", DateConsumed: "2026-08-30"},
		}}
		svc := newTrackingServiceForTest(nil, food, nil, nil)

		entries, err := svc.ListFoodEntries(context.Background(), "user-1", "")
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestLogWorkout(t *testing.T) {
	t.Run("derives calories from duration and intensity", func(t *testing.T) {
		workouts := &fakeWorkoutRepo{}
		svc := newTrackingServiceForTest(nil, nil, workouts, nil)

		entry, err := svc.LogWorkout(context.Background(), LogWorkoutInput{
			UserID:          "user-1",
			ActivityName:    "running",
			DurationMinutes: 30,
			Intensity:       "high",
		})
		require.NoError(t, err)
		assert.Equal(t, 240.0, entry.CaloriesBurned)
		require.Len(t, workouts.entries, 1)
	})

	t.Run("empty intensity defaults to moderate", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, nil)

		entry, err := svc.LogWorkout(context.Background(), LogWorkoutInput{
			UserID:          "user-1",
			ActivityName:    "walking",
			DurationMinutes: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.IntensityModerate, entry.Intensity)
		assert.Equal(t, 100.0, entry.CaloriesBurned)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, nil)

		_, err := svc.LogWorkout(context.Background(), LogWorkoutInput{DurationMinutes: -5})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "user_id")
		assert.Contains(t, vErr.Fields, "activity_name")
		assert.Contains(t, vErr.Fields, "duration_minutes")
	})
}

func TestDailyStats(t *testing.T) {
	t.Run("combines totals with the profile target", func(t *testing.T) {
		profiles := newFakeProfileRepo()
		profiles.profiles["user-1"] = &domain.UserProfile{ID: "user-1", DailyCalorieTarget: 1800}
		food := &fakeFoodRepo{totals: repository.FoodTotals{
			Calories: 1500, Protein: 70, Carbs: 180, Fat: 40, Fiber: 20, Meals: 3,
		}}
		workouts := &fakeWorkoutRepo{totals: repository.WorkoutTotals{CaloriesBurned: 300, Workouts: 1}}
		svc := newTrackingServiceForTest(profiles, food, workouts, nil)

		stats, err := svc.DailyStats(context.Background(), "user-1", "2026-08-30")
		require.NoError(t, err)
		assert.Equal(t, 1200.0, stats.NetCalories)
		assert.Equal(t, 1800.0, stats.DailyTarget)
		assert.Equal(t, 300.0, stats.RemainingCalories)
		assert.Equal(t, 3, stats.MealsLogged)
		assert.Equal(t, 1, stats.WorkoutsLogged)
	})

	t.Run("missing profile uses the 2000 kcal default", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, nil)

		stats, err := svc.DailyStats(context.Background(), "nobody", "2026-08-30")
		require.NoError(t, err)
		assert.Equal(t, 2000.0, stats.DailyTarget)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		svc := newTrackingServiceForTest(nil, nil, nil, nil)

		_, err := svc.DailyStats(context.Background(), "user-1", "30/08/2026")
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}
