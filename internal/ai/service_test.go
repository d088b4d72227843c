package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChat records the last call and replies with a canned response.
type fakeChat struct {
	response   string
	err        error
	systemSent string
	userSent   string
	imagesSent []string
}

func (f *fakeChat) Send(_ context.Context, systemPrompt, userText string, images ...string) (string, error) {
	f.systemSent = systemPrompt
	f.userSent = userText
	f.imagesSent = images
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestAnalyzeFoodImage(t *testing.T) {
	t.Run("parses a successful response", func(t *testing.T) {
		chat := &fakeChat{response: `{
			"meal_name": "Chicken Biryani", "ingredients": ["rice", "chicken"],
			"calories_per_serving": 450, "serving_size": "1 plate",
			"protein_g": 25, "carbs_g": 60, "fat_g": 14, "fiber_g": 4,
			"sugar_g": 3, "sodium_mg": 520, "analysis_confidence": 0.85
		}`}
		svc := NewService(chat, nil)

		payload, err := svc.AnalyzeFoodImage(context.Background(), "aW1hZ2U=")
		require.NoError(t, err)
		assert.Equal(t, "Chicken Biryani", payload["meal_name"])
		assert.Equal(t, []string{"aW1hZ2U="}, chat.imagesSent)
	})

	t.Run("generation failure is absorbed into the fallback", func(t *testing.T) {
		chat := &fakeChat{err: ErrGenerationFailed}
		svc := NewService(chat, nil)

		payload, err := svc.AnalyzeFoodImage(context.Background(), "aW1hZ2U=")
		require.NoError(t, err)
		assert.Equal(t, "Unknown Dish", payload["meal_name"])
		assert.Equal(t, 0.3, payload["analysis_confidence"])
	})

	t.Run("missing api key propagates", func(t *testing.T) {
		chat := &fakeChat{err: ErrAPIKeyMissing}
		svc := NewService(chat, nil)

		_, err := svc.AnalyzeFoodImage(context.Background(), "aW1hZ2U=")
		assert.ErrorIs(t, err, ErrAPIKeyMissing)
	})

	t.Run("incomplete response falls back", func(t *testing.T) {
		chat := &fakeChat{response: `{"meal_name": "Biryani"}`}
		svc := NewService(chat, nil)

		payload, err := svc.AnalyzeFoodImage(context.Background(), "aW1hZ2U=")
		require.NoError(t, err)
		assert.Equal(t, "Unknown Dish", payload["meal_name"])
	})
}

func TestConvertRecipe(t *testing.T) {
	t.Run("empty cuisine defaults", func(t *testing.T) {
		chat := &fakeChat{err: ErrGenerationFailed}
		svc := NewService(chat, nil)

		_, err := svc.ConvertRecipe(context.Background(), "some recipe", "")
		require.NoError(t, err)
		assert.Contains(t, chat.systemSent, DefaultCuisine)
	})

	t.Run("long recipe text is truncated", func(t *testing.T) {
		chat := &fakeChat{err: ErrGenerationFailed}
		svc := NewService(chat, nil)

		_, err := svc.ConvertRecipe(context.Background(), strings.Repeat("x", 6000), "Punjabi")
		require.NoError(t, err)
		assert.Contains(t, chat.userSent, strings.Repeat("x", 5000)+"...")
		assert.NotContains(t, chat.userSent, strings.Repeat("x", 5001))
	})

	t.Run("failure yields saveable fallback", func(t *testing.T) {
		chat := &fakeChat{err: errors.New("network down")}
		svc := NewService(chat, nil)

		payload, err := svc.ConvertRecipe(context.Background(), "recipe", "Punjabi")
		require.NoError(t, err)
		assert.Contains(t, payload["quick_version"], "temporarily unavailable")
		assert.Equal(t, "medium", payload["difficulty_level"])
	})
}

func TestSuggestRecipes(t *testing.T) {
	t.Run("builds the constraint text", func(t *testing.T) {
		chat := &fakeChat{response: `{"suggestions": []}`}
		svc := NewService(chat, nil)

		_, err := svc.SuggestRecipes(context.Background(), SuggestionRequest{
			AvailableIngredients: []string{"rice", "lentils"},
			CuisinePreference:    "South Indian",
			DietaryRestrictions:  []string{"vegetarian"},
			CookingTimeLimit:     30,
		})
		require.NoError(t, err)
		assert.Contains(t, chat.userSent, "rice, lentils")
		assert.Contains(t, chat.userSent, "South Indian")
		assert.Contains(t, chat.userSent, "vegetarian")
		assert.Contains(t, chat.userSent, "30 minutes")
	})

	t.Run("failure yields empty suggestions", func(t *testing.T) {
		chat := &fakeChat{err: ErrGenerationFailed}
		svc := NewService(chat, nil)

		payload, err := svc.SuggestRecipes(context.Background(), SuggestionRequest{
			AvailableIngredients: []string{"rice"},
		})
		require.NoError(t, err)
		assert.Equal(t, []any{}, payload["suggestions"])
		assert.Equal(t, true, payload["error"])
	})
}

func TestCookingGuidance(t *testing.T) {
	t.Run("wraps raw text as guidance", func(t *testing.T) {
		chat := &fakeChat{response: "Heat the oil until it shimmers."}
		svc := NewService(chat, nil)

		payload, err := svc.CookingGuidance(context.Background(), GuidanceRequest{
			RecipeName: "Aloo Gobi",
			StepNumber: 2,
			Question:   "how hot should the oil be?",
		})
		require.NoError(t, err)
		assert.Equal(t, "Heat the oil until it shimmers.", payload["guidance"])
		assert.Equal(t, "Aloo Gobi", payload["recipe_name"])
		assert.Equal(t, 2, payload["step_number"])
	})

	t.Run("failure yields apologetic text, not an error", func(t *testing.T) {
		chat := &fakeChat{err: ErrGenerationFailed}
		svc := NewService(chat, nil)

		payload, err := svc.CookingGuidance(context.Background(), GuidanceRequest{RecipeName: "Aloo Gobi"})
		require.NoError(t, err)
		assert.Contains(t, payload["guidance"], "unable to provide cooking guidance")
		assert.Equal(t, true, payload["error"])
	})

	t.Run("missing api key propagates", func(t *testing.T) {
		chat := &fakeChat{err: ErrAPIKeyMissing}
		svc := NewService(chat, nil)

		_, err := svc.CookingGuidance(context.Background(), GuidanceRequest{RecipeName: "Aloo Gobi"})
		assert.ErrorIs(t, err, ErrAPIKeyMissing)
	})
}

func TestAnalyzeRecipe(t *testing.T) {
	t.Run("parses health score", func(t *testing.T) {
		chat := &fakeChat{response: `{
			"calories_per_serving": 420, "protein_g": 18, "carbs_g": 55,
			"fat_g": 12, "health_score": 7, "health_notes": "Balanced meal"
		}`}
		svc := NewService(chat, nil)

		payload, err := svc.AnalyzeRecipe(context.Background(), "dal recipe text")
		require.NoError(t, err)
		assert.Equal(t, 7.0, payload["health_score"])
	})

	t.Run("failure yields neutral fallback", func(t *testing.T) {
		chat := &fakeChat{err: ErrGenerationFailed}
		svc := NewService(chat, nil)

		payload, err := svc.AnalyzeRecipe(context.Background(), "dal recipe text")
		require.NoError(t, err)
		assert.Equal(t, 5.0, payload["health_score"])
	})
}
