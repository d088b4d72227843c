package ai

// Fallback payloads are centralized here, one per task kind, so that the
// failure path always carries the same key schema as a successful parse.
// Constructors return fresh maps because callers may mutate the result.

// Required key sets per task kind, checked after a successful parse.
var (
	foodAnalysisRequiredKeys = []string{
		"meal_name", "ingredients", "calories_per_serving", "serving_size",
		"protein_g", "carbs_g", "fat_g", "fiber_g", "sugar_g", "sodium_mg",
		"analysis_confidence",
	}
	recipeConversionRequiredKeys = []string{
		"quick_version", "prep_time_minutes", "cook_time_minutes",
		"total_time_minutes", "time_saved_minutes", "difficulty_level",
		"ingredients", "instructions", "quick_instructions",
		"nutritional_info",
	}
	recipeSuggestionsRequiredKeys = []string{"suggestions"}
	recipeAnalysisRequiredKeys    = []string{
		"calories_per_serving", "protein_g", "carbs_g", "fat_g",
		"health_score", "health_notes",
	}
)

// FoodAnalysisFallback is substituted when food-image analysis fails.
func FoodAnalysisFallback() Payload {
	return Payload{
		"meal_name":            "Unknown Dish",
		"ingredients":          []any{"Unable to identify"},
		"calories_per_serving": 350.0,
		"serving_size":         "1 portion",
		"protein_g":            10.0,
		"carbs_g":              45.0,
		"fat_g":                12.0,
		"fiber_g":              5.0,
		"sugar_g":              8.0,
		"sodium_mg":            400.0,
		"analysis_confidence":  0.3,
		"cultural_context":     "Analysis temporarily unavailable",
		"ingredient_substitutions": []any{},
		"quick_recipe_tips":    "Please try uploading a clearer image for better analysis",
	}
}

// RecipeConversionFallback is substituted when recipe conversion fails. The
// recipe can still be saved with these placeholder quick-version fields.
func RecipeConversionFallback() Payload {
	return Payload{
		"quick_version":      "Quick version conversion temporarily unavailable, but recipe can still be saved",
		"prep_time_minutes":  20.0,
		"cook_time_minutes":  30.0,
		"total_time_minutes": 50.0,
		"time_saved_minutes": 30.0,
		"difficulty_level":   "medium",
		"ingredients":        []any{"Conversion failed - please try again"},
		"instructions":       []any{"Recipe conversion temporarily unavailable"},
		"quick_instructions": []any{"Please retry recipe conversion"},
		"western_substitutions": []any{},
		"nutritional_info": map[string]any{
			"calories": 300.0, "protein": 10.0, "carbs": 40.0, "fat": 8.0,
		},
		"cultural_notes": "Recipe conversion temporarily unavailable",
		"tags":           []any{"needs-retry"},
		"tips":           "Please try converting this recipe again",
	}
}

// RecipeSuggestionsFallback is substituted when suggestion generation fails.
func RecipeSuggestionsFallback() Payload {
	return Payload{
		"suggestions": []any{},
		"tips":        "Please try with different ingredients or preferences.",
		"error":       true,
	}
}

// RecipeAnalysisFallback is substituted when recipe nutrition analysis fails.
func RecipeAnalysisFallback() Payload {
	return Payload{
		"calories_per_serving":    350.0,
		"protein_g":               10.0,
		"carbs_g":                 45.0,
		"fat_g":                   12.0,
		"fiber_g":                 5.0,
		"sugar_g":                 8.0,
		"sodium_mg":               400.0,
		"health_score":            5.0,
		"health_notes":            "Analysis temporarily unavailable",
		"improvement_suggestions": []any{},
		"analysis_confidence":     0.3,
	}
}
