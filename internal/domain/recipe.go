package domain

import "time"

// DifficultyLevel rates how demanding a recipe is to cook.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// NutritionalInfo is the per-serving macro summary attached to a recipe.
type NutritionalInfo struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
}

// Substitution maps a traditional ingredient to a Western grocery store
// alternative.
type Substitution struct {
	Original   string `bson:"original" json:"original"`
	Substitute string `bson:"substitute" json:"substitute"`
	Notes      string `bson:"notes" json:"notes"`
}

// Recipe stores a user's traditional recipe together with its AI-derived
// quick version. All AI-derived fields are set once at creation; only
// IsFavorite is toggled afterwards.
type Recipe struct {
	ID                   string          `bson:"id" json:"id"`
	UserID               string          `bson:"user_id" json:"user_id"`
	Name                 string          `bson:"name" json:"name"`
	Description          string          `bson:"description" json:"description"`
	CuisineType          string          `bson:"cuisine_type" json:"cuisine_type"`
	Category             string          `bson:"category" json:"category"`
	OriginalRecipe       string          `bson:"original_recipe" json:"original_recipe"`
	QuickVersion         string          `bson:"quick_version" json:"quick_version"`
	PrepTimeMinutes      int             `bson:"prep_time_minutes" json:"prep_time_minutes"`
	CookTimeMinutes      int             `bson:"cook_time_minutes" json:"cook_time_minutes"`
	TotalTimeMinutes     int             `bson:"total_time_minutes" json:"total_time_minutes"`
	DifficultyLevel      DifficultyLevel `bson:"difficulty_level" json:"difficulty_level"`
	Servings             int             `bson:"servings" json:"servings"`
	Ingredients          []string        `bson:"ingredients" json:"ingredients"`
	Instructions         []string        `bson:"instructions" json:"instructions"`
	QuickInstructions    []string        `bson:"quick_instructions" json:"quick_instructions"`
	NutritionalInfo      NutritionalInfo `bson:"nutritional_info" json:"nutritional_info"`
	Tags                 []string        `bson:"tags" json:"tags"`
	WesternSubstitutions []Substitution  `bson:"western_substitutions" json:"western_substitutions"`
	CulturalNotes        string          `bson:"cultural_notes" json:"cultural_notes"`
	TimeSavedMinutes     int             `bson:"time_saved_minutes" json:"time_saved_minutes"`
	IsFavorite           bool            `bson:"is_favorite" json:"is_favorite"`
	CreatedAt            time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time       `bson:"updated_at" json:"updated_at"`
}
