package domain

import "time"

// MealType classifies when a food entry was eaten.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// FoodEntry is one analyzed food photo. Entries are created once per
// analysis call and are immutable afterwards.
type FoodEntry struct {
	ID                 string    `bson:"id" json:"id"`
	UserID             string    `bson:"user_id" json:"user_id"`
	MealName           string    `bson:"meal_name" json:"meal_name"`
	Ingredients        []string  `bson:"ingredients" json:"ingredients"`
	CaloriesPerServing float64   `bson:"calories_per_serving" json:"calories_per_serving"`
	ServingSize        string    `bson:"serving_size" json:"serving_size"`
	ProteinG           float64   `bson:"protein_g" json:"protein_g"`
	CarbsG             float64   `bson:"carbs_g" json:"carbs_g"`
	FatG               float64   `bson:"fat_g" json:"fat_g"`
	FiberG             float64   `bson:"fiber_g" json:"fiber_g"`
	SugarG             float64   `bson:"sugar_g" json:"sugar_g"`
	SodiumMg           float64   `bson:"sodium_mg" json:"sodium_mg"`
	AnalysisConfidence float64   `bson:"analysis_confidence" json:"analysis_confidence"`
	ImageBase64        string    `bson:"image_base64,omitempty" json:"image_base64,omitempty"`
	MealType           MealType  `bson:"meal_type" json:"meal_type"`
	DateConsumed       string    `bson:"date_consumed" json:"date_consumed"` // YYYY-MM-DD
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}
