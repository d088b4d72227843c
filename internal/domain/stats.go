package domain

// DailyStats is the aggregated nutrition and fitness picture for one user
// and one day. It is computed on read by summing matching food and workout
// entries; it is never stored as a running total.
type DailyStats struct {
	UserID            string  `json:"user_id"`
	Date              string  `json:"date"`
	CaloriesConsumed  float64 `json:"calories_consumed"`
	CaloriesBurned    float64 `json:"calories_burned"`
	NetCalories       float64 `json:"net_calories"`
	DailyTarget       float64 `json:"daily_target"`
	RemainingCalories float64 `json:"remaining_calories"`
	ProteinG          float64 `json:"protein_g"`
	CarbsG            float64 `json:"carbs_g"`
	FatG              float64 `json:"fat_g"`
	FiberG            float64 `json:"fiber_g"`
	MealsLogged       int     `json:"meals_logged"`
	WorkoutsLogged    int     `json:"workouts_logged"`
}
