package domain

import "math"

// ActivityMultipliers are the maintenance-calorie factors applied on top of
// BMR per activity level.
var ActivityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

// GoalAdjustments shift the daily target by roughly one pound per week.
var GoalAdjustments = map[Goal]float64{
	GoalLoseWeight:     -500,
	GoalMaintainWeight: 0,
	GoalGainWeight:     500,
}

// BMR calculates Basal Metabolic Rate using the Mifflin-St Jeor equation.
func BMR(gender Gender, age int, heightCm, weightKg float64) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return round2(bmr)
}

// DailyCalorieTarget derives a daily calorie target from body metrics,
// activity level, and weight goal. An unrecognized activity level falls back
// to the sedentary multiplier.
func DailyCalorieTarget(gender Gender, age int, heightCm, weightKg float64, activity ActivityLevel, goal Goal) float64 {
	multiplier, ok := ActivityMultipliers[activity]
	if !ok {
		multiplier = 1.2
	}
	maintenance := BMR(gender, age, heightCm, weightKg) * multiplier
	return round2(maintenance + GoalAdjustments[goal])
}

// Intensity buckets a workout's effort for the calorie estimate.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// IntensityMultipliers are calories burned per minute of activity.
var IntensityMultipliers = map[Intensity]float64{
	IntensityLow:      3,
	IntensityModerate: 5,
	IntensityHigh:     8,
}

// CaloriesBurned estimates workout calories from duration and intensity.
// Unknown intensities use the moderate multiplier.
func CaloriesBurned(durationMinutes int, intensity Intensity) float64 {
	multiplier, ok := IntensityMultipliers[intensity]
	if !ok {
		multiplier = IntensityMultipliers[IntensityModerate]
	}
	return float64(durationMinutes) * multiplier
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
