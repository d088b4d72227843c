package domain

import "time"

// Gender values accepted for BMR calculation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel maps to a maintenance-calorie multiplier.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// Goal adjusts the daily calorie target up or down.
type Goal string

const (
	GoalLoseWeight     Goal = "lose_weight"
	GoalMaintainWeight Goal = "maintain_weight"
	GoalGainWeight     Goal = "gain_weight"
)

// UserProfile holds a user's body metrics and their derived daily calorie
// target. The target is computed once at creation and is not recomputed on
// later edits.
type UserProfile struct {
	ID                 string        `bson:"id" json:"id"`
	Name               string        `bson:"name" json:"name"`
	Age                int           `bson:"age" json:"age"`
	Gender             Gender        `bson:"gender" json:"gender"`
	HeightCm           float64       `bson:"height_cm" json:"height_cm"`
	WeightKg           float64       `bson:"weight_kg" json:"weight_kg"`
	ActivityLevel      ActivityLevel `bson:"activity_level" json:"activity_level"`
	Goal               Goal          `bson:"goal" json:"goal"`
	GoalWeightKg       *float64      `bson:"goal_weight_kg,omitempty" json:"goal_weight_kg,omitempty"`
	DailyCalorieTarget float64       `bson:"daily_calorie_target" json:"daily_calorie_target"`
	CreatedAt          time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `bson:"updated_at" json:"updated_at"`
}
