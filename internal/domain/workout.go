package domain

import "time"

// WorkoutEntry is a single logged activity. CaloriesBurned is derived from
// duration and intensity at creation time.
type WorkoutEntry struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	ActivityName    string    `bson:"activity_name" json:"activity_name"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	CaloriesBurned  float64   `bson:"calories_burned" json:"calories_burned"`
	Intensity       Intensity `bson:"intensity" json:"intensity"`
	DateLogged      string    `bson:"date_logged" json:"date_logged"` // YYYY-MM-DD
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
