package repository

import (
	"context"

	"homelandmeals/backend/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository defines the interface for interacting with user profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
}

// FoodTotals are the aggregated food sums for one user and day.
type FoodTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Meals    int
}

// FoodEntryRepository defines the interface for interacting with food entries.
type FoodEntryRepository interface {
	Create(ctx context.Context, entry *domain.FoodEntry) error
	// ListByUser returns entries newest first. An empty date matches all days.
	ListByUser(ctx context.Context, userID, date string, limit int64) ([]domain.FoodEntry, error)
	TotalsByDate(ctx context.Context, userID, date string) (FoodTotals, error)
}

// WorkoutTotals are the aggregated workout sums for one user and day.
type WorkoutTotals struct {
	CaloriesBurned float64
	Workouts       int
}

// WorkoutRepository defines the interface for interacting with workout entries.
type WorkoutRepository interface {
	Create(ctx context.Context, entry *domain.WorkoutEntry) error
	TotalsByDate(ctx context.Context, userID, date string) (WorkoutTotals, error)
}

// RecipeFilter narrows recipe listings. Zero-value fields are ignored.
type RecipeFilter struct {
	UserID      string
	Category    string
	CuisineType string
	Limit       int64
}

// RecipeRepository defines the interface for interacting with recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	// GetByIDAndOwner returns ErrNotFound on an ownership mismatch as well as
	// on a genuinely absent id, so callers cannot distinguish the two.
	GetByIDAndOwner(ctx context.Context, id, userID string) (*domain.Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]domain.Recipe, error)
	SetFavorite(ctx context.Context, id string, favorite bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SubscriberRepository defines the interface for interacting with email
// subscribers.
type SubscriberRepository interface {
	// Upsert inserts a subscriber keyed by lower-cased email, or updates the
	// mutable fields (name, health_updates, source, active) in place when the
	// email is already present. It returns the stored document.
	Upsert(ctx context.Context, sub *domain.EmailSubscriber) (*domain.EmailSubscriber, error)
}
