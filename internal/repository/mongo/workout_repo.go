package mongo

import (
	"context"
	"time"

	"homelandmeals/backend/internal/domain"
	"homelandmeals/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const workoutCollectionName = "workout_entries"

// mongoWorkoutRepository implements repository.WorkoutRepository.
type mongoWorkoutRepository struct {
	store *Store
}

// NewMongoWorkoutRepository creates a workout repository on the shared store.
func NewMongoWorkoutRepository(store *Store) repository.WorkoutRepository {
	return &mongoWorkoutRepository{store: store}
}

func (r *mongoWorkoutRepository) Create(ctx context.Context, entry *domain.WorkoutEntry) error {
	entry.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, workoutCollectionName, entry)
}

func (r *mongoWorkoutRepository) TotalsByDate(ctx context.Context, userID, date string) (repository.WorkoutTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID, "date_logged": date}}},
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"burned":   bson.M{"$sum": "$calories_burned"},
			"workouts": bson.M{"$sum": 1},
		}}},
	}

	var results []struct {
		Burned   float64 `bson:"burned"`
		Workouts int     `bson:"workouts"`
	}
	if err := r.store.Aggregate(ctx, workoutCollectionName, pipeline, &results); err != nil {
		return repository.WorkoutTotals{}, err
	}
	if len(results) == 0 {
		return repository.WorkoutTotals{}, nil
	}

	return repository.WorkoutTotals{
		CaloriesBurned: results[0].Burned,
		Workouts:       results[0].Workouts,
	}, nil
}

// EnsureWorkoutIndexes creates the indexes for the workout_entries collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "date_logged", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date_logged", Value: 1}}},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
