package mongo

import (
	"context"
	"time"

	"homelandmeals/backend/internal/domain"
	"homelandmeals/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const foodCollectionName = "food_entries"

// mongoFoodRepository implements repository.FoodEntryRepository.
type mongoFoodRepository struct {
	store *Store
}

// NewMongoFoodRepository creates a food entry repository on the shared store.
func NewMongoFoodRepository(store *Store) repository.FoodEntryRepository {
	return &mongoFoodRepository{store: store}
}

func (r *mongoFoodRepository) Create(ctx context.Context, entry *domain.FoodEntry) error {
	entry.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, foodCollectionName, entry)
}

func (r *mongoFoodRepository) ListByUser(ctx context.Context, userID, date string, limit int64) ([]domain.FoodEntry, error) {
	filter := bson.M{"user_id": userID}
	if date != "" {
		filter["date_consumed"] = date
	}

	entries := []domain.FoodEntry{}
	if err := r.store.FindMany(ctx, foodCollectionName, filter, "created_at", limit, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoFoodRepository) TotalsByDate(ctx context.Context, userID, date string) (repository.FoodTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID, "date_consumed": date}}},
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"calories": bson.M{"$sum": "$calories_per_serving"},
			"protein":  bson.M{"$sum": "$protein_g"},
			"carbs":    bson.M{"$sum": "$carbs_g"},
			"fat":      bson.M{"$sum": "$fat_g"},
			"fiber":    bson.M{"$sum": "$fiber_g"},
			"meals":    bson.M{"$sum": 1},
		}}},
	}

	var results []struct {
		Calories float64 `bson:"calories"`
		Protein  float64 `bson:"protein"`
		Carbs    float64 `bson:"carbs"`
		Fat      float64 `bson:"fat"`
		Fiber    float64 `bson:"fiber"`
		Meals    int     `bson:"meals"`
	}
	if err := r.store.Aggregate(ctx, foodCollectionName, pipeline, &results); err != nil {
		return repository.FoodTotals{}, err
	}
	if len(results) == 0 {
		return repository.FoodTotals{}, nil
	}

	return repository.FoodTotals{
		Calories: results[0].Calories,
		Protein:  results[0].Protein,
		Carbs:    results[0].Carbs,
		Fat:      results[0].Fat,
		Fiber:    results[0].Fiber,
		Meals:    results[0].Meals,
	}, nil
}

// EnsureFoodIndexes creates the indexes for the food_entries collection.
func EnsureFoodIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "date_consumed", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date_consumed", Value: 1}}},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
