package mongo

import (
	"context"
	"time"

	"homelandmeals/backend/internal/domain"
	"homelandmeals/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollectionName = "user_profiles"

// mongoProfileRepository implements repository.ProfileRepository.
type mongoProfileRepository struct {
	store *Store
}

// NewMongoProfileRepository creates a profile repository on the shared store.
func NewMongoProfileRepository(store *Store) repository.ProfileRepository {
	return &mongoProfileRepository{store: store}
}

func (r *mongoProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return r.store.Insert(ctx, profileCollectionName, profile)
}

func (r *mongoProfileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := r.store.FindOne(ctx, profileCollectionName, bson.M{"id": id}, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// EnsureProfileIndexes creates the indexes for the user_profiles collection.
func EnsureProfileIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
