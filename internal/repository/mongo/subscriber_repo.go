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

const subscriberCollectionName = "email_subscribers"

// mongoSubscriberRepository implements repository.SubscriberRepository.
type mongoSubscriberRepository struct {
	store *Store
}

// NewMongoSubscriberRepository creates a subscriber repository on the shared
// store.
func NewMongoSubscriberRepository(store *Store) repository.SubscriberRepository {
	return &mongoSubscriberRepository{store: store}
}

// Upsert relies on the unique email index: the first signup inserts the full
// document, later signups only touch the mutable fields.
func (r *mongoSubscriberRepository) Upsert(ctx context.Context, sub *domain.EmailSubscriber) (*domain.EmailSubscriber, error) {
	now := time.Now().UTC()

	filter := bson.M{"email": sub.Email}
	update := bson.M{
		"$set": bson.M{
			"name":           sub.Name,
			"health_updates": sub.HealthUpdates,
			"source":         sub.Source,
			"active":         true,
			"updated_at":     now,
		},
		"$setOnInsert": bson.M{
			"id":            sub.ID,
			"email":         sub.Email,
			"subscribed_at": now,
			"confirmed":     false,
			"created_at":    now,
		},
	}

	collection := r.store.db.Collection(subscriberCollectionName)
	if _, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return nil, err
	}

	var stored domain.EmailSubscriber
	if err := r.store.FindOne(ctx, subscriberCollectionName, filter, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// EnsureSubscriberIndexes creates the indexes for the email_subscribers
// collection.
func EnsureSubscriberIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
