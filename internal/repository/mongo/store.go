package mongo

import (
	"context"
	"errors"
	"time"

	"homelandmeals/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides generic document operations over named collections. Typed
// repositories are built on top of it so that every collection gets the same
// timestamp stamping and not-found mapping.
type Store struct {
	db *mongo.Database
}

// NewStore wraps a connected database handle.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Insert adds a document to the named collection. Creation timestamps are
// the caller's responsibility since documents are typed structs.
func (s *Store) Insert(ctx context.Context, collection string, doc any) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

// FindOne decodes a single matching document into out. A miss is reported
// as repository.ErrNotFound.
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

// FindMany decodes all matching documents into out, sorted descending on
// sortField when it is non-empty (newest first for creation timestamps).
// A limit of 0 means no limit.
func (s *Store) FindMany(ctx context.Context, collection string, filter bson.M, sortField string, limit int64, out any) error {
	opts := options.Find()
	if sortField != "" {
		opts.SetSort(bson.D{{Key: sortField, Value: -1}})
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

// Update applies a $set patch to the first matching document and stamps
// updated_at. It reports whether a document matched.
func (s *Store) Update(ctx context.Context, collection string, filter, set bson.M) (bool, error) {
	set["updated_at"] = time.Now().UTC()

	result, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// Delete removes the first matching document and reports whether one was
// removed.
func (s *Store) Delete(ctx context.Context, collection string, filter bson.M) (bool, error) {
	result, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// Aggregate runs a pipeline and decodes the resulting documents into out.
func (s *Store) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, out any) error {
	cursor, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}
