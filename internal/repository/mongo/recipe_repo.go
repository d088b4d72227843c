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

const recipeCollectionName = "recipes"

// mongoRecipeRepository implements repository.RecipeRepository.
type mongoRecipeRepository struct {
	store *Store
}

// NewMongoRecipeRepository creates a recipe repository on the shared store.
func NewMongoRecipeRepository(store *Store) repository.RecipeRepository {
	return &mongoRecipeRepository{store: store}
}

func (r *mongoRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	return r.store.Insert(ctx, recipeCollectionName, recipe)
}

func (r *mongoRecipeRepository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := r.store.FindOne(ctx, recipeCollectionName, bson.M{"id": id}, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *mongoRecipeRepository) GetByIDAndOwner(ctx context.Context, id, userID string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	filter := bson.M{"id": id, "user_id": userID}
	if err := r.store.FindOne(ctx, recipeCollectionName, filter, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *mongoRecipeRepository) List(ctx context.Context, filter repository.RecipeFilter) ([]domain.Recipe, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.CuisineType != "" {
		query["cuisine_type"] = filter.CuisineType
	}

	recipes := []domain.Recipe{}
	if err := r.store.FindMany(ctx, recipeCollectionName, query, "created_at", filter.Limit, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *mongoRecipeRepository) SetFavorite(ctx context.Context, id string, favorite bool) (bool, error) {
	return r.store.Update(ctx, recipeCollectionName, bson.M{"id": id}, bson.M{"is_favorite": favorite})
}

func (r *mongoRecipeRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, recipeCollectionName, bson.M{"id": id})
}

// EnsureRecipeIndexes creates the indexes for the recipes collection.
func EnsureRecipeIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "cuisine_type", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "is_favorite", Value: 1}}},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
