package service

import (
	"context"

	"homelandmeals/backend/internal/ai"
	"homelandmeals/backend/internal/domain"
	"homelandmeals/backend/internal/repository"
	"homelandmeals/backend/pkg/logger"

	"github.com/google/uuid"
)

const recipeListLimit = 50

// CreateRecipeInput carries the user-supplied recipe fields. The quick
// version and derived metadata come from the conversion step.
type CreateRecipeInput struct {
	UserID         string
	Name           string
	Description    string
	CuisineType    string
	Category       string
	OriginalRecipe string
}

// ListRecipesInput narrows the recipe listing.
type ListRecipesInput struct {
	UserID      string
	Category    string
	CuisineType string
}

// RecipeService covers the recipe library: AI-backed creation, listing,
// favorites, and deletion.
type RecipeService interface {
	CreateRecipe(ctx context.Context, input CreateRecipeInput) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, input ListRecipesInput) ([]domain.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	ToggleFavorite(ctx context.Context, id, userID string) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id, userID string) error
}

type recipeService struct {
	recipes repository.RecipeRepository
	ai      ai.Service
	log     *logger.Logger
}

func NewRecipeService(recipes repository.RecipeRepository, aiService ai.Service, log *logger.Logger) RecipeService {
	if log == nil {
		log = logger.Nop()
	}
	return &recipeService{recipes: recipes, ai: aiService, log: log}
}

// recipeConversion mirrors the conversion response contract.
type recipeConversion struct {
	QuickVersion         string                `json:"quick_version"`
	PrepTimeMinutes      int                   `json:"prep_time_minutes"`
	CookTimeMinutes      int                   `json:"cook_time_minutes"`
	TotalTimeMinutes     int                   `json:"total_time_minutes"`
	TimeSavedMinutes     int                   `json:"time_saved_minutes"`
	DifficultyLevel      string                `json:"difficulty_level"`
	Servings             int                   `json:"servings"`
	Ingredients          []string              `json:"ingredients"`
	Instructions         []string              `json:"instructions"`
	QuickInstructions    []string              `json:"quick_instructions"`
	NutritionalInfo      domain.NutritionalInfo `json:"nutritional_info"`
	WesternSubstitutions []domain.Substitution  `json:"western_substitutions"`
	CulturalNotes        string                `json:"cultural_notes"`
	Tags                 []string              `json:"tags"`
}

// CreateRecipe converts the original recipe text and persists the result.
// Conversion failures surface as fallback content, so the recipe is saved
// either way; only a missing API key aborts the flow.
func (s *recipeService) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*domain.Recipe, error) {
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}

	payload, err := s.ai.ConvertRecipe(ctx, input.OriginalRecipe, input.CuisineType)
	if err != nil {
		return nil, err
	}

	var conv recipeConversion
	if err := decodePayload(payload, &conv); err != nil {
		s.log.Errorw("failed to decode recipe conversion payload", "error", err)
		return nil, err
	}

	difficulty := domain.DifficultyLevel(conv.DifficultyLevel)
	switch difficulty {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	default:
		difficulty = domain.DifficultyMedium
	}

	servings := conv.Servings
	if servings <= 0 {
		servings = 4
	}

	recipe := &domain.Recipe{
		ID:                   uuid.NewString(),
		UserID:               input.UserID,
		Name:                 input.Name,
		Description:          input.Description,
		CuisineType:          input.CuisineType,
		Category:             input.Category,
		OriginalRecipe:       input.OriginalRecipe,
		QuickVersion:         conv.QuickVersion,
		PrepTimeMinutes:      conv.PrepTimeMinutes,
		CookTimeMinutes:      conv.CookTimeMinutes,
		TotalTimeMinutes:     conv.TotalTimeMinutes,
		DifficultyLevel:      difficulty,
		Servings:             servings,
		Ingredients:          conv.Ingredients,
		Instructions:         conv.Instructions,
		QuickInstructions:    conv.QuickInstructions,
		NutritionalInfo:      conv.NutritionalInfo,
		Tags:                 conv.Tags,
		WesternSubstitutions: conv.WesternSubstitutions,
		CulturalNotes:        conv.CulturalNotes,
		TimeSavedMinutes:     conv.TimeSavedMinutes,
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		s.log.Errorw("failed to create recipe", "collection", "recipes", "error", err)
		return nil, err
	}

	s.log.Infow("recipe created", "id", recipe.ID, "cuisine_type", recipe.CuisineType)
	return recipe, nil
}

func (s *recipeService) ListRecipes(ctx context.Context, input ListRecipesInput) ([]domain.Recipe, error) {
	return s.recipes.List(ctx, repository.RecipeFilter{
		UserID:      input.UserID,
		Category:    input.Category,
		CuisineType: input.CuisineType,
		Limit:       recipeListLimit,
	})
}

func (s *recipeService) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

// ToggleFavorite flips the favorite flag. A recipe owned by someone else is
// reported as not found rather than forbidden.
func (s *recipeService) ToggleFavorite(ctx context.Context, id, userID string) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	recipe.IsFavorite = !recipe.IsFavorite
	updated, err := s.recipes.SetFavorite(ctx, id, recipe.IsFavorite)
	if err != nil {
		s.log.Errorw("failed to update favorite flag", "recipe_id", id, "error", err)
		return nil, err
	}
	if !updated {
		return nil, repository.ErrNotFound
	}
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id, userID string) error {
	if _, err := s.recipes.GetByIDAndOwner(ctx, id, userID); err != nil {
		return err
	}
	deleted, err := s.recipes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return repository.ErrNotFound
	}
	return nil
}

func validateRecipeInput(input CreateRecipeInput) error {
	fields := map[string]string{}
	if input.UserID == "" {
		fields["user_id"] = "user_id is required"
	}
	if input.Name == "" {
		fields["name"] = "name is required"
	}
	if input.OriginalRecipe == "" {
		fields["original_recipe"] = "original_recipe is required"
	}
	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}
