package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homelandmeals/backend/pkg/logger"
)

// maxPromptLength bounds free-text input before it is submitted to the
// provider, to cap cost and latency.
const maxPromptLength = 5000

// SuggestionRequest describes what the user has on hand and any constraints.
type SuggestionRequest struct {
	AvailableIngredients []string
	CuisinePreference    string
	DietaryRestrictions  []string
	CookingTimeLimit     int
}

// GuidanceRequest asks for help with a recipe, optionally pinned to a step
// or a specific question.
type GuidanceRequest struct {
	RecipeName string
	StepNumber int
	Question   string
}

// Service runs the AI-backed tasks. Every method absorbs upstream
// generation failures into a schema-matching fallback payload; the only
// error any of them returns is ErrAPIKeyMissing, which is a configuration
// problem the caller must surface.
type Service interface {
	AnalyzeFoodImage(ctx context.Context, imageBase64 string) (Payload, error)
	ConvertRecipe(ctx context.Context, recipeText, cuisineType string) (Payload, error)
	SuggestRecipes(ctx context.Context, req SuggestionRequest) (Payload, error)
	CookingGuidance(ctx context.Context, req GuidanceRequest) (Payload, error)
	AnalyzeRecipe(ctx context.Context, recipeText string) (Payload, error)
}

type aiService struct {
	chat ChatClient
	norm *Normalizer
	log  *logger.Logger
}

// NewService creates the AI task service.
func NewService(chat ChatClient, log *logger.Logger) Service {
	if log == nil {
		log = logger.Nop()
	}
	return &aiService{
		chat: chat,
		norm: NewNormalizer(log),
		log:  log,
	}
}

// AnalyzeFoodImage sends a food photo to the vision model and returns the
// nutritional breakdown payload.
func (s *aiService) AnalyzeFoodImage(ctx context.Context, imageBase64 string) (Payload, error) {
	raw, err := s.chat.Send(ctx, FoodAnalysisPrompt(), foodAnalysisUserText, imageBase64)
	if err != nil {
		if errors.Is(err, ErrAPIKeyMissing) {
			return nil, err
		}
		s.log.Errorw("food image analysis failed, using fallback", "error", err)
		return FoodAnalysisFallback(), nil
	}
	return s.norm.NormalizeRequired(raw, FoodAnalysisFallback(), foodAnalysisRequiredKeys...), nil
}

// ConvertRecipe turns a traditional recipe into a quick, student-friendly
// version.
func (s *aiService) ConvertRecipe(ctx context.Context, recipeText, cuisineType string) (Payload, error) {
	if cuisineType == "" {
		cuisineType = DefaultCuisine
	}
	recipeText = truncate(strings.TrimSpace(recipeText))

	userText := fmt.Sprintf(
		"Convert this traditional %s recipe into a quick, student-friendly version while maintaining authentic flavors:\n\n%s\n\nFocus on time-saving techniques, ingredient substitutions available in Western grocery stores, and simplifying the cooking process.",
		cuisineType, recipeText,
	)

	raw, err := s.chat.Send(ctx, RecipeConversionPrompt(cuisineType), userText)
	if err != nil {
		if errors.Is(err, ErrAPIKeyMissing) {
			return nil, err
		}
		s.log.Errorw("recipe conversion failed, using fallback", "error", err)
		return RecipeConversionFallback(), nil
	}
	return s.norm.NormalizeRequired(raw, RecipeConversionFallback(), recipeConversionRequiredKeys...), nil
}

// SuggestRecipes proposes dishes that can be made from the available
// ingredients.
func (s *aiService) SuggestRecipes(ctx context.Context, req SuggestionRequest) (Payload, error) {
	parts := []string{"Available ingredients: " + strings.Join(req.AvailableIngredients, ", ")}
	if req.CuisinePreference != "" {
		parts = append(parts, "Preferred cuisine: "+req.CuisinePreference)
	}
	if len(req.DietaryRestrictions) > 0 {
		parts = append(parts, "Dietary restrictions: "+strings.Join(req.DietaryRestrictions, ", "))
	}
	if req.CookingTimeLimit > 0 {
		parts = append(parts, fmt.Sprintf("Maximum cooking time: %d minutes", req.CookingTimeLimit))
	}

	raw, err := s.chat.Send(ctx, RecipeSuggestionsPrompt(), truncate(strings.Join(parts, ". ")))
	if err != nil {
		if errors.Is(err, ErrAPIKeyMissing) {
			return nil, err
		}
		s.log.Errorw("recipe suggestions failed, using fallback", "error", err)
		return RecipeSuggestionsFallback(), nil
	}
	return s.norm.NormalizeRequired(raw, RecipeSuggestionsFallback(), recipeSuggestionsRequiredKeys...), nil
}

// CookingGuidance answers a free-form cooking question. Failures become an
// apologetic text response rather than an error, so chat never breaks.
func (s *aiService) CookingGuidance(ctx context.Context, req GuidanceRequest) (Payload, error) {
	parts := []string{"I need cooking guidance for " + req.RecipeName}
	if req.StepNumber > 0 {
		parts = append(parts, fmt.Sprintf("Specifically for step %d", req.StepNumber))
	}
	if req.Question != "" {
		parts = append(parts, "My question is: "+req.Question)
	}

	raw, err := s.chat.Send(ctx, CookingGuidancePrompt(), truncate(strings.Join(parts, ". ")))
	if err != nil {
		if errors.Is(err, ErrAPIKeyMissing) {
			return nil, err
		}
		s.log.Errorw("cooking guidance failed", "error", err, "recipe", req.RecipeName)
		return Payload{
			"guidance":    "Sorry, I'm unable to provide cooking guidance at the moment. Please try again later.",
			"recipe_name": req.RecipeName,
			"error":       true,
		}, nil
	}

	result := Payload{
		"guidance":    raw,
		"recipe_name": req.RecipeName,
	}
	if req.StepNumber > 0 {
		result["step_number"] = req.StepNumber
	}
	if req.Question != "" {
		result["question"] = req.Question
	}
	return result, nil
}

// AnalyzeRecipe estimates per-serving nutrition and health notes for recipe
// text.
func (s *aiService) AnalyzeRecipe(ctx context.Context, recipeText string) (Payload, error) {
	recipeText = truncate(strings.TrimSpace(recipeText))

	raw, err := s.chat.Send(ctx, RecipeAnalysisPrompt(), "Analyze this recipe and provide the nutritional breakdown in the specified JSON format:\n\n"+recipeText)
	if err != nil {
		if errors.Is(err, ErrAPIKeyMissing) {
			return nil, err
		}
		s.log.Errorw("recipe analysis failed, using fallback", "error", err)
		return RecipeAnalysisFallback(), nil
	}
	return s.norm.NormalizeRequired(raw, RecipeAnalysisFallback(), recipeAnalysisRequiredKeys...), nil
}

// truncate bounds free text to maxPromptLength runes, marking the cut.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxPromptLength {
		return s
	}
	return string(runes[:maxPromptLength]) + "..."
}
