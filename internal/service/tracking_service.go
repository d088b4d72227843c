package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"homelandmeals/backend/internal/ai"
	"homelandmeals/backend/internal/domain"
	"homelandmeals/backend/internal/repository"
	"homelandmeals/backend/internal/storage"
	"homelandmeals/backend/pkg/logger"

	"github.com/google/uuid"
)

const (
	dateLayout          = "2006-01-02"
	foodEntryListLimit  = 100
	defaultDailyTarget  = 2000
	defaultMealType     = domain.MealLunch
)

// CreateProfileInput carries the raw profile fields before validation.
type CreateProfileInput struct {
	Name          string
	Age           int
	Gender        string
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string
	Goal          string
	GoalWeightKg  *float64
}

// LogWorkoutInput carries the raw workout fields before validation.
type LogWorkoutInput struct {
	UserID          string
	ActivityName    string
	DurationMinutes int
	Intensity       string
}

// FoodAnalysisResult is what the analyze-food flow hands back: the persisted
// entry plus the contextual extras that are not stored on it.
type FoodAnalysisResult struct {
	Entry                   *domain.FoodEntry `json:"food_entry"`
	CulturalContext         string            `json:"cultural_context"`
	IngredientSubstitutions any               `json:"ingredient_substitutions"`
	QuickRecipeTips         string            `json:"quick_recipe_tips"`
}

// TrackingService covers profiles, food logging, workouts, and daily stats.
type TrackingService interface {
	CreateProfile(ctx context.Context, input CreateProfileInput) (*domain.UserProfile, error)
	GetProfile(ctx context.Context, id string) (*domain.UserProfile, error)
	AnalyzeFood(ctx context.Context, userID, mealType string, image []byte, contentType string) (*FoodAnalysisResult, error)
	ListFoodEntries(ctx context.Context, userID, dateFilter string) ([]domain.FoodEntry, error)
	LogWorkout(ctx context.Context, input LogWorkoutInput) (*domain.WorkoutEntry, error)
	DailyStats(ctx context.Context, userID, date string) (*domain.DailyStats, error)
}

type trackingService struct {
	profiles repository.ProfileRepository
	food     repository.FoodEntryRepository
	workouts repository.WorkoutRepository
	ai       ai.Service
	archive  storage.ImageArchive // nil when archiving is not configured
	log      *logger.Logger
}

// NewTrackingService wires the tracking flows. archive may be nil.
func NewTrackingService(
	profiles repository.ProfileRepository,
	food repository.FoodEntryRepository,
	workouts repository.WorkoutRepository,
	aiService ai.Service,
	archive storage.ImageArchive,
	log *logger.Logger,
) TrackingService {
	if log == nil {
		log = logger.Nop()
	}
	return &trackingService{
		profiles: profiles,
		food:     food,
		workouts: workouts,
		ai:       aiService,
		archive:  archive,
		log:      log,
	}
}

// CreateProfile validates the input, derives the daily calorie target, and
// persists the profile. The target is a creation-time snapshot.
func (s *trackingService) CreateProfile(ctx context.Context, input CreateProfileInput) (*domain.UserProfile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	profile := &domain.UserProfile{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Age:           input.Age,
		Gender:        domain.Gender(input.Gender),
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		ActivityLevel: domain.ActivityLevel(input.ActivityLevel),
		Goal:          domain.Goal(input.Goal),
		GoalWeightKg:  input.GoalWeightKg,
	}
	profile.DailyCalorieTarget = domain.DailyCalorieTarget(
		profile.Gender, profile.Age, profile.HeightCm, profile.WeightKg,
		profile.ActivityLevel, profile.Goal,
	)

	if err := s.profiles.Create(ctx, profile); err != nil {
		s.log.Errorw("failed to create profile", "collection", "user_profiles", "error", err)
		return nil, err
	}

	s.log.Infow("profile created", "id", profile.ID, "daily_calorie_target", profile.DailyCalorieTarget)
	return profile, nil
}

func (s *trackingService) GetProfile(ctx context.Context, id string) (*domain.UserProfile, error) {
	return s.profiles.GetByID(ctx, id)
}

// foodAnalysis mirrors the food-analysis response contract.
type foodAnalysis struct {
	MealName           string   `json:"meal_name"`
	Ingredients        []string `json:"ingredients"`
	CaloriesPerServing float64  `json:"calories_per_serving"`
	ServingSize        string   `json:"serving_size"`
	ProteinG           float64  `json:"protein_g"`
	CarbsG             float64  `json:"carbs_g"`
	FatG               float64  `json:"fat_g"`
	FiberG             float64  `json:"fiber_g"`
	SugarG             float64  `json:"sugar_g"`
	SodiumMg           float64  `json:"sodium_mg"`
	AnalysisConfidence float64  `json:"analysis_confidence"`
	CulturalContext    string   `json:"cultural_context"`
	QuickRecipeTips    string   `json:"quick_recipe_tips"`
}

// AnalyzeFood runs the vision analysis, persists the resulting entry for
// today, and best-effort archives the original image.
func (s *trackingService) AnalyzeFood(ctx context.Context, userID, mealType string, image []byte, contentType string) (*FoodAnalysisResult, error) {
	meal := domain.MealType(mealType)
	if mealType == "" {
		meal = defaultMealType
	}
	switch meal {
	case domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack:
	default:
		return nil, newValidationError(map[string]string{
			"meal_type": "meal_type must be one of: breakfast, lunch, dinner, snack",
		})
	}

	imageBase64 := base64.StdEncoding.EncodeToString(image)

	payload, err := s.ai.AnalyzeFoodImage(ctx, imageBase64)
	if err != nil {
		return nil, err
	}

	var analysis foodAnalysis
	if err := decodePayload(payload, &analysis); err != nil {
		s.log.Errorw("failed to decode food analysis payload", "error", err)
		return nil, err
	}

	entry := &domain.FoodEntry{
		ID:                 uuid.NewString(),
		UserID:             userID,
		MealName:           analysis.MealName,
		Ingredients:        analysis.Ingredients,
		CaloriesPerServing: analysis.CaloriesPerServing,
		ServingSize:        analysis.ServingSize,
		ProteinG:           analysis.ProteinG,
		CarbsG:             analysis.CarbsG,
		FatG:               analysis.FatG,
		FiberG:             analysis.FiberG,
		SugarG:             analysis.SugarG,
		SodiumMg:           analysis.SodiumMg,
		AnalysisConfidence: analysis.AnalysisConfidence,
		ImageBase64:        imageBase64,
		MealType:           meal,
		DateConsumed:       time.Now().UTC().Format(dateLayout),
	}

	if err := s.food.Create(ctx, entry); err != nil {
		s.log.Errorw("failed to create food entry", "collection", "food_entries", "error", err)
		return nil, err
	}

	if s.archive != nil {
		key := fmt.Sprintf("food-images/%s", entry.ID)
		if err := s.archive.Archive(ctx, key, contentType, image); err != nil {
			// Archiving never fails the analysis; the entry already carries
			// the image inline.
			s.log.Warnw("food image archive failed", "key", key, "error", err)
		}
	}

	return &FoodAnalysisResult{
		Entry:                   entry,
		CulturalContext:         analysis.CulturalContext,
		IngredientSubstitutions: payload["ingredient_substitutions"],
		QuickRecipeTips:         analysis.QuickRecipeTips,
	}, nil
}

func (s *trackingService) ListFoodEntries(ctx context.Context, userID, dateFilter string) ([]domain.FoodEntry, error) {
	if dateFilter != "" && !validDate(dateFilter) {
		return nil, newValidationError(map[string]string{
			"date_filter": "invalid date format, use YYYY-MM-DD",
		})
	}
	return s.food.ListByUser(ctx, userID, dateFilter, foodEntryListLimit)
}

func (s *trackingService) LogWorkout(ctx context.Context, input LogWorkoutInput) (*domain.WorkoutEntry, error) {
	fields := map[string]string{}
	if input.UserID == "" {
		fields["user_id"] = "user_id is required"
	}
	if input.ActivityName == "" {
		fields["activity_name"] = "activity_name is required"
	}
	if input.DurationMinutes <= 0 {
		fields["duration_minutes"] = "duration_minutes must be positive"
	}
	if len(fields) > 0 {
		return nil, newValidationError(fields)
	}

	intensity := domain.Intensity(input.Intensity)
	if input.Intensity == "" {
		intensity = domain.IntensityModerate
	}

	entry := &domain.WorkoutEntry{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		ActivityName:    input.ActivityName,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  domain.CaloriesBurned(input.DurationMinutes, intensity),
		Intensity:       intensity,
		DateLogged:      time.Now().UTC().Format(dateLayout),
	}

	if err := s.workouts.Create(ctx, entry); err != nil {
		s.log.Errorw("failed to create workout entry", "collection", "workout_entries", "error", err)
		return nil, err
	}
	return entry, nil
}

// DailyStats aggregates the day's food and workout entries. A missing
// profile falls back to a 2000 kcal daily target.
func (s *trackingService) DailyStats(ctx context.Context, userID, date string) (*domain.DailyStats, error) {
	if !validDate(date) {
		return nil, newValidationError(map[string]string{
			"date": "invalid date format, use YYYY-MM-DD",
		})
	}

	foodTotals, err := s.food.TotalsByDate(ctx, userID, date)
	if err != nil {
		s.log.Errorw("failed to aggregate food totals", "collection", "food_entries", "error", err)
		return nil, err
	}
	workoutTotals, err := s.workouts.TotalsByDate(ctx, userID, date)
	if err != nil {
		s.log.Errorw("failed to aggregate workout totals", "collection", "workout_entries", "error", err)
		return nil, err
	}

	dailyTarget := float64(defaultDailyTarget)
	profile, err := s.profiles.GetByID(ctx, userID)
	switch {
	case err == nil:
		dailyTarget = profile.DailyCalorieTarget
	case errors.Is(err, repository.ErrNotFound):
		// No profile yet; keep the default target.
	default:
		return nil, err
	}

	return &domain.DailyStats{
		UserID:            userID,
		Date:              date,
		CaloriesConsumed:  foodTotals.Calories,
		CaloriesBurned:    workoutTotals.CaloriesBurned,
		NetCalories:       foodTotals.Calories - workoutTotals.CaloriesBurned,
		DailyTarget:       dailyTarget,
		RemainingCalories: dailyTarget - foodTotals.Calories,
		ProteinG:          foodTotals.Protein,
		CarbsG:            foodTotals.Carbs,
		FatG:              foodTotals.Fat,
		FiberG:            foodTotals.Fiber,
		MealsLogged:       foodTotals.Meals,
		WorkoutsLogged:    workoutTotals.Workouts,
	}, nil
}

func validateProfileInput(input CreateProfileInput) error {
	fields := map[string]string{}

	if input.Name == "" {
		fields["name"] = "name is required"
	}
	if input.Age < 13 || input.Age > 100 {
		fields["age"] = "age must be between 13 and 100"
	}
	if input.HeightCm < 100 || input.HeightCm > 250 {
		fields["height_cm"] = "height must be between 100 and 250 cm"
	}
	if input.WeightKg < 30 || input.WeightKg > 300 {
		fields["weight_kg"] = "weight must be between 30 and 300 kg"
	}

	switch domain.Gender(input.Gender) {
	case domain.GenderMale, domain.GenderFemale:
	default:
		fields["gender"] = "gender must be 'male' or 'female'"
	}

	if _, ok := domain.ActivityMultipliers[domain.ActivityLevel(input.ActivityLevel)]; !ok {
		fields["activity_level"] = "activity_level must be one of: sedentary, lightly_active, moderately_active, very_active, extremely_active"
	}
	if _, ok := domain.GoalAdjustments[domain.Goal(input.Goal)]; !ok {
		fields["goal"] = "goal must be one of: lose_weight, maintain_weight, gain_weight"
	}

	if input.GoalWeightKg != nil && (*input.GoalWeightKg < 30 || *input.GoalWeightKg > 300) {
		fields["goal_weight_kg"] = "goal weight must be between 30 and 300 kg"
	}

	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}

// validDate accepts exactly YYYY-MM-DD; the round-trip check rejects
// non-padded variants that time.Parse would otherwise tolerate.
func validDate(s string) bool {
	t, err := time.Parse(dateLayout, s)
	return err == nil && t.Format(dateLayout) == s
}
