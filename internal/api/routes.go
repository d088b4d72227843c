package api

import (
	"net/http"
	"time"

	"homelandmeals/backend/internal/ai"
	"homelandmeals/backend/internal/config"
	"homelandmeals/backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full HTTP surface under /api plus the health
// check.
func SetupRoutes(
	router *gin.Engine,
	corsConfig config.CORSConfig,
	trackingService service.TrackingService,
	recipeService service.RecipeService,
	subscriberService service.SubscriberService,
	aiService ai.Service,
) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	profileHandler := NewProfileHandler(trackingService)
	foodHandler := NewFoodHandler(trackingService)
	workoutHandler := NewWorkoutHandler(trackingService)
	recipeHandler := NewRecipeHandler(recipeService)
	subscriberHandler := NewSubscriberHandler(subscriberService)
	copilotHandler := NewCopilotHandler(aiService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/profile", profileHandler.CreateProfile)
		apiGroup.GET("/profile/:id", profileHandler.GetProfile)

		apiGroup.POST("/analyze-food", foodHandler.AnalyzeFood)
		apiGroup.GET("/food-entries/:user_id", foodHandler.ListFoodEntries)
		apiGroup.GET("/ingredient-substitutions/:ingredient", foodHandler.GetIngredientSubstitution)

		apiGroup.POST("/workout", workoutHandler.LogWorkout)
		apiGroup.GET("/daily-stats/:user_id/:date", workoutHandler.GetDailyStats)

		recipeGroup := apiGroup.Group("/recipes")
		{
			recipeGroup.POST("", recipeHandler.CreateRecipe)
			recipeGroup.GET("", recipeHandler.ListRecipes)
			recipeGroup.GET("/:id", recipeHandler.GetRecipe)
			recipeGroup.PUT("/:id/favorite", recipeHandler.ToggleFavorite)
			recipeGroup.DELETE("/:id", recipeHandler.DeleteRecipe)
		}

		apiGroup.POST("/email-signup", subscriberHandler.EmailSignup)

		copilotGroup := apiGroup.Group("/copilot")
		{
			copilotGroup.POST("/chat", copilotHandler.Chat)
			copilotGroup.POST("/recipe-suggestions", copilotHandler.RecipeSuggestions)
			copilotGroup.POST("/cooking-guidance", copilotHandler.CookingGuidance)
		}
		apiGroup.POST("/recipe-analyzer", copilotHandler.AnalyzeRecipe)
	}
}
