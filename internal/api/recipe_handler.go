package api

import (
	"net/http"

	"homelandmeals/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecipeHandler holds the recipe service dependency.
type RecipeHandler struct {
	recipes service.RecipeService
}

func NewRecipeHandler(recipes service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// CreateRecipeRequest defines the expected JSON for creating a recipe. The
// quick version and derived metadata come from the AI conversion.
type CreateRecipeRequest struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	CuisineType    string `json:"cuisine_type"`
	Category       string `json:"category"`
	OriginalRecipe string `json:"original_recipe"`
}

// ToggleFavoriteRequest identifies the caller for the ownership check.
type ToggleFavoriteRequest struct {
	UserID string `json:"user_id"`
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), codeValidation)
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), service.CreateRecipeInput{
		UserID:         req.UserID,
		Name:           req.Name,
		Description:    req.Description,
		CuisineType:    req.CuisineType,
		Category:       req.Category,
		OriginalRecipe: req.OriginalRecipe,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Recipe created successfully", recipe)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context(), service.ListRecipesInput{
		UserID:      c.Query("user_id"),
		Category:    c.Query("category"),
		CuisineType: c.Query("cuisine_type"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Recipes retrieved", recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Recipe retrieved", recipe)
}

func (h *RecipeHandler) ToggleFavorite(c *gin.Context) {
	var req ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), codeValidation)
		return
	}

	recipe, err := h.recipes.ToggleFavorite(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Favorite updated", gin.H{
		"id":          recipe.ID,
		"is_favorite": recipe.IsFavorite,
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipes.DeleteRecipe(c.Request.Context(), c.Param("id"), c.Query("user_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Recipe deleted", nil)
}
