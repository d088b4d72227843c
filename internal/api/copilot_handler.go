package api

import (
	"net/http"

	"homelandmeals/backend/internal/ai"

	"github.com/gin-gonic/gin"
)

// CopilotHandler exposes the AI cooking assistant endpoints.
type CopilotHandler struct {
	ai ai.Service
}

func NewCopilotHandler(aiService ai.Service) *CopilotHandler {
	return &CopilotHandler{ai: aiService}
}

// ChatRequest is a free-form message to the cooking assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Context string `json:"context"`
}

// SuggestionsRequest asks for recipes that fit the available ingredients.
type SuggestionsRequest struct {
	AvailableIngredients []string `json:"available_ingredients" binding:"required"`
	CuisinePreference    string   `json:"cuisine_preference"`
	DietaryRestrictions  []string `json:"dietary_restrictions"`
	CookingTimeLimit     int      `json:"cooking_time_limit"`
}

// GuidanceRequest asks for help with a recipe step or question.
type GuidanceRequest struct {
	RecipeName string `json:"recipe_name" binding:"required"`
	StepNumber int    `json:"step_number"`
	Question   string `json:"question"`
}

// RecipeAnalysisRequest asks for per-serving nutrition of recipe text.
type RecipeAnalysisRequest struct {
	RecipeText string `json:"recipe_text" binding:"required"`
}

// Chat routes a general cooking question through the guidance task.
func (h *CopilotHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "message is required", codeValidation)
		return
	}

	payload, err := h.ai.CookingGuidance(c.Request.Context(), ai.GuidanceRequest{
		RecipeName: "general_cooking_chat",
		Question:   req.Message,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response, _ := payload["guidance"].(string)
	if response == "" {
		response = "I'm here to help with your cooking questions!"
	}

	respondSuccess(c, http.StatusOK, "Chat response generated", gin.H{
		"response": response,
		"context":  req.Context,
	})
}

func (h *CopilotHandler) RecipeSuggestions(c *gin.Context) {
	var req SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "available_ingredients is required", codeValidation)
		return
	}

	payload, err := h.ai.SuggestRecipes(c.Request.Context(), ai.SuggestionRequest{
		AvailableIngredients: req.AvailableIngredients,
		CuisinePreference:    req.CuisinePreference,
		DietaryRestrictions:  req.DietaryRestrictions,
		CookingTimeLimit:     req.CookingTimeLimit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Recipe suggestions generated", payload)
}

func (h *CopilotHandler) CookingGuidance(c *gin.Context) {
	var req GuidanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "recipe_name is required", codeValidation)
		return
	}

	payload, err := h.ai.CookingGuidance(c.Request.Context(), ai.GuidanceRequest{
		RecipeName: req.RecipeName,
		StepNumber: req.StepNumber,
		Question:   req.Question,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Cooking guidance generated", payload)
}

func (h *CopilotHandler) AnalyzeRecipe(c *gin.Context) {
	var req RecipeAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "recipe_text is required", codeValidation)
		return
	}

	payload, err := h.ai.AnalyzeRecipe(c.Request.Context(), req.RecipeText)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Recipe analysis generated", gin.H{
		"analysis": payload,
	})
}
