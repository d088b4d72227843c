package api

import (
	"io"
	"net/http"
	"strings"

	"homelandmeals/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps food photo uploads at 10 MB.
const maxUploadBytes = 10 << 20

// FoodHandler holds the tracking service dependency for food routes.
type FoodHandler struct {
	tracking service.TrackingService
}

func NewFoodHandler(tracking service.TrackingService) *FoodHandler {
	return &FoodHandler{tracking: tracking}
}

// AnalyzeFood accepts a multipart food photo, runs the vision analysis, and
// returns the persisted entry with its cultural context.
func (h *FoodHandler) AnalyzeFood(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image file is required", codeValidation)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "File must be an image", codeValidation)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "Image must be smaller than 10MB", codeValidation)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Unable to read uploaded file", codeValidation)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil || len(image) > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "Unable to read uploaded file", codeValidation)
		return
	}

	userID := c.PostForm("user_id")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "user_id is required", codeValidation)
		return
	}

	result, err := h.tracking.AnalyzeFood(c.Request.Context(), userID, c.PostForm("meal_type"), image, contentType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Food analyzed successfully", result)
}

func (h *FoodHandler) ListFoodEntries(c *gin.Context) {
	entries, err := h.tracking.ListFoodEntries(c.Request.Context(), c.Param("user_id"), c.Query("date_filter"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Food entries retrieved", entries)
}

// ingredientSubstitution is a Western grocery store alternative for a
// traditional South Asian ingredient.
type ingredientSubstitution struct {
	Substitute string `json:"substitute"`
	Notes      string `json:"notes"`
}

var commonSubstitutions = map[string]ingredientSubstitution{
	"garam masala": {
		Substitute: "allspice + black pepper + cardamom powder",
		Notes:      "Mix 1 tsp allspice, 1/2 tsp black pepper, 1/2 tsp cardamom powder",
	},
	"curry leaves": {
		Substitute: "bay leaves + lime zest",
		Notes:      "Use 2 bay leaves + 1 tsp lime zest for every 10 curry leaves",
	},
	"tamarind paste": {
		Substitute: "lemon juice + brown sugar",
		Notes:      "Mix 2 tbsp lemon juice + 1 tbsp brown sugar",
	},
	"jaggery": {
		Substitute: "brown sugar + molasses",
		Notes:      "Mix 1 cup brown sugar + 2 tbsp molasses",
	},
	"paneer": {
		Substitute: "ricotta cheese + salt",
		Notes:      "Press ricotta overnight and add salt to taste",
	},
}

func (h *FoodHandler) GetIngredientSubstitution(c *gin.Context) {
	ingredient := strings.ToLower(strings.TrimSpace(c.Param("ingredient")))

	substitution, ok := commonSubstitutions[ingredient]
	if !ok {
		substitution = ingredientSubstitution{
			Substitute: "Not found in database",
			Notes:      "Try searching for similar ingredients or visit an Indian grocery store",
		}
	}

	respondSuccess(c, http.StatusOK, "Substitution retrieved", substitution)
}
