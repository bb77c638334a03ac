package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/nutrition"
	"github.com/platewise/backend/internal/service"
)

// NutritionHandler serves the adequacy assessment endpoints. The underlying
// service is read-only after startup, so one handler serves all requests.
type NutritionHandler struct {
	svc service.INutritionService
}

func NewNutritionHandler(svc service.INutritionService) *NutritionHandler {
	return &NutritionHandler{svc: svc}
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/foods", h.ListFoods)
	router.POST("/predict", h.Predict)
	router.POST("/calculate", h.Calculate)
}

// ListFoods returns all known food names, sorted. An optional q parameter
// filters by case-insensitive substring.
func (h *NutritionHandler) ListFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": h.svc.Foods(c.Query("q"))})
}

func (h *NutritionHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.svc.Assess(req.Weight, req.FoodGrams)
	if err != nil {
		h.respondAssessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weight":       req.Weight,
		"food_grams":   req.FoodGrams,
		"totals":       result.Totals,
		"requirements": result.Requirements,
		"deficits":     result.Deficits,
		"status":       result.Status,
	})
}

func (h *NutritionHandler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The foods list is echoed back and must always be a list, even when
	// the caller only sent explicit gram quantities.
	selected := req.Foods
	if selected == nil {
		selected = []string{}
	}

	// Without explicit gram quantities, every listed food counts as 100 g.
	foodGrams := req.FoodGrams
	if foodGrams == nil {
		foodGrams = make(map[string]float64, len(selected))
		for _, f := range selected {
			foodGrams[f] = 100
		}
	}

	result, err := h.svc.Assess(req.Weight, foodGrams)
	if err != nil {
		h.respondAssessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weight":         req.Weight,
		"selected_foods": selected,
		"food_grams":     foodGrams,
		"totals":         result.Totals,
		"requirements":   result.Requirements,
		"deficits":       result.Deficits,
		"status":         result.Status,
	})
}

func (h *NutritionHandler) respondAssessError(c *gin.Context, err error) {
	if errors.Is(err, nutrition.ErrUnknownFood) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assess selection"})
}
