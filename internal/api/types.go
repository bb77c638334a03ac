package api

import "encoding/json"

// PredictRequest carries an explicit food→grams selection.
type PredictRequest struct {
	Weight    float64            `json:"weight" binding:"required,gt=0"`
	FoodGrams map[string]float64 `json:"food_grams" binding:"required"`
}

// CalculateRequest carries a food list, optionally with explicit gram
// quantities. When FoodGrams is absent every listed food counts as 100 g.
type CalculateRequest struct {
	Weight    float64            `json:"weight" binding:"required,gt=0"`
	Foods     []string           `json:"foods"`
	FoodGrams map[string]float64 `json:"food_grams"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type HistoryCreateRequest struct {
	Kind    string          `json:"kind" binding:"required,oneof=predict search"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}
