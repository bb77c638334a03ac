package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

// INutritionService defines the interface for the adequacy assessment core
type INutritionService interface {
	Foods(query string) []string
	Assess(weight float64, foodGrams map[string]float64) (*Assessment, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IHistoryService defines the interface for per-user history operations
type IHistoryService interface {
	Create(ctx context.Context, userID uuid.UUID, kind string, payload json.RawMessage) error
	List(ctx context.Context, userID uuid.UUID, kind string, limit int) ([]models.HistoryEntry, error)
}
