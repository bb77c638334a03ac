package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/platewise/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrInvalidHistoryKind = errors.New("history kind must be predict or search")

// History listing limits. Out-of-range limits are clamped, never rejected.
const (
	minHistoryLimit = 1
	maxHistoryLimit = 200
)

type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Create appends one entry to the user's history log.
func (s *HistoryService) Create(ctx context.Context, userID uuid.UUID, kind string, payload json.RawMessage) error {
	if kind != models.HistoryKindPredict && kind != models.HistoryKindSearch {
		return ErrInvalidHistoryKind
	}

	entry := models.HistoryEntry{
		UserID:  userID,
		Kind:    kind,
		Payload: datatypes.JSON(payload),
	}
	return s.db.WithContext(ctx).Create(&entry).Error
}

// List returns the user's history newest-first, optionally filtered by
// kind. The limit is clamped to [1, 200].
func (s *HistoryService) List(ctx context.Context, userID uuid.UUID, kind string, limit int) ([]models.HistoryEntry, error) {
	if limit < minHistoryLimit {
		limit = minHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var entries []models.HistoryEntry
	if err := query.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
