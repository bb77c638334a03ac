package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// History entry kinds accepted on write.
const (
	HistoryKindPredict = "predict"
	HistoryKindSearch  = "search"
)

// HistoryEntry is one record in a user's append-only activity log.
type HistoryEntry struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"-"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Kind      string         `gorm:"not null;index" json:"kind"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

func (h *HistoryEntry) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
