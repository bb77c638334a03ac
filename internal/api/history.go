package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/service"
)

// HistoryHandler serves the authenticated per-user history log.
type HistoryHandler struct {
	history      service.IHistoryService
	validator    middleware.TokenValidator
	writeLimiter *middleware.RateLimiter
}

func NewHistoryHandler(history service.IHistoryService, validator middleware.TokenValidator, writeLimiter *middleware.RateLimiter) *HistoryHandler {
	return &HistoryHandler{
		history:      history,
		validator:    validator,
		writeLimiter: writeLimiter,
	}
}

func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	history := router.Group("/history")
	history.Use(middleware.AuthMiddleware(h.validator))
	{
		history.POST("", h.writeLimiter.PerUserMiddleware(), h.Create)
		history.GET("", h.List)
	}
}

func (h *HistoryHandler) Create(c *gin.Context) {
	var req HistoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.history.Create(c.Request.Context(), userID.(uuid.UUID), req.Kind, req.Payload); err != nil {
		if errors.Is(err, service.ErrInvalidHistoryKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *HistoryHandler) List(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	items, err := h.history.List(c.Request.Context(), userID.(uuid.UUID), c.Query("kind"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
