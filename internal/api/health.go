package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Health reports process liveness. It never touches the store.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "platewise backend is running",
		"version": Version,
	})
}

// StoreUnavailable answers for auth/history routes when no account store is
// configured. The assessment endpoints are unaffected.
func StoreUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account store is not configured"})
}

// RegisterUnavailableRoutes mounts the 503 responder on every route that
// needs the account store.
func RegisterUnavailableRoutes(router *gin.RouterGroup) {
	router.POST("/auth/register", StoreUnavailable)
	router.POST("/auth/login", StoreUnavailable)
	router.POST("/history", StoreUnavailable)
	router.GET("/history", StoreUnavailable)
}
