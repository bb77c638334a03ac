package router

import (
	"github.com/gin-gonic/gin"
	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/middleware"
)

// SetupRouter configures the application routes. A nil authHandler or
// historyHandler means the account store is not configured; those routes
// then answer 503 while the assessment endpoints serve normally.
func SetupRouter(
	cfg *config.Config,
	nutritionHandler *api.NutritionHandler,
	authHandler *api.AuthHandler,
	historyHandler *api.HistoryHandler,
) *gin.Engine {
	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/health", api.Health)

	root := router.Group("")
	nutritionHandler.RegisterRoutes(root)

	if authHandler != nil && historyHandler != nil {
		authHandler.RegisterRoutes(root)
		historyHandler.RegisterRoutes(root)
	} else {
		api.RegisterUnavailableRoutes(root)
	}

	return router
}
