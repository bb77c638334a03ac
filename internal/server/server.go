package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/dataset"
	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/nutrition"
	"github.com/platewise/backend/internal/router"
	"github.com/platewise/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New builds the fully wired server. Loading the reference table and
// training the classifier happen here, before any listener opens; a failure
// in either means the process must not serve.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	src, err := dataset.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	table, err := nutrition.LoadTable(src)
	if err != nil {
		return nil, fmt.Errorf("failed to load food reference table: %w", err)
	}
	log.Printf("Loaded %d foods from reference dataset", table.Len())

	nutritionService, err := service.NewNutritionService(table)
	if err != nil {
		return nil, err
	}
	log.Printf("Trained adequacy classifier on %d rows", table.Len())

	// Redis is optional. Without it rate limiting is disabled, never a
	// startup failure.
	var redisClient *redis.Client
	if cfg.HasRedis() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Redis unavailable, rate limiting disabled: %v", err)
			redisClient = nil
		}
	}
	loginLimiter := middleware.NewLoginRateLimiter(redisClient)
	historyLimiter := middleware.NewHistoryWriteRateLimiter(redisClient)

	// The account store is optional too. Auth and history routes answer
	// 503 when it is absent; the assessment endpoints never depend on it.
	var authHandler *api.AuthHandler
	var historyHandler *api.HistoryHandler
	if cfg.HasDatabase() {
		db, err := database.New(cfg)
		if err != nil {
			log.Printf("Warning: account store unavailable, auth/history disabled: %v", err)
		} else {
			if err := database.RunMigrations(db); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
			authService := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpireMinutes)
			authHandler = api.NewAuthHandler(authService, loginLimiter)
			historyHandler = api.NewHistoryHandler(service.NewHistoryService(db), authService, historyLimiter)
		}
	} else {
		log.Printf("No account store configured, auth/history endpoints will answer 503")
	}

	engine := router.SetupRouter(cfg, api.NewNutritionHandler(nutritionService), authHandler, historyHandler)

	return &Server{
		router: engine,
		cfg:    cfg,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start starts the server
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
