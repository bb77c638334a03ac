package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/testhelpers"
)

// setupTestRouter wires the handlers onto a fresh engine the way the router
// package does in production. A nil db mounts the 503 responders instead of
// the auth/history routes.
func setupTestRouter(t *testing.T, db *gorm.DB) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	nutritionService, err := service.NewNutritionService(testhelpers.SampleTable(t))
	if err != nil {
		t.Fatalf("failed to build nutrition service: %v", err)
	}

	engine := gin.New()
	engine.GET("/health", Health)
	root := engine.Group("")
	NewNutritionHandler(nutritionService).RegisterRoutes(root)

	if db == nil {
		RegisterUnavailableRoutes(root)
		return engine, nil
	}

	authService := service.NewAuthService(db, "test-secret", 60)
	NewAuthHandler(authService, middleware.NewLoginRateLimiter(nil)).RegisterRoutes(root)
	NewHistoryHandler(service.NewHistoryService(db), authService, middleware.NewHistoryWriteRateLimiter(nil)).RegisterRoutes(root)
	return engine, authService
}

// performRequest drives one request through the engine and decodes the JSON
// body into a generic map.
func performRequest(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

// registerTestUser creates an account through the API and returns its token.
func registerTestUser(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()

	w, resp := performRequest(t, engine, "POST", "/auth/register", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	if w.Code != 201 {
		t.Fatalf("failed to register test user: status %d body %v", w.Code, resp)
	}
	return resp["token"].(string)
}
