package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/testhelpers"
)

// startPostgres brings up a disposable Postgres and returns a connected
// gorm handle. Skips when no Docker daemon is available.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
				return fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable", host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker not available, skipping integration test: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func setupIntegrationRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	nutritionService, err := service.NewNutritionService(testhelpers.SampleTable(t))
	require.NoError(t, err)

	authService := service.NewAuthService(db, "integration-secret", 60)

	engine := gin.New()
	root := engine.Group("")
	api.NewNutritionHandler(nutritionService).RegisterRoutes(root)
	api.NewAuthHandler(authService, middleware.NewLoginRateLimiter(nil)).RegisterRoutes(root)
	api.NewHistoryHandler(service.NewHistoryService(db), authService, middleware.NewHistoryWriteRateLimiter(nil)).RegisterRoutes(root)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
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
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestFullUserFlow(t *testing.T) {
	db := startPostgres(t)
	engine := setupIntegrationRouter(t, db)

	// Register and log in against the real store.
	w, resp := doJSON(t, engine, "POST", "/auth/register", "", map[string]string{
		"email":    "flow@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := resp["token"].(string)

	w, _ = doJSON(t, engine, "POST", "/auth/login", "", map[string]string{
		"email":    "flow@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Run an assessment and record it.
	w, resp = doJSON(t, engine, "POST", "/predict", "", map[string]interface{}{
		"weight":     60,
		"food_grams": map[string]float64{"Chicken Breast": 100},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, engine, "POST", "/history", token, map[string]interface{}{
		"kind":    "predict",
		"payload": resp,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The entry comes back for its owner, newest-first.
	w, resp = doJSON(t, engine, "GET", "/history?kind=predict", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := resp["items"].([]interface{})
	require.Len(t, items, 1)

	entry := items[0].(map[string]interface{})
	assert.Equal(t, "predict", entry["kind"])
	payload := entry["payload"].(map[string]interface{})
	assert.Equal(t, 60.0, payload["weight"])
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	db := startPostgres(t)
	engine := setupIntegrationRouter(t, db)

	w, _ := doJSON(t, engine, "POST", "/auth/register", "", map[string]string{
		"email":    "dup@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, engine, "POST", "/auth/register", "", map[string]string{
		"email":    "dup@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
