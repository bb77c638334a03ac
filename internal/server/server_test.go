package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/testhelpers"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foods.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(datasetPath string) *config.Config {
	return &config.Config{
		ServerPort:       "0",
		ServerHost:       "127.0.0.1",
		DatasetPath:      datasetPath,
		JWTSecret:        "test-secret",
		JWTExpireMinutes: 60,
		CORSOrigins:      []string{"http://localhost:5173"},
	}
}

func TestNewServesAssessmentWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(writeDataset(t, testhelpers.SampleCSV))

	srv, err := New(context.Background(), cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("GET", "/foods", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Auth needs the store, which is not configured.
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest("POST", "/auth/login", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNewFailsOnMissingColumn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	csv := "name,protein_g,b12_mcg,omega3_g,cal_kcal\nSalmon,20,3.2,2.3,208\n"
	cfg := testConfig(writeDataset(t, csv))

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iron_mg")
}

func TestNewFailsOnMissingDataset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewFailsOnSingleClassDataset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	csv := `name,protein_g,iron_mg,b12_mcg,omega3_g,cal_kcal
Spinach,2.9,2.7,0,0.14,23
White Rice,2.7,0.8,0,0.01,130
`
	cfg := testConfig(writeDataset(t, csv))

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}
