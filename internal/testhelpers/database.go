package testhelpers

import (
	"strings"
	"testing"

	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/nutrition"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory store with the full schema applied.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.HistoryEntry{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

// SampleCSV is a reference dataset covering both adequacy classes at the
// training weight of 60 kg.
const SampleCSV = `name,protein_g,iron_mg,b12_mcg,omega3_g,cal_kcal
Chicken Breast,31,1.0,0.3,0.1,165
Salmon,20,0.8,3.2,2.3,208
Spinach,2.9,2.7,0,0.14,23
Lentils,9,3.3,0,0.04,116
Eggs,13,1.8,1.1,0.1,155
White Rice,2.7,0.8,0,0.01,130
Super Shake,90,8,2.5,1.5,400
Mega Meal,120,12,4,3,900
`

// SampleTable loads the sample dataset into a reference table.
func SampleTable(t *testing.T) *nutrition.Table {
	t.Helper()

	table, err := nutrition.LoadTable(strings.NewReader(SampleCSV))
	if err != nil {
		t.Fatalf("failed to load sample table: %v", err)
	}
	return table
}
