package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelForAllRatiosMet(t *testing.T) {
	// At 60 kg the requirements are 79.2 g protein, 5.64 mg iron,
	// 1.68 mcg B12, 1.1 g omega-3.
	row := FoodRow{Name: "Mega Meal", ProteinG: 120, IronMg: 12, B12Mcg: 4, Omega3G: 3, CalKcal: 900}
	assert.Equal(t, LabelAdequate, LabelFor(row))
}

func TestLabelForExactlyMet(t *testing.T) {
	reqs := RequirementsFor(60)
	row := FoodRow{ProteinG: reqs.ProteinG, IronMg: reqs.IronMg, B12Mcg: reqs.B12Mcg, Omega3G: reqs.Omega3G}
	assert.Equal(t, LabelAdequate, LabelFor(row))
}

func TestLabelForOneNutrientShort(t *testing.T) {
	// Everything adequate except omega-3.
	row := FoodRow{ProteinG: 120, IronMg: 12, B12Mcg: 4, Omega3G: 1.0}
	assert.Equal(t, LabelInadequate, LabelFor(row))
}

func TestLabelForTypicalFood(t *testing.T) {
	row := FoodRow{Name: "Chicken Breast", ProteinG: 31, IronMg: 1.0, B12Mcg: 0.3, Omega3G: 0.1, CalKcal: 165}
	assert.Equal(t, LabelInadequate, LabelFor(row))
}

func TestLabelForZeroRow(t *testing.T) {
	assert.Equal(t, LabelInadequate, LabelFor(FoodRow{}))
}
