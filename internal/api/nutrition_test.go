package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFoods(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	w, resp := performRequest(t, engine, "GET", "/foods", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	foods := resp["foods"].([]interface{})
	require.NotEmpty(t, foods)
	for i := 1; i < len(foods); i++ {
		assert.Less(t, foods[i-1].(string), foods[i].(string))
	}
}

func TestListFoodsFiltered(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	w, resp := performRequest(t, engine, "GET", "/foods?q=salmon", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"Salmon"}, resp["foods"])
}

func TestPredict(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	w, resp := performRequest(t, engine, "POST", "/predict", "", map[string]interface{}{
		"weight":     60,
		"food_grams": map[string]float64{"Chicken Breast": 100},
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 60.0, resp["weight"])

	totals := resp["totals"].(map[string]interface{})
	assert.InDelta(t, 31.0, totals["protein_g"].(float64), 1e-9)
	assert.InDelta(t, 165.0, totals["cal_kcal"].(float64), 1e-9)

	reqs := resp["requirements"].(map[string]interface{})
	assert.InDelta(t, 79.2, reqs["protein_g"].(float64), 1e-9)
	_, hasCalories := reqs["cal_kcal"]
	assert.False(t, hasCalories)

	deficits := resp["deficits"].(map[string]interface{})
	assert.InDelta(t, 48.2, deficits["protein_g"].(float64), 1e-9)

	assert.Contains(t, []interface{}{"Adequate", "Inadequate"}, resp["status"])
}

func TestPredictUnknownFood(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	w, resp := performRequest(t, engine, "POST", "/predict", "", map[string]interface{}{
		"weight":     60,
		"food_grams": map[string]float64{"Unobtainium": 100},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, resp["error"].(string), "Unobtainium")
}

func TestPredictNonPositiveWeight(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	for _, weight := range []float64{0, -5} {
		w, _ := performRequest(t, engine, "POST", "/predict", "", map[string]interface{}{
			"weight":     weight,
			"food_grams": map[string]float64{"Salmon": 100},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestPredictMissingFoodGrams(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	w, _ := performRequest(t, engine, "POST", "/predict", "", map[string]interface{}{
		"weight": 60,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictDeterministic(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	body := map[string]interface{}{
		"weight":     60,
		"food_grams": map[string]float64{"Salmon": 150, "Eggs": 120},
	}
	_, first := performRequest(t, engine, "POST", "/predict", "", body)
	_, second := performRequest(t, engine, "POST", "/predict", "", body)
	assert.Equal(t, first["status"], second["status"])
	assert.Equal(t, first["totals"], second["totals"])
}

func TestCalculateDefaultsTo100Grams(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	w, resp := performRequest(t, engine, "POST", "/calculate", "", map[string]interface{}{
		"weight": 60,
		"foods":  []string{"Chicken Breast", "Spinach"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []interface{}{"Chicken Breast", "Spinach"}, resp["selected_foods"])

	foodGrams := resp["food_grams"].(map[string]interface{})
	assert.Equal(t, 100.0, foodGrams["Chicken Breast"])
	assert.Equal(t, 100.0, foodGrams["Spinach"])

	totals := resp["totals"].(map[string]interface{})
	assert.InDelta(t, 31.0+2.9, totals["protein_g"].(float64), 1e-9)
}

func TestCalculateExplicitGramsWin(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	w, resp := performRequest(t, engine, "POST", "/calculate", "", map[string]interface{}{
		"weight":     60,
		"foods":      []string{"Chicken Breast"},
		"food_grams": map[string]float64{"Salmon": 50},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The explicit mapping is used as-is; the foods list is only echoed.
	totals := resp["totals"].(map[string]interface{})
	assert.InDelta(t, 10.0, totals["protein_g"].(float64), 1e-9)
	assert.Equal(t, []interface{}{"Chicken Breast"}, resp["selected_foods"])
}

func TestCalculateGramsOnlyEchoesEmptyFoodsList(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	w, resp := performRequest(t, engine, "POST", "/calculate", "", map[string]interface{}{
		"weight":     60,
		"food_grams": map[string]float64{"Salmon": 50},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// No foods key in the request still yields a list, never null.
	assert.Equal(t, []interface{}{}, resp["selected_foods"])

	totals := resp["totals"].(map[string]interface{})
	assert.InDelta(t, 10.0, totals["protein_g"].(float64), 1e-9)
}

func TestHealth(t *testing.T) {
	engine, _ := setupTestRouter(t, nil)

	w, resp := performRequest(t, engine, "GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp["status"])
}
