package service

import (
	"fmt"
	"strings"

	"github.com/platewise/backend/internal/ml"
	"github.com/platewise/backend/internal/nutrition"
)

// Classifier hyperparameters. Fixed for training reproducibility, not tuned
// for accuracy.
const (
	forestTrees    = 200
	forestMaxDepth = 8
	forestSeed     = 42
)

// Assessment is the outcome of classifying one food selection.
type Assessment struct {
	Totals       nutrition.Totals
	Requirements nutrition.Requirements
	Deficits     map[string]float64
	Status       string
}

// NutritionService owns the food reference table and the adequacy
// classifier. Both are built once here and are read-only afterward, so the
// service is safe to share across requests without locking.
type NutritionService struct {
	table   *nutrition.Table
	forest  *ml.RandomForest
	encoder *ml.LabelEncoder
}

// NewNutritionService trains the adequacy classifier on the reference table
// and returns the ready-to-serve service. Training failures are fatal: the
// caller must not start serving without a trained model.
func NewNutritionService(table *nutrition.Table) (*NutritionService, error) {
	rows := table.Rows()
	features := make([][]float64, len(rows))
	labels := make([]string, len(rows))
	for i, row := range rows {
		features[i] = featureVector(nutrition.Totals{
			ProteinG: row.ProteinG,
			IronMg:   row.IronMg,
			B12Mcg:   row.B12Mcg,
			Omega3G:  row.Omega3G,
			CalKcal:  row.CalKcal,
		})
		labels[i] = nutrition.LabelFor(row)
	}

	encoder, encoded := ml.FitLabels(labels)
	forest, err := ml.TrainForest(features, encoded, ml.ForestConfig{
		Trees:    forestTrees,
		MaxDepth: forestMaxDepth,
		Seed:     forestSeed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to train adequacy classifier: %w", err)
	}

	return &NutritionService{
		table:   table,
		forest:  forest,
		encoder: encoder,
	}, nil
}

// Foods returns all known food names, sorted. A non-empty query filters the
// list by case-insensitive substring match.
func (s *NutritionService) Foods(query string) []string {
	names := s.table.Names()
	if query == "" {
		return names
	}
	q := strings.ToLower(query)
	filtered := names[:0]
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), q) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// Assess aggregates the selection, classifies the totals, and reports the
// per-nutrient shortfalls against the weight-scaled requirements.
func (s *NutritionService) Assess(weight float64, foodGrams map[string]float64) (*Assessment, error) {
	totals, err := nutrition.Aggregate(s.table, foodGrams)
	if err != nil {
		return nil, err
	}

	status, err := s.classify(totals)
	if err != nil {
		return nil, err
	}

	reqs := nutrition.RequirementsFor(weight)
	return &Assessment{
		Totals:       totals,
		Requirements: reqs,
		Deficits:     nutrition.Deficits(totals, reqs),
		Status:       status,
	}, nil
}

func (s *NutritionService) classify(totals nutrition.Totals) (string, error) {
	class, err := s.forest.Predict(featureVector(totals))
	if err != nil {
		return "", err
	}
	return s.encoder.Inverse(class)
}

// featureVector orders the five nutrient fields the way the model was
// trained: protein, iron, B12, omega-3, calories.
func featureVector(t nutrition.Totals) []float64 {
	return []float64{t.ProteinG, t.IronMg, t.B12Mcg, t.Omega3G, t.CalKcal}
}
