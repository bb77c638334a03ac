// Command seedfoods writes a small starter reference dataset so the API can
// run locally without the research CSV.
package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/platewise/backend/internal/nutrition"
)

type seedRow struct {
	name                            string
	protein, iron, b12, omega3, cal float64
}

var seedRows = []seedRow{
	{"Chicken Breast", 31, 1.0, 0.3, 0.1, 165},
	{"Salmon", 20, 0.8, 3.2, 2.3, 208},
	{"Beef Liver", 26, 6.5, 70.6, 0.04, 175},
	{"Lentils", 9, 3.3, 0, 0.04, 116},
	{"Spinach", 2.9, 2.7, 0, 0.14, 23},
	{"Eggs", 13, 1.8, 1.1, 0.1, 155},
	{"Tofu", 8, 5.4, 0, 0.2, 76},
	{"Sardines", 25, 2.9, 8.9, 1.5, 208},
	{"White Rice", 2.7, 0.8, 0, 0.01, 130},
	{"Almonds", 21, 3.7, 0, 0.003, 579},
}

func main() {
	path := os.Getenv("DATASET_PATH")
	if path == "" {
		path = "researchdataset.csv"
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(nutrition.RequiredColumns); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}
	for _, r := range seedRows {
		record := []string{
			r.name,
			formatFloat(r.protein),
			formatFloat(r.iron),
			formatFloat(r.b12),
			formatFloat(r.omega3),
			formatFloat(r.cal),
		}
		if err := w.Write(record); err != nil {
			log.Fatalf("Failed to write row for %s: %v", r.name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Failed to flush CSV: %v", err)
	}

	log.Printf("Wrote %d foods to %s", len(seedRows), path)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
