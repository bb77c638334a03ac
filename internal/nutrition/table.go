package nutrition

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownFood is returned when a selection references a food that is not
// in the reference table.
var ErrUnknownFood = errors.New("unknown food")

// RequiredColumns are the CSV columns the reference dataset must provide.
// Extra columns are ignored.
var RequiredColumns = []string{"name", "protein_g", "iron_mg", "b12_mcg", "omega3_g", "cal_kcal"}

// FoodRow is one food in the reference table. Nutrient values are per 100
// grams of the food.
type FoodRow struct {
	Name     string
	ProteinG float64
	IronMg   float64
	B12Mcg   float64
	Omega3G  float64
	CalKcal  float64
}

// Table is the immutable food reference table. It is built once at startup
// and shared read-only by every request.
type Table struct {
	byName map[string]FoodRow
	names  []string
}

// LoadTable reads the reference dataset from a CSV source. It fails if any
// required column is missing. Empty or unparseable numeric cells load as 0.
// A duplicate name overwrites the earlier row.
func LoadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns in dataset: %s", strings.Join(missing, ", "))
	}

	byName := make(map[string]FoodRow)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}
		row := FoodRow{
			Name:     record[colIndex["name"]],
			ProteinG: cellValue(record, colIndex["protein_g"]),
			IronMg:   cellValue(record, colIndex["iron_mg"]),
			B12Mcg:   cellValue(record, colIndex["b12_mcg"]),
			Omega3G:  cellValue(record, colIndex["omega3_g"]),
			CalKcal:  cellValue(record, colIndex["cal_kcal"]),
		}
		byName[row.Name] = row
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Table{byName: byName, names: names}, nil
}

// cellValue parses one numeric cell, treating blanks and garbage as 0.
func cellValue(record []string, idx int) float64 {
	if idx >= len(record) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return 0
	}
	return v
}

// Lookup returns the row for an exact name match.
func (t *Table) Lookup(name string) (FoodRow, error) {
	row, ok := t.byName[name]
	if !ok {
		return FoodRow{}, fmt.Errorf("%w: %q", ErrUnknownFood, name)
	}
	return row, nil
}

// Names returns all food names, sorted and duplicate-free.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Rows returns every row in name order.
func (t *Table) Rows() []FoodRow {
	rows := make([]FoodRow, 0, len(t.names))
	for _, name := range t.names {
		rows = append(rows, t.byName[name])
	}
	return rows
}

// Len returns the number of foods in the table.
func (t *Table) Len() int {
	return len(t.names)
}
