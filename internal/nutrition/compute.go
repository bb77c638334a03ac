package nutrition

// Daily requirement coefficients per kilogram of body weight. Omega-3 is a
// flat daily amount, independent of weight.
const (
	proteinPerKg = 1.32
	ironPerKg    = 0.094
	b12PerKg     = 0.028
	omega3Daily  = 1.1
)

// Requirements are the required daily amounts of the four tracked nutrients
// for one body weight. Calories have no requirement.
type Requirements struct {
	ProteinG float64 `json:"protein_g"`
	IronMg   float64 `json:"iron_mg"`
	B12Mcg   float64 `json:"b12_mcg"`
	Omega3G  float64 `json:"omega3_g"`
}

// Totals are absolute nutrient amounts summed over a food selection.
type Totals struct {
	ProteinG float64 `json:"protein_g"`
	IronMg   float64 `json:"iron_mg"`
	B12Mcg   float64 `json:"b12_mcg"`
	Omega3G  float64 `json:"omega3_g"`
	CalKcal  float64 `json:"cal_kcal"`
}

// RequirementsFor computes the daily requirements for a body weight in
// kilograms. The caller validates that weight is positive.
func RequirementsFor(weight float64) Requirements {
	return Requirements{
		ProteinG: weight * proteinPerKg,
		IronMg:   weight * ironPerKg,
		B12Mcg:   weight * b12PerKg,
		Omega3G:  omega3Daily,
	}
}

// Aggregate sums the nutrient contributions of a food→grams selection.
// Nutrient values in the table are per 100 g, so each row contributes
// grams/100 of its values. A name absent from the table is an error; no
// food is ever silently skipped.
func Aggregate(table *Table, foodGrams map[string]float64) (Totals, error) {
	var totals Totals
	for name, grams := range foodGrams {
		row, err := table.Lookup(name)
		if err != nil {
			return Totals{}, err
		}
		factor := grams / 100
		totals.ProteinG += row.ProteinG * factor
		totals.IronMg += row.IronMg * factor
		totals.B12Mcg += row.B12Mcg * factor
		totals.Omega3G += row.Omega3G * factor
		totals.CalKcal += row.CalKcal * factor
	}
	return totals, nil
}

// Deficits reports the nutrients where the totals fall strictly below the
// requirements, keyed by nutrient name with the positive shortfall as the
// value. An exactly-met requirement is not a deficit. Calories are never
// considered.
func Deficits(totals Totals, reqs Requirements) map[string]float64 {
	deficits := make(map[string]float64)
	for _, n := range []struct {
		key      string
		have     float64
		required float64
	}{
		{"protein_g", totals.ProteinG, reqs.ProteinG},
		{"iron_mg", totals.IronMg, reqs.IronMg},
		{"b12_mcg", totals.B12Mcg, reqs.B12Mcg},
		{"omega3_g", totals.Omega3G, reqs.Omega3G},
	} {
		if missing := n.required - n.have; missing > 0 {
			deficits[n.key] = missing
		}
	}
	return deficits
}
