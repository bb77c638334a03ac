package nutrition

// Adequacy labels. These are the classifier's full output alphabet.
const (
	LabelAdequate   = "Adequate"
	LabelInadequate = "Inadequate"
)

// referenceWeight is the fixed body weight used to derive training labels.
const referenceWeight = 60

// LabelFor derives the training label for a single food row: "Adequate" iff
// the row meets all four nutrient requirements at the reference weight of
// 60 kg on its own. A zero requirement denominator yields a ratio of 0.
// This is only used to label the training set; user selections are labeled
// by the trained classifier, never by this rule.
func LabelFor(row FoodRow) string {
	reqs := RequirementsFor(referenceWeight)
	ratios := []float64{
		ratio(row.ProteinG, reqs.ProteinG),
		ratio(row.IronMg, reqs.IronMg),
		ratio(row.B12Mcg, reqs.B12Mcg),
		ratio(row.Omega3G, reqs.Omega3G),
	}
	for _, r := range ratios {
		if r < 1 {
			return LabelInadequate
		}
	}
	return LabelAdequate
}

func ratio(have, required float64) float64 {
	if required == 0 {
		return 0
	}
	return have / required
}
