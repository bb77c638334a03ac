package ml

import (
	"fmt"
	"sort"
)

// LabelEncoder maps string class labels to a dense integer alphabet and
// back. Classes are assigned integers in lexical order, so the encoding is
// stable across processes for the same label set.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// FitLabels builds an encoder over the distinct labels present and returns
// the encoded form of every input label.
func FitLabels(labels []string) (*LabelEncoder, []int) {
	seen := make(map[string]bool, len(labels))
	var classes []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	enc := &LabelEncoder{
		classes: classes,
		index:   make(map[string]int, len(classes)),
	}
	for i, c := range classes {
		enc.index[c] = i
	}

	encoded := make([]int, len(labels))
	for i, l := range labels {
		encoded[i] = enc.index[l]
	}
	return enc, encoded
}

// Classes returns the label alphabet in encoded order.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Inverse decodes an integer class back to its label string.
func (e *LabelEncoder) Inverse(class int) (string, error) {
	if class < 0 || class >= len(e.classes) {
		return "", fmt.Errorf("class %d out of range [0,%d)", class, len(e.classes))
	}
	return e.classes[class], nil
}
