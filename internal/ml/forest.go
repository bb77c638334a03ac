package ml

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Training failure modes. Each one means the dataset cannot produce a
// usable classifier, so callers treat them as fatal.
var (
	ErrEmptyTrainingSet = errors.New("training set is empty")
	ErrSingleClass      = errors.New("training set has fewer than 2 classes")
)

// ForestConfig holds the three contractual hyperparameters of the ensemble.
type ForestConfig struct {
	Trees    int
	MaxDepth int
	Seed     int64
}

// RandomForest is a bagged ensemble of CART decision trees. Trees are grown
// on bootstrap samples with sqrt-feature subsampling at each split, all
// randomness drawn from a single seeded stream so training is reproducible.
// Prediction is a majority vote; ties go to the lowest encoded class.
type RandomForest struct {
	trees       []*treeNode
	numFeatures int
	numClasses  int
}

type treeNode struct {
	// Leaf when left is nil.
	class     int
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// TrainForest grows the ensemble on the full feature matrix x and encoded
// labels y. It runs synchronously and is called exactly once per process.
func TrainForest(x [][]float64, y []int, cfg ForestConfig) (*RandomForest, error) {
	if len(x) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("feature/label length mismatch: %d vs %d", len(x), len(y))
	}
	numFeatures := len(x[0])
	numClasses := 0
	for _, c := range y {
		if c >= numClasses {
			numClasses = c + 1
		}
	}
	if distinctClasses(y) < 2 {
		return nil, ErrSingleClass
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	forest := &RandomForest{
		trees:       make([]*treeNode, 0, cfg.Trees),
		numFeatures: numFeatures,
		numClasses:  numClasses,
	}

	builder := &treeBuilder{
		x:                x,
		y:                y,
		numClasses:       numClasses,
		maxDepth:         cfg.MaxDepth,
		featuresPerSplit: int(math.Max(1, math.Sqrt(float64(numFeatures)))),
		rng:              rng,
	}
	for i := 0; i < cfg.Trees; i++ {
		sample := make([]int, len(x))
		for j := range sample {
			sample[j] = rng.Intn(len(x))
		}
		forest.trees = append(forest.trees, builder.build(sample, 0))
	}
	return forest, nil
}

// Predict classifies one feature vector by majority vote over the trees.
func (f *RandomForest) Predict(features []float64) (int, error) {
	if len(features) != f.numFeatures {
		return 0, fmt.Errorf("expected %d features, got %d", f.numFeatures, len(features))
	}
	votes := make([]int, f.numClasses)
	for _, t := range f.trees {
		votes[t.classify(features)]++
	}
	best := 0
	for c := 1; c < len(votes); c++ {
		if votes[c] > votes[best] {
			best = c
		}
	}
	return best, nil
}

func (n *treeNode) classify(features []float64) int {
	for n.left != nil {
		if features[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.class
}

type treeBuilder struct {
	x                [][]float64
	y                []int
	numClasses       int
	maxDepth         int
	featuresPerSplit int
	rng              *rand.Rand
}

func (b *treeBuilder) build(samples []int, depth int) *treeNode {
	counts := b.classCounts(samples)
	if depth >= b.maxDepth || len(samples) < 2 || isPure(counts) {
		return &treeNode{class: majorityClass(counts)}
	}

	feature, threshold, ok := b.bestSplit(samples, counts)
	if !ok {
		return &treeNode{class: majorityClass(counts)}
	}

	var left, right []int
	for _, i := range samples {
		if b.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      b.build(left, depth+1),
		right:     b.build(right, depth+1),
	}
}

// bestSplit evaluates midpoint thresholds on a random subset of features
// and returns the split with the lowest weighted Gini impurity. ok is false
// when no feature admits a split that separates the samples.
func (b *treeBuilder) bestSplit(samples []int, counts []int) (int, float64, bool) {
	bestGini := math.Inf(1)
	bestFeature, bestThreshold := 0, 0.0
	found := false

	perm := b.rng.Perm(len(b.x[0]))
	for _, feature := range perm[:b.featuresPerSplit] {
		values := make([]float64, len(samples))
		for i, s := range samples {
			values[i] = b.x[s][feature]
		}
		sort.Float64s(values)

		for i := 1; i < len(values); i++ {
			if values[i] == values[i-1] {
				continue
			}
			threshold := (values[i] + values[i-1]) / 2
			gini := b.splitGini(samples, feature, threshold)
			if gini < bestGini {
				bestGini = gini
				bestFeature = feature
				bestThreshold = threshold
				found = true
			}
		}
	}
	return bestFeature, bestThreshold, found
}

func (b *treeBuilder) splitGini(samples []int, feature int, threshold float64) float64 {
	leftCounts := make([]int, b.numClasses)
	rightCounts := make([]int, b.numClasses)
	leftN, rightN := 0, 0
	for _, i := range samples {
		if b.x[i][feature] <= threshold {
			leftCounts[b.y[i]]++
			leftN++
		} else {
			rightCounts[b.y[i]]++
			rightN++
		}
	}
	total := float64(leftN + rightN)
	return float64(leftN)/total*gini(leftCounts, leftN) +
		float64(rightN)/total*gini(rightCounts, rightN)
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		impurity -= p * p
	}
	return impurity
}

func (b *treeBuilder) classCounts(samples []int) []int {
	counts := make([]int, b.numClasses)
	for _, i := range samples {
		counts[b.y[i]]++
	}
	return counts
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

// majorityClass returns the most frequent class, preferring the lowest
// class index on a tie.
func majorityClass(counts []int) int {
	best := 0
	for c := 1; c < len(counts); c++ {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

func distinctClasses(y []int) int {
	seen := make(map[int]bool)
	for _, c := range y {
		seen[c] = true
	}
	return len(seen)
}
