package metrics

import (
	"math"
	"sort"

	"github.com/searchlab/ltreval/internal/apperr"
)

// Discount weighting conventions for DCG. Positions are 1-indexed.
//
// MethodNoEarlyDiscount leaves positions 1 and 2 undiscounted, then divides
// position i by log2(i). The resulting weights are [1.0, 1.0, 0.6309, 0.5, ...].
//
// MethodLogDiscount divides every position i by log2(i+1), giving weights
// [1.0, 0.6309, 0.5, 0.4307, ...].
const (
	MethodNoEarlyDiscount = 0
	MethodLogDiscount     = 1
)

// DCGAtK computes discounted cumulative gain over the first k entries of a
// rank-ordered grade sequence (first element is the top-ranked item).
// Sequences shorter than k are used as-is; an empty sequence scores 0.
// Any method other than MethodNoEarlyDiscount or MethodLogDiscount is an
// invalid argument.
func DCGAtK(grades []float64, k int, method int) (float64, error) {
	if k < 0 {
		k = 0
	}
	if k < len(grades) {
		grades = grades[:k]
	}
	if len(grades) == 0 {
		return 0, nil
	}

	switch method {
	case MethodNoEarlyDiscount:
		sum := grades[0]
		for i := 1; i < len(grades); i++ {
			sum += grades[i] / math.Log2(float64(i+1))
		}
		return sum, nil
	case MethodLogDiscount:
		var sum float64
		for i, g := range grades {
			sum += g / math.Log2(float64(i+2))
		}
		return sum, nil
	default:
		return 0, apperr.NewValidationf("dcg method must be 0 or 1, got %d", method)
	}
}

// NDCGAtK computes DCG@k normalized by the ideal DCG@k, the gain of the same
// grades sorted descending. Returns 0 when the ideal gain is zero (all grades
// within the cutoff are zero, or the cutoff truncates to nothing).
func NDCGAtK(grades []float64, k int, method int) (float64, error) {
	ideal := make([]float64, len(grades))
	copy(ideal, grades)
	sort.Sort(sort.Reverse(sort.Float64Slice(ideal)))

	maxDCG, err := DCGAtK(ideal, k, method)
	if err != nil {
		return 0, err
	}
	if maxDCG == 0 {
		return 0, nil
	}

	dcg, err := DCGAtK(grades, k, method)
	if err != nil {
		return 0, err
	}
	return dcg / maxDCG, nil
}
