package metrics

// PrecisionAtK computes the fraction of the top-K grades that are relevant.
// A position is relevant if its grade >= threshold. Grades are rank-ordered,
// first element is the top-ranked item.
func PrecisionAtK(grades []float64, k int, threshold float64) float64 {
	if k <= 0 || len(grades) == 0 {
		return 0
	}

	n := min(k, len(grades))
	var relevant int

	for i := 0; i < n; i++ {
		if grades[i] >= threshold {
			relevant++
		}
	}

	return float64(relevant) / float64(k)
}

// RecallAtK computes the fraction of all relevant positions found in the top-K.
func RecallAtK(grades []float64, k int, threshold float64) float64 {
	if k <= 0 || len(grades) == 0 {
		return 0
	}

	totalRelevant := countRelevant(grades, threshold)
	if totalRelevant == 0 {
		return 0
	}

	n := min(k, len(grades))
	var found int

	for i := 0; i < n; i++ {
		if grades[i] >= threshold {
			found++
		}
	}

	return float64(found) / float64(totalRelevant)
}

// ReciprocalRank returns 1/rank of the first relevant position.
func ReciprocalRank(grades []float64, threshold float64) float64 {
	for i, g := range grades {
		if g >= threshold {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

func countRelevant(grades []float64, threshold float64) int {
	var count int
	for _, g := range grades {
		if g >= threshold {
			count++
		}
	}
	return count
}
