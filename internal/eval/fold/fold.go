// Package fold aggregates per-fold evaluation tables from repeated
// cross-validation runs into mean, standard deviation, and lift summaries.
package fold

import (
	"math"

	"github.com/searchlab/ltreval/internal/apperr"
	"github.com/searchlab/ltreval/internal/eval/series"
)

// Summary holds per-cutoff statistics across folds. Mean and Stddev are
// keyed by series name; row i corresponds to cutoff KStart+i. Lift is the
// percent change between adjacent series computed on the mean table.
type Summary struct {
	KStart int
	Names  []string
	Folds  int
	Mean   map[string][]float64
	Stddev map[string][]float64
	Lift   *series.Table
}

// Rows returns the number of cutoffs in the summary.
func (s *Summary) Rows() int {
	if len(s.Names) == 0 {
		return 0
	}
	return len(s.Mean[s.Names[0]])
}

// K returns the cutoff of row i.
func (s *Summary) K(i int) int {
	return s.KStart + i
}

// Aggregate groups identically shaped fold tables by cutoff and computes the
// per-series mean and sample standard deviation, plus lift on the means.
// The folds must share cutoff range and series names.
func Aggregate(folds []*series.Table) (*Summary, error) {
	if len(folds) == 0 {
		return nil, apperr.NewValidation("at least one fold table is required")
	}

	first := folds[0]
	for i, f := range folds[1:] {
		if f.KStart != first.KStart || f.Rows() != first.Rows() {
			return nil, apperr.NewValidationf("fold %d cutoff range differs from fold 0", i+1)
		}
		if len(f.Names) != len(first.Names) {
			return nil, apperr.NewValidationf("fold %d series differ from fold 0", i+1)
		}
		for j, name := range f.Names {
			if name != first.Names[j] {
				return nil, apperr.NewValidationf("fold %d series differ from fold 0", i+1)
			}
		}
	}

	s := &Summary{
		KStart: first.KStart,
		Names:  append([]string(nil), first.Names...),
		Folds:  len(folds),
		Mean:   make(map[string][]float64, len(first.Names)),
		Stddev: make(map[string][]float64, len(first.Names)),
	}

	rows := first.Rows()
	for _, name := range s.Names {
		mean := make([]float64, rows)
		stddev := make([]float64, rows)

		for row := 0; row < rows; row++ {
			var sum float64
			for _, f := range folds {
				sum += f.Values[name][row]
			}
			mean[row] = sum / float64(len(folds))

			if len(folds) > 1 {
				var sumSquares float64
				for _, f := range folds {
					diff := f.Values[name][row] - mean[row]
					sumSquares += diff * diff
				}
				stddev[row] = math.Sqrt(sumSquares / float64(len(folds)-1))
			}
		}

		s.Mean[name] = mean
		s.Stddev[name] = stddev
	}

	s.Lift = series.Lift(&series.Table{
		KStart: s.KStart,
		Names:  s.Names,
		Values: s.Mean,
	})

	return s, nil
}
