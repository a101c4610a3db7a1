// Package series averages per-query NDCG over cutoff ranges and assembles
// the per-cutoff results of named rankings into tables.
package series

import (
	"errors"
	"fmt"

	"github.com/searchlab/ltreval/internal/apperr"
	"github.com/searchlab/ltreval/internal/eval/metrics"
)

// ErrNoScoredQueries reports a cutoff at which every query's NDCG is zero,
// leaving nothing to average.
var ErrNoScoredQueries = errors.New("no queries with non-zero ndcg")

// NamedSeries is one ranking under evaluation: a name and its per-query
// judgment sequences in rank order.
type NamedSeries struct {
	Name    string
	Queries [][]float64
}

// Table maps named result series to per-cutoff mean NDCG values. Row i holds
// the values for cutoff KStart+i.
type Table struct {
	KStart int
	Names  []string
	Values map[string][]float64
}

// Rows returns the number of cutoffs in the table.
func (t *Table) Rows() int {
	if len(t.Names) == 0 {
		return 0
	}
	return len(t.Values[t.Names[0]])
}

// K returns the cutoff of row i.
func (t *Table) K(i int) int {
	return t.KStart + i
}

// RangeNDCG computes, for each cutoff k in the half-open range
// [kStart, kEnd), the NDCG@k of every query averaged over the queries whose
// NDCG is non-zero. Queries with no achievable gain at a cutoff are excluded
// from the denominator so all-zero-relevance queries do not drag the mean
// down. A cutoff at which every query scores zero yields ErrNoScoredQueries.
func RangeNDCG(queries [][]float64, kStart, kEnd, method int) ([]float64, error) {
	if kStart < 1 || kEnd < kStart {
		return nil, apperr.NewValidationf("invalid cutoff range [%d, %d)", kStart, kEnd)
	}

	results := make([]float64, 0, kEnd-kStart)
	for k := kStart; k < kEnd; k++ {
		var sum float64
		count := 0
		for _, q := range queries {
			ndcg, err := metrics.NDCGAtK(q, k, method)
			if err != nil {
				return nil, err
			}
			sum += ndcg
			if ndcg != 0 {
				count++
			}
		}
		if count == 0 {
			return nil, fmt.Errorf("ndcg@%d: %w", k, ErrNoScoredQueries)
		}
		results = append(results, sum/float64(count))
	}

	return results, nil
}

// Evaluate computes RangeNDCG for every named series over the inclusive
// cutoff range [kStart, kEnd] and assembles the results into a table. Series
// order is preserved in the table's column order.
func Evaluate(kStart, kEnd, method int, series ...NamedSeries) (*Table, error) {
	if len(series) == 0 {
		return nil, apperr.NewValidation("at least one result series is required")
	}

	t := &Table{
		KStart: kStart,
		Names:  make([]string, 0, len(series)),
		Values: make(map[string][]float64, len(series)),
	}

	for _, s := range series {
		if _, ok := t.Values[s.Name]; ok {
			return nil, apperr.NewValidationf("duplicate series name %q", s.Name)
		}
		vals, err := RangeNDCG(s.Queries, kStart, kEnd+1, method)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		t.Names = append(t.Names, s.Name)
		t.Values[s.Name] = vals
	}

	return t, nil
}

// Lift returns the percent change between adjacent named series at each
// cutoff: column i holds (series[i] - series[i-1]) / series[i-1] * 100. The
// first series has no predecessor and is omitted.
func Lift(t *Table) *Table {
	lift := &Table{
		KStart: t.KStart,
		Names:  make([]string, 0, max(len(t.Names)-1, 0)),
		Values: make(map[string][]float64, max(len(t.Names)-1, 0)),
	}

	for i := 1; i < len(t.Names); i++ {
		prev := t.Values[t.Names[i-1]]
		cur := t.Values[t.Names[i]]

		vals := make([]float64, len(cur))
		for row := range cur {
			vals[row] = (cur[row] - prev[row]) / prev[row] * 100
		}

		lift.Names = append(lift.Names, t.Names[i])
		lift.Values[t.Names[i]] = vals
	}

	return lift
}
