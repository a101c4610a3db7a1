// Package judgment converts raw ranking-model scores back into per-query
// relevance judgment sequences aligned to each scorer's rank order.
package judgment

import (
	"log/slog"
	"sort"

	"github.com/searchlab/ltreval/internal/dataset"
)

// Set holds the converted judgments for one evaluation run, one slice per
// query, in the order queries first appear in the input.
type Set struct {
	// Model holds judgments implied by the ranking model's scores.
	Model [][]float64
	// Secondary holds judgments implied by the secondary (baseline scorer)
	// scores over the same documents.
	Secondary [][]float64
	// Baseline holds the raw ground-truth grades in input order.
	Baseline [][]float64
}

// Convert maps ground-truth grades onto the rank order implied by two
// scorers. All vectors are flat and index-aligned: queryDocCounts partitions
// them into contiguous per-query slices. For each query, the ascending-sorted
// grades are scattered onto the ascending-sort permutation of each scorer's
// values, so the document a scorer ranks p-th lowest receives the p-th
// smallest grade.
//
// Ties between scores are broken by input order (stable sort); which tied
// document gets which grade is otherwise unspecified. Mismatched vector
// lengths are not validated and panic at the point of slicing; callers can
// run dataset.CheckBoundaries first. When verbose is set, per-query
// intermediates are logged at debug level.
func Convert(scores []float64, queryDocCounts []int, secondaryScores, labels []float64, verbose bool) *Set {
	set := &Set{
		Model:     make([][]float64, 0, len(queryDocCounts)),
		Secondary: make([][]float64, 0, len(queryDocCounts)),
		Baseline:  make([][]float64, 0, len(queryDocCounts)),
	}

	start, end := 0, 0
	for queryID, count := range queryDocCounts {
		start = end
		end += count

		// Grades must be ascending so that rank position p in the scorer's
		// ascending order receives the p-th smallest grade.
		sortedLabels := make([]float64, count)
		copy(sortedLabels, labels[start:end])
		sort.Float64s(sortedLabels)

		modelJudgments := scatter(scores[start:end], sortedLabels)
		secondaryJudgments := scatter(secondaryScores[start:end], sortedLabels)

		baseline := make([]float64, count)
		copy(baseline, labels[start:end])

		set.Model = append(set.Model, modelJudgments)
		set.Secondary = append(set.Secondary, secondaryJudgments)
		set.Baseline = append(set.Baseline, baseline)

		if verbose {
			slog.Debug("converted query scores",
				"query", queryID,
				"scores", scores[start:end],
				"sortedLabels", sortedLabels,
				"judgments", modelJudgments,
			)
		}
	}

	return set
}

// ConvertFromFrame is Convert with the secondary scorer's values pulled from
// a named column of a per-document feature frame.
func ConvertFromFrame(scores []float64, queryDocCounts []int, features *dataset.Frame, secondaryColumn string, labels []float64, verbose bool) (*Set, error) {
	secondary, err := features.Column(secondaryColumn)
	if err != nil {
		return nil, err
	}
	return Convert(scores, queryDocCounts, secondary, labels, verbose), nil
}

// FromScores converts a single scorer's flat score vector into per-query
// judgment sequences, without the secondary/baseline bookkeeping of Convert.
func FromScores(scores []float64, queryDocCounts []int, labels []float64) [][]float64 {
	out := make([][]float64, 0, len(queryDocCounts))

	start, end := 0, 0
	for _, count := range queryDocCounts {
		start = end
		end += count

		sortedLabels := make([]float64, count)
		copy(sortedLabels, labels[start:end])
		sort.Float64s(sortedLabels)

		out = append(out, scatter(scores[start:end], sortedLabels))
	}

	return out
}

// scatter writes sortedLabels[p] to the index holding the p-th smallest
// score: an inverse-permutation scatter of label rank onto score rank.
func scatter(scores, sortedLabels []float64) []float64 {
	idx := argsort(scores)
	out := make([]float64, len(scores))
	for p, i := range idx {
		out[i] = sortedLabels[p]
	}
	return out
}

// argsort returns the permutation that sorts v ascending, ties in input order.
func argsort(v []float64) []int {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })
	return idx
}
