package judgment

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchlab/ltreval/internal/dataset"
)

func TestConvert_SingleQuery(t *testing.T) {
	// A query with ground truth [5 4 3 2 1] scored [0.8 1.2 0.5 -1.3 -0.5]
	// maps back to judgments [4 5 3 1 2]: the highest score gets the highest
	// grade, the lowest score the lowest.
	scores := []float64{0.8, 1.2, 0.5, -1.3, -0.5}
	labels := []float64{5, 4, 3, 2, 1}
	secondary := []float64{1, 2, 3, 4, 5}

	set := Convert(scores, []int{5}, secondary, labels, false)

	require.Len(t, set.Model, 1)
	assert.Equal(t, []float64{4, 5, 3, 1, 2}, set.Model[0])
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, set.Secondary[0])
	assert.Equal(t, labels, set.Baseline[0])
}

func TestConvert_PerfectScorerReproducesLabels(t *testing.T) {
	// Strictly increasing scores with strictly increasing grades in the same
	// order: the scorer predicts the ground truth exactly.
	scores := []float64{-2.0, -0.5, 0.1, 3.7}
	labels := []float64{1, 2, 3, 4}

	set := Convert(scores, []int{4}, scores, labels, false)

	assert.Equal(t, labels, set.Model[0])
	assert.Equal(t, labels, set.Secondary[0])
}

func TestConvert_TiedScoresPreserveGradeMultiset(t *testing.T) {
	// All-equal scores make the assignment permutation-dependent; only the
	// multiset of output grades is defined.
	scores := []float64{1.0, 1.0, 1.0, 1.0}
	labels := []float64{3, 0, 2, 1}

	set := Convert(scores, []int{4}, scores, labels, false)

	got := append([]float64(nil), set.Model[0]...)
	want := append([]float64(nil), labels...)
	sort.Float64s(got)
	sort.Float64s(want)
	assert.Equal(t, want, got)
}

func TestConvert_MultipleQueriesShapes(t *testing.T) {
	counts := []int{5, 4, 3}
	n := 12
	scores := make([]float64, n)
	labels := make([]float64, n)
	for i := range scores {
		scores[i] = float64(n - i)
		labels[i] = float64(i % 4)
	}

	set := Convert(scores, counts, scores, labels, false)

	require.Len(t, set.Model, len(counts))
	require.Len(t, set.Secondary, len(counts))
	require.Len(t, set.Baseline, len(counts))
	for i, c := range counts {
		assert.Len(t, set.Model[i], c)
		assert.Len(t, set.Secondary[i], c)
		assert.Len(t, set.Baseline[i], c)
	}
}

func TestConvert_QueriesAreIndependent(t *testing.T) {
	// Two identical queries must convert identically regardless of position.
	scores := []float64{0.3, 0.9, 0.1, 0.3, 0.9, 0.1}
	labels := []float64{1, 2, 0, 1, 2, 0}

	set := Convert(scores, []int{3, 3}, scores, labels, false)

	assert.Equal(t, set.Model[0], set.Model[1])
}

func TestConvert_BaselineIsCopied(t *testing.T) {
	labels := []float64{2, 1, 0}
	set := Convert([]float64{1, 2, 3}, []int{3}, []float64{3, 2, 1}, labels, false)

	set.Baseline[0][0] = 99
	assert.Equal(t, []float64{2, 1, 0}, labels)
}

func TestConvertFromFrame(t *testing.T) {
	f := dataset.NewFrame([]string{"search.score"}, 3)
	require.NoError(t, f.SetColumn("search.score", []float64{0.5, 0.1, 0.9}))

	scores := []float64{1, 2, 3}
	labels := []float64{0, 1, 2}

	set, err := ConvertFromFrame(scores, []int{3}, f, "search.score", labels, false)
	require.NoError(t, err)

	// Secondary ranks doc 1 lowest, doc 0 middle, doc 2 highest.
	assert.Equal(t, []float64{1, 0, 2}, set.Secondary[0])

	_, err = ConvertFromFrame(scores, []int{3}, f, "missing", labels, false)
	assert.Error(t, err)
}

func TestFromScores(t *testing.T) {
	scores := []float64{0.8, 1.2, 0.5, -1.3, -0.5}
	labels := []float64{5, 4, 3, 2, 1}

	got := FromScores(scores, []int{5}, labels)

	require.Len(t, got, 1)
	assert.Equal(t, []float64{4, 5, 3, 1, 2}, got[0])
}
