package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecisionAtK(t *testing.T) {
	tests := []struct {
		name      string
		grades    []float64
		k         int
		threshold float64
		want      float64
	}{
		{
			name:      "empty",
			grades:    nil,
			k:         5,
			threshold: 1,
			want:      0,
		},
		{
			name:      "all relevant",
			grades:    []float64{2, 1, 3},
			k:         3,
			threshold: 1,
			want:      1.0,
		},
		{
			name:      "half relevant",
			grades:    []float64{2, 0, 1, 0},
			k:         4,
			threshold: 1,
			want:      0.5,
		},
		{
			name:      "none relevant",
			grades:    []float64{0, 0, 0},
			k:         3,
			threshold: 1,
			want:      0,
		},
		{
			name:      "k larger than list",
			grades:    []float64{2, 2},
			k:         5,
			threshold: 1,
			want:      0.4, // 2/5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrecisionAtK(tt.grades, tt.k, tt.threshold)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRecallAtK(t *testing.T) {
	tests := []struct {
		name      string
		grades    []float64
		k         int
		threshold float64
		want      float64
	}{
		{
			name:      "no relevant grades",
			grades:    []float64{0, 0, 0},
			k:         3,
			threshold: 1,
			want:      0,
		},
		{
			name:      "all found in top-K",
			grades:    []float64{2, 1, 0, 0},
			k:         2,
			threshold: 1,
			want:      1.0,
		},
		{
			name:      "half found in top-K",
			grades:    []float64{2, 0, 1, 0},
			k:         1,
			threshold: 1,
			want:      0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecallAtK(tt.grades, tt.k, tt.threshold)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestReciprocalRank(t *testing.T) {
	assert.InDelta(t, 1.0, ReciprocalRank([]float64{3, 0, 0}, 1), 1e-9)
	assert.InDelta(t, 0.5, ReciprocalRank([]float64{0, 2, 0}, 1), 1e-9)
	assert.InDelta(t, 1.0/3.0, ReciprocalRank([]float64{0, 0, 1}, 1), 1e-9)
	assert.Zero(t, ReciprocalRank([]float64{0, 0, 0}, 1))
	assert.Zero(t, ReciprocalRank(nil, 1))
}
