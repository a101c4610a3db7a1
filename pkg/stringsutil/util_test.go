package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "plain text untouched",
			query: "cheap flights to oslo",
			want:  "cheap flights to oslo",
		},
		{
			name:  "single reserved char",
			query: "cats+dogs",
			want:  `cats\+dogs`,
		},
		{
			name:  "backslash escaped once",
			query: `a\b`,
			want:  `a\\b`,
		},
		{
			name:  "every reserved char",
			query: `\+-&|!(){}[]^"~*?:/`,
			want:  `\\\+\-\&\|\!\(\)\{\}\[\]\^\"\~\*\?\:\/`,
		},
		{
			name:  "empty",
			query: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeQuery(tt.query))
		})
	}
}

func TestChunk(t *testing.T) {
	got := Chunk([]string{"A", "B", "C", "D", "E", "F", "G"}, 3, "x")

	assert.Equal(t, [][]string{
		{"A", "B", "C"},
		{"D", "E", "F"},
		{"G", "x", "x"},
	}, got)
}

func TestChunk_ExactFit(t *testing.T) {
	got := Chunk([]int{1, 2, 3, 4}, 2, 0)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, got)
}

func TestChunk_Degenerate(t *testing.T) {
	assert.Nil(t, Chunk([]int{1, 2}, 0, 0))
	assert.Nil(t, Chunk([]int{1, 2}, -1, 0))
	assert.Nil(t, Chunk[int](nil, 3, 0))
}

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"", "a", "", "b", ""}))
	assert.Nil(t, RemoveEmptyStrings([]string{"", ""}))
}
