// Package suite loads YAML descriptions of evaluation runs: which score
// files to grade, against which labels, over which cutoff range, grouped
// into cross-validation folds.
package suite

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/searchlab/ltreval/pkg/stringsutil"
)

type EvalSuite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	KStart      int    `yaml:"k_start"`
	KEnd        int    `yaml:"k_end"`
	Method      int    `yaml:"method"`
	Folds       []Fold `yaml:"folds"`
}

// Fold is one repeated experiment: a label file, the query grouping of its
// rows, and one score file per ranking under evaluation.
type Fold struct {
	ID             uuid.UUID   `yaml:"id"`
	Labels         string      `yaml:"labels"`
	LabelColumn    string      `yaml:"label_column"`
	QueryDocCounts []int       `yaml:"query_doc_counts"`
	Series         []ScoreFile `yaml:"series"`
}

type ScoreFile struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Column string `yaml:"column"`
}

// SelectSeries restricts the fold's score files to the given names, in the
// order requested. Empty entries left behind by comma splitting are dropped;
// an empty selection keeps every series. Unknown names are an error.
func (f Fold) SelectSeries(names []string) ([]ScoreFile, error) {
	names = stringsutil.RemoveEmptyStrings(names)
	if len(names) == 0 {
		return f.Series, nil
	}

	byName := make(map[string]ScoreFile, len(f.Series))
	for _, sf := range f.Series {
		byName[sf.Name] = sf
	}

	selected := make([]ScoreFile, 0, len(names))
	for _, n := range names {
		sf, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("fold has no series named %q", n)
		}
		selected = append(selected, sf)
	}
	return selected, nil
}
