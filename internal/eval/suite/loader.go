package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/searchlab/ltreval/internal/apperr"
)

type LoadedSuite struct {
	Suite *EvalSuite
	Dir   string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Dir = filepath.Dir(path)
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s EvalSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, apperr.NewValidationWrap("parse suite YAML", err)
	}

	if s.KStart < 1 {
		return nil, fmt.Errorf("k_start must be positive, got %d", s.KStart)
	}
	if s.KEnd < s.KStart {
		return nil, fmt.Errorf("k_end %d is below k_start %d", s.KEnd, s.KStart)
	}
	if s.Method != 0 && s.Method != 1 {
		return nil, fmt.Errorf("method must be 0 or 1, got %d", s.Method)
	}
	if len(s.Folds) == 0 {
		return nil, fmt.Errorf("suite has no folds")
	}

	for i, f := range s.Folds {
		if f.Labels == "" {
			return nil, fmt.Errorf("fold %d has no labels file", i)
		}
		if f.LabelColumn == "" {
			return nil, fmt.Errorf("fold %d has no label_column", i)
		}
		if len(f.QueryDocCounts) == 0 {
			return nil, fmt.Errorf("fold %d has no query_doc_counts", i)
		}
		for j, c := range f.QueryDocCounts {
			if c <= 0 {
				return nil, fmt.Errorf("fold %d query %d has non-positive doc count %d", i, j, c)
			}
		}
		if len(f.Series) == 0 {
			return nil, fmt.Errorf("fold %d has no score series", i)
		}

		seen := make(map[string]bool, len(f.Series))
		for _, sf := range f.Series {
			if sf.Name == "" {
				return nil, fmt.Errorf("fold %d has a score series with no name", i)
			}
			if sf.Path == "" {
				return nil, fmt.Errorf("fold %d series %q has no path", i, sf.Name)
			}
			if sf.Column == "" {
				return nil, fmt.Errorf("fold %d series %q has no column", i, sf.Name)
			}
			if seen[sf.Name] {
				return nil, fmt.Errorf("fold %d has duplicate series name %q", i, sf.Name)
			}
			seen[sf.Name] = true
		}
	}

	return &LoadedSuite{Suite: &s}, nil
}

// ResolvePath joins a file path from the suite with the suite's directory,
// so relative paths resolve next to the YAML file.
func (ls *LoadedSuite) ResolvePath(path string) string {
	if filepath.IsAbs(path) || ls.Dir == "" {
		return path
	}
	return filepath.Join(ls.Dir, path)
}
