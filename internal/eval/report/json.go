package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON marshals any report structure to an indented JSON file.
func WriteJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
