package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// renderJSON pretty-prints v with two-space indent, matching the exported
// document format.
func renderJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return string(data), nil
}

// writeJSONFile exports v as a pretty-printed JSON document at path.
func writeJSONFile(path string, v interface{}) error {
	data, err := renderJSON(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(data+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
