package sheets

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// cachePayload mirrors the shape of the raw API response on disk, so the
// cache stays readable next to the original exports.
type cachePayload struct {
	Values [][]string `json:"values"`
}

func loadCache(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload cachePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload.Values, nil
}

func saveCache(path string, values [][]string) error {
	data, err := json.Marshal(cachePayload{Values: values})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
