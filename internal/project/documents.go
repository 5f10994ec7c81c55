package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vastuhome/layoutengine/internal/model"
)

// LoadRequest reads an optimization request document from a JSON file.
func LoadRequest(path string) (model.OptimizeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.OptimizeRequest{}, err
	}
	var req model.OptimizeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return model.OptimizeRequest{}, fmt.Errorf("parse request %s: %w", path, err)
	}
	return req, nil
}

// SaveResult writes an optimization result to a JSON file, creating
// missing parent directories.
func SaveResult(path string, result model.OptimizeResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
