// Package project persists user-facing documents as JSON: named
// constraint presets under the user config dir, and request/result
// documents for the CLI.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vastuhome/layoutengine/internal/model"
)

// Preset is a named constraint configuration: a clearance table plus
// fitness weights. Presets let users re-run optimizations with tuned
// constraints without editing every request.
type Preset struct {
	Name      string                `json:"name"`
	Clearance model.ClearanceConfig `json:"clearance"`
	Weights   model.Weights         `json:"weights"`
}

// DefaultPresetsDir returns the default directory for stored presets.
func DefaultPresetsDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "layoutengine"), nil
}

// DefaultPresetsPath returns the default presets file path.
func DefaultPresetsPath() (string, error) {
	dir, err := DefaultPresetsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.json"), nil
}

// SavePresets writes presets to a JSON file, creating missing parent
// directories.
func SavePresets(path string, presets []Preset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads presets from a JSON file. A missing file yields an
// empty slice with no error.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Preset{}, nil
		}
		return nil, err
	}
	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// FindPreset returns the preset with the given name.
func FindPreset(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset %q not found", name)
}
