package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastuhome/layoutengine/internal/model"
)

func samplePresets() []Preset {
	return []Preset{
		{
			Name: "cozy",
			Clearance: model.ClearanceConfig{
				Categories:   map[string]model.ClearanceRule{"bed": {ItemGap: 0.4}},
				WalkwayWidth: 0.5,
			},
			Weights: model.DefaultWeights(),
		},
		{
			Name:      "accessible",
			Clearance: model.DefaultClearanceConfig(),
			Weights:   model.DefaultWeights(),
		},
	}
}

func TestPresets_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.json")

	require.NoError(t, SavePresets(path, samplePresets()))

	loaded, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, samplePresets(), loaded)
}

func TestLoadPresets_MissingFile(t *testing.T) {
	presets, err := LoadPresets(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestFindPreset(t *testing.T) {
	presets := samplePresets()

	p, err := FindPreset(presets, "cozy")
	require.NoError(t, err)
	assert.Equal(t, 0.4, p.Clearance.Rule("bed").ItemGap)

	_, err = FindPreset(presets, "missing")
	assert.Error(t, err)
}

func TestRequestResult_Documents(t *testing.T) {
	dir := t.TempDir()

	reqPath := filepath.Join(dir, "request.json")
	req := model.OptimizeRequest{
		Boundary: model.Boundary{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}},
		Items:    []model.Item{{ID: "bed", Category: "bed", Width: 2, Depth: 1.6, Rotatable: true}},
	}
	data := `{
  "boundary": [{"x":0,"y":0},{"x":4,"y":0},{"x":4,"y":3},{"x":0,"y":3}],
  "items": [{"id":"bed","category":"bed","width":2,"depth":1.6,"rotatable":true}]
}`
	require.NoError(t, os.WriteFile(reqPath, []byte(data), 0644))

	loaded, err := LoadRequest(reqPath)
	require.NoError(t, err)
	assert.Equal(t, req, loaded)

	resPath := filepath.Join(dir, "out", "result.json")
	result := model.OptimizeResult{
		Layout:   model.Layout{{ItemID: "bed", X: 1.2, Y: 1, Rotation: model.Rot0}},
		Feasible: true,
		Fitness:  1.5,
	}
	require.NoError(t, SaveResult(resPath, result))

	assert.FileExists(t, resPath)
}

func TestLoadRequest_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadRequest(path)
	assert.Error(t, err)
}
