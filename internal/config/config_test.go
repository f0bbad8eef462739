package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())
	assert.Equal(t, 5, d.Formation.Rows)
	assert.Equal(t, 11, d.Formation.Columns)
	assert.Equal(t, 24.0, d.Canvas.LeftEdge)
	assert.Equal(t, 1896.0, d.Canvas.RightEdge)
}

func TestLoad_OverlaysOntoDefaults(t *testing.T) {
	path := writeTuning(t, `
formation:
  initialInterval: 30
fire:
  maxVolley: 6
`)
	tuning, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, tuning.Formation.InitialInterval)
	assert.Equal(t, 6, tuning.Fire.MaxVolley)
	// Untouched sections keep defaults.
	assert.Equal(t, Default().Player, tuning.Player)
	assert.Equal(t, 11, tuning.Formation.Columns)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	tuning, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), tuning)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read tuning file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeTuning(t, "formation: [not, a, map")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := writeTuning(t, `
formation:
  minInterval: 50
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minInterval")
}

func TestValidate_Cases(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
		want   string
	}{
		{"zero pixel", func(t *Tuning) { t.Canvas.PixelSize = 0 }, "pixelSize"},
		{"edges swapped", func(t *Tuning) { t.Canvas.LeftEdge = 2000 }, "edges"},
		{"no columns", func(t *Tuning) { t.Formation.Columns = 0 }, "rows and columns"},
		{"bad ramp", func(t *Tuning) { t.Formation.Ramp[0].Interval = 0 }, "ramp[0]"},
		{"short row points", func(t *Tuning) { t.Scoring.RowPoints = []int{10} }, "rowPoints"},
		{"volley too small", func(t *Tuning) { t.Fire.MaxVolley = 1 }, "maxVolley"},
		{"jitter too wide", func(t *Tuning) { t.UFO.Jitter = t.UFO.BaseInterval }, "ufo spawn window"},
		{"no ufo points", func(t *Tuning) { t.Scoring.UFOPoints = nil }, "ufoPoints"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tuning := Default()
			tc.mutate(&tuning)
			err := tuning.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestMarshal_RoundTripsThroughLoad(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	path := writeTuning(t, string(data))
	tuning, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), tuning)
}
