package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("data", "birth_weight_by_age.csv"), cfg.GetAgePath())
	assert.Equal(t, filepath.Join("data", "birth_weight_by_race.csv"), cfg.GetRacePath())
	assert.Equal(t, filepath.Join("data", "county_fips.csv"), cfg.GetCountiesPath())
	assert.Equal(t, filepath.Join("data", "ohio_counties.geojson"), cfg.GetGeoJSONPath())
	assert.Equal(t, "charts", cfg.GetOutputDir())
	assert.Equal(t, "#2A037D", cfg.GetLowColor())
	assert.Equal(t, "#B3E9FF", cfg.GetNormalColor())
	assert.Len(t, cfg.GetLowScale(), 11)
	assert.Len(t, cfg.GetRaceScale(), 6)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		Datasets: DatasetConfig{
			Age:      "age.csv",
			Race:     "race.csv",
			Counties: "fips.csv",
		},
		OutputDir: "out",
		Theme: ThemeConfig{
			LowColor: "#000000",
			LowScale: []string{"#111111", "#222222"},
		},
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "age.csv", loaded.GetAgePath())
	assert.Equal(t, "race.csv", loaded.GetRacePath())
	assert.Equal(t, "fips.csv", loaded.GetCountiesPath())
	assert.Equal(t, "out", loaded.GetOutputDir())
	assert.Equal(t, "#000000", loaded.GetLowColor())
	assert.Equal(t, []string{"#111111", "#222222"}, loaded.GetLowScale())

	// Unset values still fall back to defaults.
	assert.Equal(t, "#B3E9FF", loaded.GetNormalColor())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(path, &Config{}))

	// Overwrite with invalid YAML.
	require.NoError(t, os.WriteFile(path, []byte("datasets: [broken"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
