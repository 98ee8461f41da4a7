package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Datasets  DatasetConfig `yaml:"datasets,omitempty"`
	GeoJSON   string        `yaml:"geojson,omitempty"`    // Ohio county boundaries (GeoJSON)
	OutputDir string        `yaml:"output_dir,omitempty"` // Where rendered charts are written
	Theme     ThemeConfig   `yaml:"theme,omitempty"`
}

// DatasetConfig holds paths to the three source CSV files
type DatasetConfig struct {
	Age      string `yaml:"age,omitempty"`      // Birth weight by mother's age
	Race     string `yaml:"race,omitempty"`     // Birth weight by race/ethnicity
	Counties string `yaml:"counties,omitempty"` // County name to FIPS lookup
}

// ThemeConfig holds chart colors (hex strings like "#2A037D")
type ThemeConfig struct {
	LowColor    string   `yaml:"low_color,omitempty"`
	NormalColor string   `yaml:"normal_color,omitempty"`
	LowScale    []string `yaml:"low_scale,omitempty"`  // Choropleth bins, light to dark
	RaceScale   []string `yaml:"race_scale,omitempty"` // One color per race category
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetAgePath returns the by-age dataset path with a default of data/birth_weight_by_age.csv
func (c *Config) GetAgePath() string {
	if c.Datasets.Age != "" {
		return c.Datasets.Age
	}
	return filepath.Join("data", "birth_weight_by_age.csv")
}

// GetRacePath returns the by-race dataset path with a default of data/birth_weight_by_race.csv
func (c *Config) GetRacePath() string {
	if c.Datasets.Race != "" {
		return c.Datasets.Race
	}
	return filepath.Join("data", "birth_weight_by_race.csv")
}

// GetCountiesPath returns the FIPS lookup path with a default of data/county_fips.csv
func (c *Config) GetCountiesPath() string {
	if c.Datasets.Counties != "" {
		return c.Datasets.Counties
	}
	return filepath.Join("data", "county_fips.csv")
}

// GetGeoJSONPath returns the county boundary file path with a default of data/ohio_counties.geojson
func (c *Config) GetGeoJSONPath() string {
	if c.GeoJSON != "" {
		return c.GeoJSON
	}
	return filepath.Join("data", "ohio_counties.geojson")
}

// GetOutputDir returns the chart output directory with a default of charts
func (c *Config) GetOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return "charts"
}

// GetLowColor returns the color used for low birth weight series
func (c *Config) GetLowColor() string {
	if c.Theme.LowColor != "" {
		return c.Theme.LowColor
	}
	return "#2A037D"
}

// GetNormalColor returns the color used for normal birth weight series
func (c *Config) GetNormalColor() string {
	if c.Theme.NormalColor != "" {
		return c.Theme.NormalColor
	}
	return "#B3E9FF"
}

// GetLowScale returns the choropleth colorscale, light to dark
func (c *Config) GetLowScale() []string {
	if len(c.Theme.LowScale) > 0 {
		return c.Theme.LowScale
	}
	return []string{
		"#B3E9FF", "#A5D2F2", "#97BBE5",
		"#89A4D8", "#7C8DCB", "#6E76BE",
		"#605FB2", "#5348A4", "#453197",
		"#371A8A", "#2A037D",
	}
}

// GetRaceScale returns one color per race category, in display order
func (c *Config) GetRaceScale() []string {
	if len(c.Theme.RaceScale) > 0 {
		return c.Theme.RaceScale
	}
	return []string{
		"#B3E9FF", "#ef331a", "#14ee11",
		"#11eed5", "#d7f132", "#2A037D",
	}
}
