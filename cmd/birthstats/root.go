package main

import (
	"fmt"
	"path/filepath"

	"github.com/ohiodata/birthstats/internal/config"
	"github.com/ohiodata/birthstats/internal/dataset"
	"github.com/ohiodata/birthstats/pkg/models"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "birthstats",
	Short: "Analyze Ohio Department of Health birth weight data",
	Long: `Birthstats is a CLI tool to explore Ohio birth weight records from 2006-2017.
It loads the Department of Health CSV exports, aggregates low and normal birth
weight counts by county, year, mother's age, and race/ethnicity, and renders
charts and a county choropleth map.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the source CSVs (overrides configured paths)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// resolvePath applies the --data-dir override to a configured file path
func resolvePath(path string) string {
	if dataDir != "" {
		return filepath.Join(dataDir, filepath.Base(path))
	}
	return path
}

// loadCounties loads the county/FIPS lookup table
func loadCounties(cfg *config.Config) ([]models.CountyFIPS, error) {
	table, err := dataset.LoadTable(resolvePath(cfg.GetCountiesPath()))
	if err != nil {
		return nil, fmt.Errorf("loading county lookup: %w", err)
	}
	counties, err := dataset.CleanCounties(table)
	if err != nil {
		return nil, fmt.Errorf("cleaning county lookup: %w", err)
	}
	return counties, nil
}

// loadAgeRecords loads and cleans the by-age dataset with FIPS joined
func loadAgeRecords(cfg *config.Config) ([]models.BirthRecord, error) {
	table, err := dataset.LoadTable(resolvePath(cfg.GetAgePath()))
	if err != nil {
		return nil, fmt.Errorf("loading age dataset: %w", err)
	}
	records, err := dataset.CleanAge(table)
	if err != nil {
		return nil, fmt.Errorf("cleaning age dataset: %w", err)
	}
	counties, err := loadCounties(cfg)
	if err != nil {
		return nil, err
	}
	return dataset.JoinFIPS(records, counties), nil
}

// loadRaceRecords loads and cleans the by-race dataset with FIPS joined
func loadRaceRecords(cfg *config.Config) ([]models.BirthRecord, error) {
	table, err := dataset.LoadTable(resolvePath(cfg.GetRacePath()))
	if err != nil {
		return nil, fmt.Errorf("loading race dataset: %w", err)
	}
	records, err := dataset.CleanRace(table)
	if err != nil {
		return nil, fmt.Errorf("cleaning race dataset: %w", err)
	}
	counties, err := loadCounties(cfg)
	if err != nil {
		return nil, err
	}
	return dataset.JoinFIPS(records, counties), nil
}
