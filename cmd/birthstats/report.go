package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ohiodata/birthstats/internal/config"
	"github.com/ohiodata/birthstats/internal/dataset"
	"github.com/ohiodata/birthstats/pkg/models"
	"github.com/spf13/cobra"
)

var reportBy string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print an aggregate table for one or more dimensions",
	Long: `Groups birth records by the given dimensions and prints low, normal, and
total counts with the low birth weight rate per group.

Dimensions using the by-age dataset: county, year, age.
Dimensions using the by-race dataset: race, ethnicity (optionally with county, year).`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportBy, "by", "year", "Comma-separated grouping dimensions")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var dims []dataset.Dimension
	for _, name := range strings.Split(reportBy, ",") {
		dim, err := dataset.ParseDimension(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		dims = append(dims, dim)
	}

	records, err := recordsFor(cfg, dims)
	if err != nil {
		return err
	}

	results, err := dataset.Aggregate(records, dims...)
	if err != nil {
		return err
	}

	// Header
	var header []string
	for _, d := range dims {
		header = append(header, strings.ToUpper(string(d)))
	}
	fmt.Printf("%-40s %12s %12s %12s %8s\n", strings.Join(header, " / "), "LOW", "NORMAL", "TOTAL", "RATE")
	fmt.Println(strings.Repeat("-", 88))

	for _, r := range results {
		rate := "-"
		if r.RateValid {
			rate = fmt.Sprintf("%.4f", r.Rate)
		}
		fmt.Printf("%-40s %12s %12s %12s %8s\n",
			strings.Join(r.Key, " / "),
			humanize.Comma(int64(r.Low)),
			humanize.Comma(int64(r.Normal)),
			humanize.Comma(int64(r.Total)),
			rate)
	}
	fmt.Println(strings.Repeat("-", 88))
	fmt.Printf("%d groups\n", len(results))

	return nil
}

// recordsFor picks the dataset that carries every requested dimension:
// age aggregates come from the by-age export, race and ethnicity from the
// by-race export, county and year from either (by-age preferred).
func recordsFor(cfg *config.Config, dims []dataset.Dimension) ([]models.BirthRecord, error) {
	var needsAge, needsRace bool
	for _, d := range dims {
		switch d {
		case dataset.ByAge:
			needsAge = true
		case dataset.ByRace, dataset.ByEthnicity:
			needsRace = true
		}
	}
	if needsAge && needsRace {
		return nil, fmt.Errorf("age cannot be combined with race or ethnicity: the source datasets are separate")
	}
	if needsRace {
		return loadRaceRecords(cfg)
	}
	return loadAgeRecords(cfg)
}
