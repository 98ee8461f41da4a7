package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ohiodata/birthstats/internal/dataset"
	"github.com/ohiodata/birthstats/internal/geo"
	"github.com/spf13/cobra"
)

var mapOut string

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Render a county choropleth of low birth weight rates",
	Long: `Renders an SVG map of Ohio counties shaded by their low birth weight
percentage. Counties that could not be matched to a FIPS code are left
unshaded.`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVar(&mapOut, "out", "", "Output file (default <output_dir>/county-map.svg)")
	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	records, err := loadAgeRecords(cfg)
	if err != nil {
		return err
	}
	counties, err := loadCounties(cfg)
	if err != nil {
		return err
	}

	results, err := dataset.Aggregate(records, dataset.ByCounty)
	if err != nil {
		return err
	}

	fipsByCounty := make(map[string]string, len(counties))
	for _, c := range counties {
		fipsByCounty[c.County] = c.FIPS
	}

	// Rates keyed by FIPS; counties without a FIPS match are skipped
	// silently, the same way the rendering skips counties with no data.
	rates := make(map[string]float64)
	skipped := 0
	for _, r := range results {
		fips := fipsByCounty[r.Key[0]]
		if fips == "" || !r.RateValid {
			skipped++
			continue
		}
		rates[fips] = r.Rate * 100
	}

	out := mapOut
	if out == "" {
		out = filepath.Join(cfg.GetOutputDir(), "county-map.svg")
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := geo.Choropleth(resolvePath(cfg.GetGeoJSONPath()), rates,
		cfg.GetLowScale(), "Ohio Low Birth Weights by County", out); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d counties shaded", out, len(rates))
	if skipped > 0 {
		fmt.Printf(", %d without FIPS or data", skipped)
	}
	fmt.Println(")")

	return nil
}
