package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ohiodata/birthstats/pkg/models"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show an overview of the loaded datasets",
	Long:  `Displays row counts, the year span, county coverage, and the statewide low birth weight rate.`,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ageRecords, err := loadAgeRecords(cfg)
	if err != nil {
		return err
	}
	raceRecords, err := loadRaceRecords(cfg)
	if err != nil {
		return err
	}

	var low, normal int
	counties := make(map[string]bool)
	unmatched := make(map[string]bool)
	minYear, maxYear := 0, 0

	for _, r := range ageRecords {
		switch r.Weight {
		case models.WeightLow:
			low += r.Count
		case models.WeightNormal:
			normal += r.Count
		}
		counties[r.County] = true
		if r.FIPS == "" {
			unmatched[r.County] = true
		}
		if minYear == 0 || r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}

	fmt.Println("Ohio Birth Weight Datasets")
	fmt.Println("----------------------------------------")
	fmt.Printf("By-age rows:    %s\n", humanize.Comma(int64(len(ageRecords))))
	fmt.Printf("By-race rows:   %s\n", humanize.Comma(int64(len(raceRecords))))
	fmt.Printf("Years:          %d-%d\n", minYear, maxYear)
	fmt.Printf("Counties:       %d (%d without a FIPS match)\n", len(counties), len(unmatched))
	fmt.Println("----------------------------------------")
	fmt.Printf("Low weight:     %s births\n", humanize.Comma(int64(low)))
	fmt.Printf("Normal weight:  %s births\n", humanize.Comma(int64(normal)))
	if total := low + normal; total > 0 {
		fmt.Printf("Statewide rate: %.2f%% of %s births\n",
			float64(low)/float64(total)*100, humanize.Comma(int64(total)))
	}

	return nil
}
