package main

import (
	"fmt"
	"sort"

	"github.com/ohiodata/birthstats/pkg/models"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the source datasets",
	Long: `Loads and cleans all three datasets and reports problems: years outside
the expected 2006-2017 span, counties that fail the FIPS join, and duplicate
county entries in the lookup table. Join mismatches are warnings, not errors.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	counties, err := loadCounties(cfg)
	if err != nil {
		return err
	}

	// The lookup must carry one FIPS code per county name.
	seen := make(map[string]string, len(counties))
	duplicates := 0
	for _, c := range counties {
		if prev, ok := seen[c.County]; ok && prev != c.FIPS {
			fmt.Printf("WARN: county %q maps to both FIPS %s and %s\n", c.County, prev, c.FIPS)
			duplicates++
		}
		seen[c.County] = c.FIPS
	}

	problems := duplicates
	for _, name := range []string{"age", "race"} {
		var records []models.BirthRecord
		if name == "age" {
			records, err = loadAgeRecords(cfg)
		} else {
			records, err = loadRaceRecords(cfg)
		}
		if err != nil {
			return err
		}

		unmatched := make(map[string]bool)
		badYears := 0
		for _, r := range records {
			if r.FIPS == "" {
				unmatched[r.County] = true
			}
			if r.Year < 2006 || r.Year > 2017 {
				badYears++
			}
		}

		fmt.Printf("%s dataset: %d rows\n", name, len(records))
		if badYears > 0 {
			fmt.Printf("WARN: %d rows outside the 2006-2017 span\n", badYears)
			problems += badYears
		}
		if len(unmatched) > 0 {
			names := make([]string, 0, len(unmatched))
			for n := range unmatched {
				names = append(names, n)
			}
			sort.Strings(names)
			fmt.Printf("WARN: %d counties without a FIPS match: %v\n", len(names), names)
			problems += len(names)
		}
	}

	if problems == 0 {
		fmt.Println("OK: all checks passed")
	} else {
		fmt.Printf("%d warnings\n", problems)
	}

	return nil
}
