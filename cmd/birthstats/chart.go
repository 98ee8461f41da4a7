package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ohiodata/birthstats/internal/chart"
	"github.com/ohiodata/birthstats/internal/config"
	"github.com/ohiodata/birthstats/internal/dataset"
	"github.com/spf13/cobra"
)

var chartOut string

var chartKinds = []string{
	"age-totals", "age-share", "race-totals", "race-share",
	"ethnicity-pie", "annual-line", "high-risk-teen", "high-risk-older",
	"race-trend",
}

var chartCmd = &cobra.Command{
	Use:   "chart [kind]",
	Short: "Render an analysis chart to the output directory",
	Long: `Renders one of the analysis charts as an image file.

Available kinds:
  age-totals       low vs normal birth counts per age range
  age-share        low/normal share of births per age range
  race-totals      low vs normal birth counts per race
  race-share       low/normal share of births per race
  ethnicity-pie    low birth weight share for Hispanic and Non-Hispanic births
  annual-line      statewide low birth weight rate per year
  high-risk-teen   teen births (under 18) per year, low vs normal
  high-risk-older  births to mothers 45 and older per year, low vs normal
  race-trend       total births per race per year`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartOut, "out", "", "Output file (default <output_dir>/<kind>.png, .svg for ethnicity-pie)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	kind := args[0]
	valid := false
	for _, k := range chartKinds {
		if k == kind {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown chart kind: %s (run 'birthstats chart --help' for the list)", kind)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	theme, err := chart.NewTheme(cfg)
	if err != nil {
		return fmt.Errorf("resolving theme: %w", err)
	}

	out := chartOut
	if out == "" {
		ext := ".png"
		if kind == "ethnicity-pie" {
			ext = ".svg"
		}
		out = filepath.Join(cfg.GetOutputDir(), kind+ext)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	switch kind {
	case "age-totals":
		err = ageBars(cfg, theme, out, false)
	case "age-share":
		err = ageBars(cfg, theme, out, true)
	case "race-totals":
		err = raceBars(cfg, theme, out, false)
	case "race-share":
		err = raceBars(cfg, theme, out, true)
	case "ethnicity-pie":
		err = ethnicityPies(cfg, out)
	case "annual-line":
		err = annualLine(cfg, theme, out)
	case "high-risk-teen":
		err = highRiskArea(cfg, theme, out, []string{"Less than 15", "15 to 17"}, "Annual Teen Births")
	case "high-risk-older":
		err = highRiskArea(cfg, theme, out, []string{"45 and older"}, "Annual Births to Mothers 45 and Older")
	case "race-trend":
		err = raceTrend(cfg, theme, out)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}

func ageBars(cfg *config.Config, theme chart.Theme, out string, share bool) error {
	records, err := loadAgeRecords(cfg)
	if err != nil {
		return err
	}
	results, err := dataset.Aggregate(records, dataset.ByAge)
	if err != nil {
		return err
	}
	title := "Birth Weight Relative to Age of Mother"
	if share {
		return chart.ShareBar(results, dataset.AgeRanges, title,
			"Age of Mother", "Fraction of Total Births in Age Range", theme, out)
	}
	return chart.GroupedBar(results, dataset.AgeRanges, title,
		"Age of Mother", "Births", theme, out)
}

func raceBars(cfg *config.Config, theme chart.Theme, out string, share bool) error {
	records, err := loadRaceRecords(cfg)
	if err != nil {
		return err
	}
	results, err := dataset.Aggregate(records, dataset.ByRace)
	if err != nil {
		return err
	}
	title := "Birth Weight Relative to Race"
	if share {
		return chart.ShareBar(results, dataset.Races, title,
			"Race", "Fraction of Total Births per Race", theme, out)
	}
	return chart.GroupedBar(results, dataset.Races, title,
		"Race", "Births", theme, out)
}

func ethnicityPies(cfg *config.Config, out string) error {
	records, err := loadRaceRecords(cfg)
	if err != nil {
		return err
	}
	results, err := dataset.Aggregate(records, dataset.ByEthnicity)
	if err != nil {
		return err
	}

	var groups []chart.PieGroup
	for _, label := range []string{"Hispanic", "Non-Hispanic"} {
		r := dataset.Find(results, label)
		if r == nil {
			return fmt.Errorf("no births recorded for ethnicity %q", label)
		}
		groups = append(groups, chart.PieGroup{
			Title: label,
			Slices: []chart.Slice{
				{Label: "low", Value: float64(r.Low), Color: cfg.GetLowColor()},
				{Label: "normal", Value: float64(r.Normal), Color: cfg.GetNormalColor()},
			},
		})
	}

	return chart.Pies("Percentage of Low Birth Weights per Ethnicity", groups, out)
}

func annualLine(cfg *config.Config, theme chart.Theme, out string) error {
	records, err := loadAgeRecords(cfg)
	if err != nil {
		return err
	}
	results, err := dataset.Aggregate(records, dataset.ByYear)
	if err != nil {
		return err
	}
	return chart.RateLine(results, "Percentage of Low Birth Weights per Year",
		"Year", "Fraction of Annual Births", theme, out)
}

func highRiskArea(cfg *config.Config, theme chart.Theme, out string, ages []string, title string) error {
	records, err := loadAgeRecords(cfg)
	if err != nil {
		return err
	}
	results, err := dataset.Aggregate(records, dataset.ByYear, dataset.ByAge)
	if err != nil {
		return err
	}

	years := dataset.Years()
	low := make([]float64, len(years))
	normal := make([]float64, len(years))
	for i, year := range years {
		for _, age := range ages {
			if r := dataset.Find(results, strconv.Itoa(year), age); r != nil {
				low[i] += float64(r.Low)
				normal[i] += float64(r.Normal)
			}
		}
	}

	series := []chart.Series{
		{Name: "low", Values: low},
		{Name: "normal", Values: normal},
	}
	colors := []color.Color{theme.Low, theme.Normal}
	return chart.StackedArea(years, series, colors, title, "Year", "Births", out)
}

func raceTrend(cfg *config.Config, theme chart.Theme, out string) error {
	records, err := loadRaceRecords(cfg)
	if err != nil {
		return err
	}
	results, err := dataset.Aggregate(records, dataset.ByYear, dataset.ByRace)
	if err != nil {
		return err
	}

	years := dataset.Years()
	series := make([]chart.Series, len(dataset.Races))
	for i, race := range dataset.Races {
		values := make([]float64, len(years))
		for j, year := range years {
			if r := dataset.Find(results, strconv.Itoa(year), race); r != nil {
				values[j] = float64(r.Total)
			}
		}
		series[i] = chart.Series{Name: race, Values: values}
	}

	return chart.StackedArea(years, series, theme.RaceScale,
		"Change in Race of all Births", "Year", "Births", out)
}
