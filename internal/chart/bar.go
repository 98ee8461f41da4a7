package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ohiodata/birthstats/pkg/models"
)

// reindex orders single-dimension aggregates by the given label list,
// filling absent labels with an empty group.
func reindex(results []models.AggregateResult, labels []string) []models.AggregateResult {
	byKey := make(map[string]models.AggregateResult, len(results))
	for _, r := range results {
		if len(r.Key) == 1 {
			byKey[r.Key[0]] = r
		}
	}
	ordered := make([]models.AggregateResult, len(labels))
	for i, label := range labels {
		r, ok := byKey[label]
		if !ok {
			r = models.AggregateResult{Key: []string{label}}
		}
		ordered[i] = r
	}
	return ordered
}

// GroupedBar renders low and normal birth counts as side-by-side bars,
// one pair per category, ordered by labels.
func GroupedBar(results []models.AggregateResult, labels []string, title, xlabel, ylabel string, theme Theme, path string) error {
	ordered := reindex(results, labels)

	low := make(plotter.Values, len(ordered))
	normal := make(plotter.Values, len(ordered))
	for i, r := range ordered {
		low[i] = float64(r.Low)
		normal[i] = float64(r.Normal)
	}

	barWidth := vg.Points(14)

	lowBars, err := plotter.NewBarChart(low, barWidth)
	if err != nil {
		return fmt.Errorf("building low bars: %w", err)
	}
	lowBars.Color = theme.Low
	lowBars.LineStyle.Width = 0
	lowBars.Offset = -barWidth / 2

	normalBars, err := plotter.NewBarChart(normal, barWidth)
	if err != nil {
		return fmt.Errorf("building normal bars: %w", err)
	}
	normalBars.Color = theme.Normal
	normalBars.LineStyle.Width = 0
	normalBars.Offset = barWidth / 2

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Tick.Label.Rotation = -0.785 // 45 degrees, matching the source charts
	p.X.Tick.Label.XAlign = -0.9
	p.Add(lowBars, normalBars)
	p.Legend.Add("low", lowBars)
	p.Legend.Add("normal", normalBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}

// ShareBar renders each category as a stacked bar of the low and normal
// fractions of that category's births, so every bar with data sums to 1.
// Categories with no births render as empty bars.
func ShareBar(results []models.AggregateResult, labels []string, title, xlabel, ylabel string, theme Theme, path string) error {
	ordered := reindex(results, labels)

	low := make(plotter.Values, len(ordered))
	normal := make(plotter.Values, len(ordered))
	for i, r := range ordered {
		if !r.RateValid {
			continue
		}
		low[i] = r.Rate
		normal[i] = 1 - r.Rate
	}

	barWidth := vg.Points(18)

	lowBars, err := plotter.NewBarChart(low, barWidth)
	if err != nil {
		return fmt.Errorf("building low bars: %w", err)
	}
	lowBars.Color = theme.Low
	lowBars.LineStyle.Width = 0

	normalBars, err := plotter.NewBarChart(normal, barWidth)
	if err != nil {
		return fmt.Errorf("building normal bars: %w", err)
	}
	normalBars.Color = theme.Normal
	normalBars.LineStyle.Width = 0
	normalBars.StackOn(lowBars)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Tick.Label.Rotation = -0.785
	p.X.Tick.Label.XAlign = -0.9
	p.Add(lowBars, normalBars)
	p.Y.Max = 1
	p.Legend.Add("low", lowBars)
	p.Legend.Add("normal", normalBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}
