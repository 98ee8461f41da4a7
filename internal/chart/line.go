package chart

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ohiodata/birthstats/pkg/models"
)

// RateLine renders the low-birth-weight rate over time as a dashed line.
// Input aggregates must be keyed by year; groups with no births are
// skipped rather than plotted as zero.
func RateLine(results []models.AggregateResult, title, xlabel, ylabel string, theme Theme, path string) error {
	var pts plotter.XYs
	var ticks []plot.Tick
	for _, r := range results {
		if len(r.Key) != 1 || !r.RateValid {
			continue
		}
		year, err := strconv.Atoi(r.Key[0])
		if err != nil {
			return fmt.Errorf("non-numeric year key %q", r.Key[0])
		}
		pts = append(pts, plotter.XY{X: float64(year), Y: r.Rate})
		ticks = append(ticks, plot.Tick{Value: float64(year), Label: r.Key[0]})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no rate data to plot")
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("building line: %w", err)
	}
	line.Color = theme.Low
	line.Width = vg.Points(2.5)
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = -0.785
	p.X.Tick.Label.XAlign = -0.9
	p.Add(plotter.NewGrid(), line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}
