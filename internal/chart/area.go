package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Series is one named band in a stacked area chart
type Series struct {
	Name   string
	Values []float64 // one value per x position
}

// StackedArea renders the series as bands stacked bottom-up over the
// given years. Colors are applied per series in order; drawing the
// cumulative sums top-down lets each lower band paint over the fill of
// the ones above it.
func StackedArea(years []int, series []Series, colors []color.Color, title, xlabel, ylabel, path string) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to plot")
	}
	if len(colors) < len(series) {
		return fmt.Errorf("need %d colors, have %d", len(series), len(colors))
	}
	for _, s := range series {
		if len(s.Values) != len(years) {
			return fmt.Errorf("series %q has %d values for %d years", s.Name, len(s.Values), len(years))
		}
	}

	// Cumulative height of bands 0..i at each x.
	cum := make([][]float64, len(series))
	for i := range series {
		cum[i] = make([]float64, len(years))
		for j, v := range series[i].Values {
			cum[i][j] = v
			if i > 0 {
				cum[i][j] += cum[i-1][j]
			}
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	var ticks []plot.Tick
	for _, y := range years {
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = -0.785
	p.X.Tick.Label.XAlign = -0.9

	for i := len(series) - 1; i >= 0; i-- {
		pts := make(plotter.XYs, len(years))
		for j, y := range years {
			pts[j] = plotter.XY{X: float64(y), Y: cum[i][j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("building band %q: %w", series[i].Name, err)
		}
		line.FillColor = colors[i]
		line.LineStyle = draw.LineStyle{Color: colors[i], Width: vg.Points(0.5)}
		p.Add(line)
	}

	// Legend entries in series order, not draw order.
	for i, s := range series {
		swatch, err := plotter.NewBarChart(plotter.Values{0}, vg.Points(1))
		if err != nil {
			return fmt.Errorf("building legend swatch: %w", err)
		}
		swatch.Color = colors[i]
		swatch.LineStyle.Width = 0
		p.Legend.Add(s.Name, swatch)
	}
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}
