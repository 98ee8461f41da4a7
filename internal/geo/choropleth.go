package geo

import (
	"fmt"
	"math"
	"os"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// rateBins are the percentage endpoints of the choropleth bins: below 5%
// falls in the first bin, 50% and above in the last.
var rateBins = []float64{5, 10, 15, 20, 25, 30, 35, 40, 45, 50}

// noDataFill is used for counties with no joined rate
const noDataFill = "#f0f0f0"

// Choropleth renders county polygons from a GeoJSON boundary file, shaded
// by their low-birth-weight percentage. rates maps 5-digit FIPS codes to
// percentages out of 100; counties absent from rates (including records
// that failed the FIPS join upstream) are drawn unshaded, never an error.
// scale must hold one color per bin, light to dark.
func Choropleth(geojsonPath string, rates map[string]float64, scale []string, title, out string) error {
	if len(scale) != len(rateBins)+1 {
		return fmt.Errorf("colorscale needs %d colors, have %d", len(rateBins)+1, len(scale))
	}

	data, err := os.ReadFile(geojsonPath)
	if err != nil {
		return fmt.Errorf("reading boundary file: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return fmt.Errorf("parsing boundary file: %w", err)
	}
	if len(fc.Features) == 0 {
		return fmt.Errorf("boundary file has no features")
	}

	const (
		width   = 800
		height  = 640
		margin  = 40
		legendW = 150
	)

	proj := newProjection(fc, width-2*margin-legendW, height-2*margin, margin, margin+30)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating map file: %w", err)
	}
	defer f.Close()

	canvas := svg.New(f)
	canvas.Start(width, height)
	canvas.Text(width/2, 24, title, "text-anchor:middle;font-size:16px;font-family:sans-serif")

	for _, feature := range fc.Features {
		fill := noDataFill
		if fips := featureFIPS(feature); fips != "" {
			if pct, ok := rates[fips]; ok {
				fill = scale[binIndex(pct)]
			}
		}
		style := fmt.Sprintf("fill:%s;stroke:rgb(255,255,255);stroke-width:0.5", fill)

		switch g := feature.Geometry.(type) {
		case orb.Polygon:
			drawPolygon(canvas, proj, g, style)
		case orb.MultiPolygon:
			for _, poly := range g {
				drawPolygon(canvas, proj, poly, style)
			}
		}
	}

	drawLegend(canvas, scale, width-margin-legendW, margin+40)
	canvas.End()
	return nil
}

func binIndex(pct float64) int {
	for i, end := range rateBins {
		if pct < end {
			return i
		}
	}
	return len(rateBins)
}

// projection maps lon/lat to canvas coordinates with a uniform scale
// (adequate at the extent of a single state).
type projection struct {
	bound      orb.Bound
	scale      float64
	offX, offY float64
}

func newProjection(fc *geojson.FeatureCollection, w, h, offX, offY int) projection {
	bound := fc.Features[0].Geometry.Bound()
	for _, feature := range fc.Features[1:] {
		bound = bound.Union(feature.Geometry.Bound())
	}

	dx := bound.Max[0] - bound.Min[0]
	dy := bound.Max[1] - bound.Min[1]
	scale := math.Min(float64(w)/dx, float64(h)/dy)

	return projection{bound: bound, scale: scale, offX: float64(offX), offY: float64(offY)}
}

func (p projection) point(pt orb.Point) (int, int) {
	x := p.offX + (pt[0]-p.bound.Min[0])*p.scale
	// Latitude grows north, SVG y grows down.
	y := p.offY + (p.bound.Max[1]-pt[1])*p.scale
	return int(math.Round(x)), int(math.Round(y))
}

func drawPolygon(canvas *svg.SVG, proj projection, poly orb.Polygon, style string) {
	if len(poly) == 0 {
		return
	}
	// Outer ring only; county boundaries have no holes worth rendering
	// at this size.
	ring := poly[0]
	xs := make([]int, len(ring))
	ys := make([]int, len(ring))
	for i, pt := range ring {
		xs[i], ys[i] = proj.point(pt)
	}
	canvas.Polygon(xs, ys, style)
}

func drawLegend(canvas *svg.SVG, scale []string, x, y int) {
	canvas.Text(x, y-12, "% of county births", "font-size:12px;font-family:sans-serif")
	for i, color := range scale {
		var label string
		switch {
		case i == 0:
			label = fmt.Sprintf("< %.0f", rateBins[0])
		case i == len(rateBins):
			label = fmt.Sprintf(">= %.0f", rateBins[len(rateBins)-1])
		default:
			label = fmt.Sprintf("%.0f - %.0f", rateBins[i-1], rateBins[i])
		}
		cy := y + i*18
		canvas.Rect(x, cy, 14, 14, "fill:"+color+";stroke:#999;stroke-width:0.5")
		canvas.Text(x+20, cy+11, label, "font-size:11px;font-family:sans-serif")
	}
}

// featureFIPS extracts a county FIPS code from feature properties, which
// vary across published boundary files (FIPS, GEOID, numeric or string).
func featureFIPS(feature *geojson.Feature) string {
	for _, key := range []string{"FIPS", "GEOID", "fips", "geoid"} {
		v, ok := feature.Properties[key]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			return padFIPS(val)
		case float64:
			return padFIPS(strconv.Itoa(int(val)))
		}
	}
	return ""
}

func padFIPS(s string) string {
	for len(s) < 5 {
		s = "0" + s
	}
	return s
}
