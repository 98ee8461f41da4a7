package chart

import (
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
)

// Slice is one wedge of a pie chart
type Slice struct {
	Label string
	Value float64
	Color string // hex string like "#2A037D"
}

// PieGroup is a titled pie with its slices
type PieGroup struct {
	Title  string
	Slices []Slice
}

// Pies renders the groups as side-by-side pie charts in a single SVG
// file. A group whose slices sum to zero renders as its title only.
func Pies(title string, groups []PieGroup, path string) error {
	if len(groups) == 0 {
		return fmt.Errorf("no pie groups to plot")
	}

	const (
		pieWidth = 260
		height   = 320
		radius   = 90
	)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	width := pieWidth * len(groups)
	canvas := svg.New(f)
	canvas.Start(width, height)
	canvas.Text(width/2, 28, title, "text-anchor:middle;font-size:16px;font-family:sans-serif")

	for i, g := range groups {
		cx := pieWidth*i + pieWidth/2
		cy := height/2 + 10
		canvas.Text(cx, 58, g.Title, "text-anchor:middle;font-size:13px;font-family:sans-serif")
		drawPie(canvas, cx, cy, radius, g.Slices)
	}

	// Legend from the first group's slices.
	lx, ly := 16, height-24
	for _, s := range groups[0].Slices {
		canvas.Rect(lx, ly-10, 12, 12, "fill:"+s.Color)
		canvas.Text(lx+18, ly, s.Label, "font-size:12px;font-family:sans-serif")
		lx += 18 + 8*len(s.Label) + 16
	}

	canvas.End()
	return nil
}

func drawPie(canvas *svg.SVG, cx, cy, r int, slices []Slice) {
	var total float64
	for _, s := range slices {
		total += s.Value
	}
	if total == 0 {
		return
	}

	const wedgeStyle = "stroke:white;stroke-width:1;fill:"

	angle := -math.Pi / 2 // start at 12 o'clock
	for _, s := range slices {
		frac := s.Value / total
		if frac == 0 {
			continue
		}
		if frac == 1 {
			canvas.Circle(cx, cy, r, wedgeStyle+s.Color)
			pieLabel(canvas, cx, cy, r, angle+math.Pi, frac)
			break
		}

		end := angle + 2*math.Pi*frac
		x0 := cx + int(float64(r)*math.Cos(angle))
		y0 := cy + int(float64(r)*math.Sin(angle))
		x1 := cx + int(float64(r)*math.Cos(end))
		y1 := cy + int(float64(r)*math.Sin(end))

		largeArc := 0
		if frac > 0.5 {
			largeArc = 1
		}

		d := fmt.Sprintf("M%d,%d L%d,%d A%d,%d 0 %d,1 %d,%d Z",
			cx, cy, x0, y0, r, r, largeArc, x1, y1)
		canvas.Path(d, wedgeStyle+s.Color)

		pieLabel(canvas, cx, cy, r, (angle+end)/2, frac)
		angle = end
	}
}

// pieLabel writes the slice percentage just outside the wedge midpoint
func pieLabel(canvas *svg.SVG, cx, cy, r int, mid, frac float64) {
	lx := cx + int(float64(r)*1.25*math.Cos(mid))
	ly := cy + int(float64(r)*1.25*math.Sin(mid))
	canvas.Text(lx, ly, fmt.Sprintf("%.1f%%", frac*100),
		"text-anchor:middle;font-size:12px;font-family:sans-serif")
}
