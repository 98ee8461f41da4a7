package chart

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohiodata/birthstats/internal/config"
	"github.com/ohiodata/birthstats/pkg/models"
)

func testTheme(t *testing.T) Theme {
	t.Helper()
	theme, err := NewTheme(&config.Config{})
	require.NoError(t, err)
	return theme
}

func requireRendered(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func sampleResults() []models.AggregateResult {
	return []models.AggregateResult{
		{Key: []string{"20 to 24"}, Low: 8, Normal: 142, Total: 150, Rate: 8.0 / 150, RateValid: true},
		{Key: []string{"15 to 17"}, Low: 2, Normal: 18, Total: 20, Rate: 0.1, RateValid: true},
		{Key: []string{"45 and older"}},
	}
}

func TestGroupedBar(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bar.png")
	labels := []string{"Less than 15", "15 to 17", "20 to 24", "45 and older"}
	err := GroupedBar(sampleResults(), labels, "title", "x", "y", testTheme(t), out)
	require.NoError(t, err)
	requireRendered(t, out)
}

func TestShareBar(t *testing.T) {
	out := filepath.Join(t.TempDir(), "share.png")
	labels := []string{"15 to 17", "20 to 24", "45 and older"}
	err := ShareBar(sampleResults(), labels, "title", "x", "y", testTheme(t), out)
	require.NoError(t, err)
	requireRendered(t, out)
}

func TestRateLine(t *testing.T) {
	results := []models.AggregateResult{
		{Key: []string{"2006"}, Low: 10, Normal: 90, Total: 100, Rate: 0.1, RateValid: true},
		{Key: []string{"2007"}, Low: 12, Normal: 88, Total: 100, Rate: 0.12, RateValid: true},
		{Key: []string{"2008"}}, // no births: skipped, not plotted as zero
	}

	out := filepath.Join(t.TempDir(), "line.png")
	err := RateLine(results, "title", "x", "y", testTheme(t), out)
	require.NoError(t, err)
	requireRendered(t, out)
}

func TestRateLineNoData(t *testing.T) {
	out := filepath.Join(t.TempDir(), "line.png")
	err := RateLine(nil, "title", "x", "y", testTheme(t), out)
	require.Error(t, err)
}

func TestStackedArea(t *testing.T) {
	years := []int{2006, 2007, 2008}
	series := []Series{
		{Name: "low", Values: []float64{5, 6, 7}},
		{Name: "normal", Values: []float64{95, 94, 93}},
	}
	colors := []color.Color{testTheme(t).Low, testTheme(t).Normal}

	out := filepath.Join(t.TempDir(), "area.png")
	err := StackedArea(years, series, colors, "title", "x", "y", out)
	require.NoError(t, err)
	requireRendered(t, out)
}

func TestStackedAreaLengthMismatch(t *testing.T) {
	series := []Series{{Name: "low", Values: []float64{1}}}
	colors := []color.Color{color.Black}
	err := StackedArea([]int{2006, 2007}, series, colors, "t", "x", "y", filepath.Join(t.TempDir(), "a.png"))
	require.Error(t, err)
}

func TestPies(t *testing.T) {
	groups := []PieGroup{
		{Title: "Hispanic", Slices: []Slice{
			{Label: "low", Value: 10, Color: "#2A037D"},
			{Label: "normal", Value: 90, Color: "#B3E9FF"},
		}},
		{Title: "Non-Hispanic", Slices: []Slice{
			{Label: "low", Value: 7, Color: "#2A037D"},
			{Label: "normal", Value: 93, Color: "#B3E9FF"},
		}},
	}

	out := filepath.Join(t.TempDir(), "pies.svg")
	require.NoError(t, Pies("title", groups, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "#2A037D")
}

func TestPiesEmptyGroup(t *testing.T) {
	groups := []PieGroup{{Title: "empty", Slices: []Slice{{Label: "low", Value: 0, Color: "#2A037D"}}}}
	out := filepath.Join(t.TempDir(), "pies.svg")
	require.NoError(t, Pies("title", groups, out))
	requireRendered(t, out)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#2A037D")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x2a, G: 0x03, B: 0x7d, A: 0xff}, c)

	for _, bad := range []string{"", "2A037D", "#2A037", "#GG0000"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}
