package geo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three square "counties": one keyed by a string FIPS property, one by a
// numeric GEOID, and one with no identifying property at all.
const boundaryFixture = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"FIPS": "39049", "NAME": "Franklin"},
      "geometry": {"type": "Polygon", "coordinates": [[[-83.2, 39.8], [-82.8, 39.8], [-82.8, 40.2], [-83.2, 40.2], [-83.2, 39.8]]]}
    },
    {
      "type": "Feature",
      "properties": {"GEOID": 39001, "NAME": "Adams"},
      "geometry": {"type": "Polygon", "coordinates": [[[-83.8, 38.6], [-83.3, 38.6], [-83.3, 39.0], [-83.8, 39.0], [-83.8, 38.6]]]}
    },
    {
      "type": "Feature",
      "properties": {"NAME": "Nameless"},
      "geometry": {"type": "MultiPolygon", "coordinates": [[[[-84.0, 40.5], [-83.6, 40.5], [-83.6, 40.9], [-84.0, 40.9], [-84.0, 40.5]]]]}
    }
  ]
}`

var testScale = []string{
	"#B3E9FF", "#A5D2F2", "#97BBE5",
	"#89A4D8", "#7C8DCB", "#6E76BE",
	"#605FB2", "#5348A4", "#453197",
	"#371A8A", "#2A037D",
}

func writeBoundary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "counties.geojson")
	require.NoError(t, os.WriteFile(path, []byte(boundaryFixture), 0644))
	return path
}

func TestChoropleth(t *testing.T) {
	out := filepath.Join(t.TempDir(), "map.svg")
	rates := map[string]float64{
		"39049": 8.2,  // second bin
		"39001": 52.0, // above the last endpoint
	}

	err := Choropleth(writeBoundary(t), rates, testScale, "Ohio Low Birth Weights by County", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	svg := string(data)

	assert.Contains(t, svg, "fill:#A5D2F2", "8.2 percent lands in the 5-10 bin")
	assert.Contains(t, svg, "fill:#2A037D", "52 percent lands in the top bin")
	assert.Contains(t, svg, "fill:"+noDataFill, "counties without data stay unshaded")
	assert.Equal(t, 3, strings.Count(svg, "<polygon"))
}

func TestChoroplethSkipsUnknownFIPS(t *testing.T) {
	out := filepath.Join(t.TempDir(), "map.svg")
	// A rate for a FIPS absent from the boundary file is silently ignored.
	rates := map[string]float64{"39999": 20.0}

	err := Choropleth(writeBoundary(t), rates, testScale, "title", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "fill:"+noDataFill+";stroke:rgb"))
}

func TestChoroplethBadScale(t *testing.T) {
	err := Choropleth(writeBoundary(t), nil, []string{"#000000"}, "title", filepath.Join(t.TempDir(), "m.svg"))
	require.Error(t, err)
}

func TestChoroplethMissingBoundaryFile(t *testing.T) {
	err := Choropleth(filepath.Join(t.TempDir(), "missing.geojson"), nil, testScale, "title", filepath.Join(t.TempDir(), "m.svg"))
	require.Error(t, err)
}

func TestBinIndex(t *testing.T) {
	assert.Equal(t, 0, binIndex(0))
	assert.Equal(t, 0, binIndex(4.9))
	assert.Equal(t, 1, binIndex(5))
	assert.Equal(t, 10, binIndex(50))
	assert.Equal(t, 10, binIndex(99))
}

func TestPadFIPS(t *testing.T) {
	assert.Equal(t, "01001", padFIPS("1001"))
	assert.Equal(t, "39049", padFIPS("39049"))
}
