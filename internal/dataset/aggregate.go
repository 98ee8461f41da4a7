package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ohiodata/birthstats/pkg/models"
)

// Dimension is a grouping axis for aggregation
type Dimension string

const (
	ByCounty    Dimension = "county"
	ByYear      Dimension = "year"
	ByAge       Dimension = "age"
	ByRace      Dimension = "race"
	ByEthnicity Dimension = "ethnicity"
)

// AllDimensions lists every valid grouping dimension
var AllDimensions = []Dimension{ByCounty, ByYear, ByAge, ByRace, ByEthnicity}

// ParseDimension validates a user-supplied dimension name
func ParseDimension(s string) (Dimension, error) {
	for _, d := range AllDimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown dimension %q (available: county, year, age, race, ethnicity)", s)
}

// AgeRanges is the display ordering of maternal age ranges in the source data.
var AgeRanges = []string{
	"Less than 15", "15 to 17", "18 to 19", "20 to 24",
	"25 to 29", "30 to 34", "35 to 39", "40 to 44",
	"45 and older", "Unknown",
}

// Races is the display ordering of race categories in the source data.
var Races = []string{
	"White", "African American", "Asian", "Native American",
	"Pacific Islander", "Unknown",
}

// Years returns every year covered by the datasets, 2006 through 2017.
func Years() []int {
	years := make([]int, 0, 12)
	for y := 2006; y <= 2017; y++ {
		years = append(years, y)
	}
	return years
}

func (d Dimension) value(r models.BirthRecord) string {
	switch d {
	case ByCounty:
		return r.County
	case ByYear:
		return strconv.Itoa(r.Year)
	case ByAge:
		return r.Age
	case ByRace:
		return r.Race
	case ByEthnicity:
		return r.Ethnicity
	}
	return ""
}

// rank orders dimension values the way the source portal displays them:
// age ranges and races in their fixed lists, everything else lexically
// (years sort lexically because they share a width).
func (d Dimension) rank(v string) int {
	var order []string
	switch d {
	case ByAge:
		order = AgeRanges
	case ByRace:
		order = Races
	default:
		return -1
	}
	for i, o := range order {
		if o == v {
			return i
		}
	}
	return len(order)
}

// Aggregate groups birth records by the given dimensions and sums low and
// normal counts per group. The reduction is a plain sum, so input order
// never affects the result. Groups with no births carry an invalid rate
// rather than a NaN.
func Aggregate(records []models.BirthRecord, dims ...Dimension) ([]models.AggregateResult, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("at least one grouping dimension is required")
	}

	groups := make(map[string]*models.AggregateResult)
	for _, r := range records {
		key := make([]string, len(dims))
		for i, d := range dims {
			key[i] = d.value(r)
		}
		mapKey := strings.Join(key, "\x1f")

		agg, ok := groups[mapKey]
		if !ok {
			agg = &models.AggregateResult{Key: key}
			groups[mapKey] = agg
		}
		switch r.Weight {
		case models.WeightLow:
			agg.Low += r.Count
		case models.WeightNormal:
			agg.Normal += r.Count
		default:
			return nil, fmt.Errorf("unclassified weight indicator %q", r.Weight)
		}
	}

	results := make([]models.AggregateResult, 0, len(groups))
	for _, agg := range groups {
		agg.Total = agg.Low + agg.Normal
		if agg.Total > 0 {
			agg.Rate = float64(agg.Low) / float64(agg.Total)
			agg.RateValid = true
		}
		results = append(results, *agg)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i].Key, results[j].Key
		for k, d := range dims {
			ra, rb := d.rank(a[k]), d.rank(b[k])
			if ra != rb {
				return ra < rb
			}
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	return results, nil
}

// Find returns the aggregate whose key matches the given values, or nil.
func Find(results []models.AggregateResult, key ...string) *models.AggregateResult {
	for i := range results {
		if len(results[i].Key) != len(key) {
			continue
		}
		match := true
		for j := range key {
			if results[i].Key[j] != key[j] {
				match = false
				break
			}
		}
		if match {
			return &results[i]
		}
	}
	return nil
}
