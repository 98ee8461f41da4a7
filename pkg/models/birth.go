package models

// WeightClass classifies a birth record by weight
type WeightClass string

const (
	// WeightLow marks births under 2500 grams
	WeightLow WeightClass = "low"
	// WeightNormal marks births at or above 2500 grams
	WeightNormal WeightClass = "normal"
)

// BirthRecord represents a single row from an Ohio Department of Health
// birth weight dataset after cleaning. Age is set for the by-age dataset,
// Race and Ethnicity for the by-race dataset.
type BirthRecord struct {
	County     string      `json:"county"`
	FIPS       string      `json:"fips,omitempty"` // empty when the county has no FIPS match
	Year       int         `json:"year"`
	Age        string      `json:"age,omitempty"`
	Race       string      `json:"race,omitempty"`
	Ethnicity  string      `json:"ethnicity,omitempty"`
	Weight     WeightClass `json:"weight"`
	Count      int         `json:"count"`
	Percentage float64     `json:"percentage,omitempty"` // share of county births, from the source
}

// CountyFIPS maps a county name to its 5-digit zero-padded FIPS code
type CountyFIPS struct {
	County string `json:"county"`
	FIPS   string `json:"fips"`
}

// AggregateResult is one group from an aggregation: summed low and normal
// counts for a combination of dimension values.
type AggregateResult struct {
	Key       []string `json:"key"` // one value per grouping dimension, in order
	Low       int      `json:"low"`
	Normal    int      `json:"normal"`
	Total     int      `json:"total"`
	Rate      float64  `json:"rate"`       // low / total, only meaningful when RateValid
	RateValid bool     `json:"rate_valid"` // false when the group has no births
}
