package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ohiodata/birthstats/pkg/models"
)

// columnRenames maps the Department of Health export headers to the
// canonical names used throughout the tool.
var columnRenames = map[string]string{
	"age group desc":            "age",
	"birth count":               "count",
	"birth count_pct":           "percentage",
	"county name":               "county",
	"ethnicity desc":            "ethnicity",
	"low birth weight ind desc": "weight",
	"race catg desc":            "race",
	"year desc":                 "year",
}

// valueRenames maps the portal's display labels to short stable values.
var valueRenames = map[string]string{
	"2017 **":                      "2017",
	"Low birth weight (<2500g)":    string(models.WeightLow),
	"Normal birth weight (2500g+)": string(models.WeightNormal),
	"African American  (Black)":    "African American",
	"Pacific Islander/Hawaiian":    "Pacific Islander",
	"Unknown/Not Reported":         "Unknown",
}

// CleanAge normalizes the birth-weight-by-age dataset. Subtotal rows
// ("Total" weight or year) and out-of-state or unattributed counties are
// dropped; suppressed cells ("*") become zero counts.
func CleanAge(t *Table) ([]models.BirthRecord, error) {
	cols, err := requireColumns(t, "age", "county", "weight", "year", "count", "percentage")
	if err != nil {
		return nil, err
	}

	var records []models.BirthRecord
	for i, row := range t.Rows {
		county := row[cols["county"]]
		weight := renameValue(row[cols["weight"]])
		yearStr := renameValue(row[cols["year"]])

		if weight == "Total" || yearStr == "Total" {
			continue
		}
		// Births outside Ohio or without an attributed county carry no
		// geographic signal for this analysis.
		if county == "Unknown" || county == "NonOH" {
			continue
		}

		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, &ParseError{Path: t.Path, Line: i + 2, Err: fmt.Errorf("invalid year %q", yearStr)}
		}
		count, err := parseCount(row[cols["count"]])
		if err != nil {
			return nil, &ParseError{Path: t.Path, Line: i + 2, Err: err}
		}
		pct, err := parsePercentage(row[cols["percentage"]])
		if err != nil {
			return nil, &ParseError{Path: t.Path, Line: i + 2, Err: err}
		}

		records = append(records, models.BirthRecord{
			County:     canonicalCounty(county),
			Year:       year,
			Age:        renameValue(row[cols["age"]]),
			Weight:     models.WeightClass(weight),
			Count:      count,
			Percentage: pct,
		})
	}

	return records, nil
}

// CleanRace normalizes the birth-weight-by-race dataset. Race and
// ethnicity labels are collapsed to the short names ("African American",
// "Pacific Islander", "Unknown"); subtotal rows are dropped.
func CleanRace(t *Table) ([]models.BirthRecord, error) {
	cols, err := requireColumns(t, "race", "ethnicity", "county", "weight", "year", "count", "percentage")
	if err != nil {
		return nil, err
	}

	var records []models.BirthRecord
	for i, row := range t.Rows {
		weight := renameValue(row[cols["weight"]])
		yearStr := renameValue(row[cols["year"]])

		if weight == "Total" || yearStr == "Total" {
			continue
		}

		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, &ParseError{Path: t.Path, Line: i + 2, Err: fmt.Errorf("invalid year %q", yearStr)}
		}
		count, err := parseCount(row[cols["count"]])
		if err != nil {
			return nil, &ParseError{Path: t.Path, Line: i + 2, Err: err}
		}
		pct, err := parsePercentage(row[cols["percentage"]])
		if err != nil {
			return nil, &ParseError{Path: t.Path, Line: i + 2, Err: err}
		}

		records = append(records, models.BirthRecord{
			County:     canonicalCounty(row[cols["county"]]),
			Year:       year,
			Race:       renameValue(row[cols["race"]]),
			Ethnicity:  renameValue(row[cols["ethnicity"]]),
			Weight:     models.WeightClass(weight),
			Count:      count,
			Percentage: pct,
		})
	}

	return records, nil
}

// CleanCounties parses the county/FIPS lookup table. FIPS codes are
// zero-padded to five digits.
func CleanCounties(t *Table) ([]models.CountyFIPS, error) {
	countyIdx := t.Column("county")
	fipsIdx := t.Column("FIPS")
	if fipsIdx < 0 {
		fipsIdx = t.Column("fips")
	}
	if countyIdx < 0 || fipsIdx < 0 {
		return nil, fmt.Errorf("%s: missing county or FIPS column", t.Path)
	}

	var counties []models.CountyFIPS
	for _, row := range t.Rows {
		fips := row[fipsIdx]
		if len(fips) < 5 {
			fips = strings.Repeat("0", 5-len(fips)) + fips
		}
		counties = append(counties, models.CountyFIPS{
			County: canonicalCounty(row[countyIdx]),
			FIPS:   fips,
		})
	}

	return counties, nil
}

// JoinFIPS left-joins the FIPS lookup onto birth records by county name.
// Every input record is returned; records whose county has no FIPS entry
// keep an empty FIPS code.
func JoinFIPS(records []models.BirthRecord, counties []models.CountyFIPS) []models.BirthRecord {
	lookup := make(map[string]string, len(counties))
	for _, c := range counties {
		lookup[c.County] = c.FIPS
	}

	joined := make([]models.BirthRecord, len(records))
	for i, r := range records {
		r.FIPS = lookup[r.County]
		joined[i] = r
	}
	return joined
}

// requireColumns renames the table header in place and returns an index
// for each required canonical column name.
func requireColumns(t *Table, names ...string) (map[string]int, error) {
	renameHeader(t)
	cols := make(map[string]int, len(names))
	for _, name := range names {
		idx := t.Column(name)
		if idx < 0 {
			return nil, fmt.Errorf("%s: missing column %q", t.Path, name)
		}
		cols[name] = idx
	}
	return cols, nil
}

func renameHeader(t *Table) {
	for i, h := range t.Header {
		if canonical, ok := columnRenames[h]; ok {
			t.Header[i] = canonical
		}
	}
}

func renameValue(v string) string {
	if canonical, ok := valueRenames[v]; ok {
		return canonical
	}
	return v
}

// parseCount handles the portal's suppression marker: counts under the
// publication threshold are exported as "*" and treated as zero.
func parseCount(v string) (int, error) {
	if v == "" || v == "*" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q", v)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

func parsePercentage(v string) (float64, error) {
	if v == "" || v == "*" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", v)
	}
	return f, nil
}

// canonicalCounty normalizes county capitalization ("VAN WERT" -> "Van Wert")
func canonicalCounty(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
