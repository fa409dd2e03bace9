package domain

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// RegionResult is one region's parsed measure for a single year.
type RegionResult struct {
	RegionName string
	Value      float32
}

// YearReport lists the region(s) holding the highest value in a year.
type YearReport struct {
	Year       string   `json:"year" yaml:"year"`
	TopRegions []string `json:"top_regions" yaml:"top_regions"`
	MaxValue   float32  `json:"max_value" yaml:"max_value"`
}

// YearReports yields one report per distinct year, in ascending string order.
// A year that cannot be reported yields a zero report with Year set and a
// non-nil error; the caller decides whether to stop.
func YearReports(meta *Metadata, data *Dataset) iter.Seq2[YearReport, error] {
	return func(yield func(YearReport, error) bool) {
		for _, year := range data.Years() {
			if !yield(reportYear(meta, data, year)) {
				return
			}
		}
	}
}

// Aggregate collects the reports for every year and stops at the first failing year.
func Aggregate(meta *Metadata, data *Dataset) ([]YearReport, error) {
	var reports []YearReport
	for report, err := range YearReports(meta, data) {
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func reportYear(meta *Metadata, data *Dataset, year string) (YearReport, error) {
	results, err := regionResults(meta, data, year)
	if err != nil {
		return YearReport{Year: year}, err
	}
	if len(results) == 0 {
		return YearReport{Year: year}, fmt.Errorf("%w %q", ErrNoDataForYear, year)
	}

	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b RegionResult) int {
		return cmp.Compare(b.Value, a.Value)
	})
	maxValue := sorted[0].Value

	// Exact float32 equality, in dataset order.
	top := make([]string, 0, 1)
	for _, r := range results {
		if r.Value == maxValue {
			top = append(top, r.RegionName)
		}
	}

	return YearReport{Year: year, TopRegions: top, MaxValue: maxValue}, nil
}

// regionResults maps the year's non-missing observations to named values, in dataset order.
func regionResults(meta *Metadata, data *Dataset, year string) ([]RegionResult, error) {
	var results []RegionResult
	for _, o := range data.Observations {
		if o.Year() != year || o.Missing() {
			continue
		}
		v, err := ParseMeasure(o.Value())
		if err != nil {
			return nil, fmt.Errorf("%w: region %q year %q: %w", ErrData, o.Region(), year, err)
		}
		results = append(results, RegionResult{
			RegionName: meta.ResolveRegionName(o.Region()),
			Value:      v,
		})
	}
	return results, nil
}

// ParseMeasure parses a published decimal string at 32-bit precision.
func ParseMeasure(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}
