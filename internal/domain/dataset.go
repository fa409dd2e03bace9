package domain

import (
	"fmt"
	"slices"
)

// MissingValue is the SCB sentinel for a cell with no published figure.
const MissingValue = ".."

// Observation is one data row: a key of dimension codes and the measure values.
type Observation struct {
	Key    []string `json:"key"`
	Values []string `json:"values"`
}

// Region returns the region code (key[0]).
func (o Observation) Region() string {
	if len(o.Key) < 1 {
		return ""
	}
	return o.Key[0]
}

// Year returns the period code (key[1]).
func (o Observation) Year() string {
	if len(o.Key) < 2 {
		return ""
	}
	return o.Key[1]
}

// Value returns the first measure value as published.
func (o Observation) Value() string {
	if len(o.Values) < 1 {
		return ""
	}
	return o.Values[0]
}

// Missing reports whether the observation carries the no-data sentinel.
func (o Observation) Missing() bool {
	return o.Value() == MissingValue
}

// Column describes one column of the data response.
type Column struct {
	Code string `json:"code"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// Comment is a footnote attached to a dimension value in the data response.
type Comment struct {
	Variable string `json:"variable"`
	Value    string `json:"value"`
	Comment  string `json:"comment"`
}

// Dataset is the decoded data response, in the order the API returned it.
type Dataset struct {
	Columns      []Column      `json:"columns,omitempty"`
	Comments     []Comment     `json:"comments,omitempty"`
	Observations []Observation `json:"data"`
}

// Validate checks that every observation has a region and period key and at
// least one value.
func (d *Dataset) Validate() error {
	for i, o := range d.Observations {
		if len(o.Key) < 2 {
			return fmt.Errorf("%w: observation %d has %d key entries, want at least 2", ErrParse, i, len(o.Key))
		}
		if len(o.Values) < 1 {
			return fmt.Errorf("%w: observation %d has no values", ErrParse, i)
		}
	}
	return nil
}

// Years returns the distinct period codes in ascending string order.
func (d *Dataset) Years() []string {
	years := make([]string, 0, len(d.Observations))
	for _, o := range d.Observations {
		years = append(years, o.Year())
	}
	slices.Sort(years)
	return slices.Compact(years)
}

// MissingCount returns the number of observations carrying the no-data sentinel.
func (d *Dataset) MissingCount() int {
	n := 0
	for _, o := range d.Observations {
		if o.Missing() {
			n++
		}
	}
	return n
}
