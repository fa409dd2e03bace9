package domain

import "fmt"

// Dimension codes used by the unemployment table.
const (
	DimensionRegion   = "Region"
	DimensionContents = "ContentsCode"
	DimensionTime     = "Tid"
)

// Variable describes one dimension of the table and its valid codes.
type Variable struct {
	Code        string   `json:"code"`
	Text        string   `json:"text"`
	Values      []string `json:"values"`
	ValueTexts  []string `json:"valueTexts"`
	Elimination bool     `json:"elimination,omitempty"`
	Time        bool     `json:"time,omitempty"`
}

// Metadata is the table description returned by a GET on the table URL.
type Metadata struct {
	Title     string     `json:"title"`
	Variables []Variable `json:"variables"`
}

// Validate checks that every variable pairs each code with exactly one text.
func (m *Metadata) Validate() error {
	for _, v := range m.Variables {
		if len(v.Values) != len(v.ValueTexts) {
			return fmt.Errorf("%w: variable %q has %d values but %d value texts",
				ErrParse, v.Code, len(v.Values), len(v.ValueTexts))
		}
	}
	return nil
}

// ResolveRegionName returns the display name paired with the first Region
// value equal to code, or "" when there is no Region dimension or no match.
func (m *Metadata) ResolveRegionName(code string) string {
	for _, v := range m.Variables {
		if v.Code != DimensionRegion {
			continue
		}
		n := min(len(v.Values), len(v.ValueTexts))
		for i := 0; i < n; i++ {
			if v.Values[i] == code {
				return v.ValueTexts[i]
			}
		}
	}
	return ""
}
