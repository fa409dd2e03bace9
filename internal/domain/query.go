package domain

// UnemploymentContentsCode selects the unemployment percentage series.
const UnemploymentContentsCode = "ME0104B8"

// Selection filters used in table queries.
const (
	FilterAll  = "all"
	FilterItem = "item"
)

// Selection picks values of one dimension.
type Selection struct {
	Filter string   `json:"filter"`
	Values []string `json:"values"`
}

// QueryFilter restricts one dimension of the table.
type QueryFilter struct {
	Code      string    `json:"code"`
	Selection Selection `json:"selection"`
}

// ResponseFormat names the encoding the API should answer with.
type ResponseFormat struct {
	Format string `json:"format"`
}

// Query is the body POSTed to the table URL.
type Query struct {
	Query    []QueryFilter  `json:"query"`
	Response ResponseFormat `json:"response"`
}

// UnemploymentQuery selects every region and every period of the
// unemployment percentage series, answered as JSON.
func UnemploymentQuery() Query {
	return Query{
		Query: []QueryFilter{
			{Code: DimensionRegion, Selection: Selection{Filter: FilterAll, Values: []string{"*"}}},
			{Code: DimensionContents, Selection: Selection{Filter: FilterItem, Values: []string{UnemploymentContentsCode}}},
			{Code: DimensionTime, Selection: Selection{Filter: FilterAll, Values: []string{"*"}}},
		},
		Response: ResponseFormat{Format: "json"},
	}
}
