// Package domain models the Statistics Sweden (SCB) regional unemployment
// table and the per-year aggregation built on top of it.
//
// # Data Source
//
// Both documents come from the SCB PX-Web API table
// ME0104/ME0104D/ME0104T4. A GET on the table URL returns the metadata
// document; a POST with a JSON query on the same URL returns the data.
//
// # Metadata Conventions
//
// The metadata document lists one variable per queryable dimension:
//
//	Region        region codes ("00", "01", "0114", ...) and their names
//	ContentsCode  the measured series; ME0104B8 is the unemployment percentage
//	Tid           time periods, usually four-digit years
//
// values[i] and valueTexts[i] are parallel: the code at index i is displayed
// as the text at the same index. Region names are resolved by a forward scan,
// so if a code were listed twice the first entry wins.
//
// # Data Conventions
//
// Each data row carries a key and a list of values:
//
//	{"key": ["0114", "2018"], "values": ["4.2"]}
//
// key follows the order of the query's dimensions that are not single-item
// selections (Region, then Tid), so key[0] is the region code and key[1] the
// period. values follows the requested content codes; only one is requested.
//
// Unknown values:
//
//	".." is the SCB sentinel for a cell with no published figure. Such rows
//	are dropped before aggregation and never count as a zero.
//
// Measure values are decimal strings with a "." separator. They are parsed at
// 32-bit precision, and region ties are decided by exact equality of those
// 32-bit values: "5.0" and "5.00" tie, "5.0" and "5.01" do not.
//
// # Year Ordering
//
// Periods are ordered as strings, not numbers. With four-digit years the two
// orders agree; with anything else ("9" and "10") they do not, and string
// order is kept.
package domain
