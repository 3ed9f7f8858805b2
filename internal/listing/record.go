// Package listing defines the house record shown by houselist and the
// helpers that build, copy and load collections of them.
package listing

// DefaultTitle is the heading shown above a collection of listings.
const DefaultTitle = "Houses currently on the market"

// Fixed values of the record inserted by the Add House action.
const (
	NewHouseID      = 4
	NewHouseAddress = "32 Valley Way, New York"
	NewHouseCountry = "USA"
	NewHousePrice   = 1000000
)

// Record is one real-estate listing.
//
// No field is validated and IDs are not guaranteed to be unique.
type Record struct {
	ID      int     `json:"id"      yaml:"id"`
	Address string  `json:"address" yaml:"address"`
	Country string  `json:"country" yaml:"country"`
	Price   float64 `json:"price"   yaml:"price"`
}

// NewHouse returns the fixed record appended by the Add House action.
// Every call returns the same values, so repeated appends produce duplicate IDs.
func NewHouse() Record {
	return Record{
		ID:      NewHouseID,
		Address: NewHouseAddress,
		Country: NewHouseCountry,
		Price:   NewHousePrice,
	}
}

// Append returns a new collection holding records followed by r.
// The input slice is neither modified nor shared with the result.
func Append(records []Record, r Record) []Record {
	out := make([]Record, 0, len(records)+1)
	out = append(out, records...)
	return append(out, r)
}

// Clone returns a copy of records. A nil input yields an empty, non-nil slice.
func Clone(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// DefaultHouses returns the collection used when no seed file is configured.
func DefaultHouses() []Record {
	return []Record{
		{ID: 1, Address: "12 Valley of Kings, Geneva", Country: "Switzerland", Price: 900000},
		{ID: 2, Address: "89 Road of Forks, Bern", Country: "Switzerland", Price: 500000},
		{ID: 3, Address: "Grote Hof 12, Amsterdam", Country: "The Netherlands", Price: 200500},
	}
}
