package domain

// DetailRow is one sales line item from a detail export (CSV, JSON or
// Parquet). Immutable once built; aggregators only read it.
type DetailRow struct {
	Date     string // calendar date, YYYY-MM-DD
	Product  string
	Category string
	Quantity int
	Price    float64
}

// LineTotal is the derived per-line revenue.
func (d DetailRow) LineTotal() float64 {
	return float64(d.Quantity) * d.Price
}
