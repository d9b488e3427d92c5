package domain

// Customer is one row of the customer master. Read-only lookup data for
// the join engine.
type Customer struct {
	CustomerID   string
	CustomerName string
	Segment      string
}

// Order is one order line used by the join engine. CustomerID is a foreign
// key that may not resolve against the customer master.
type Order struct {
	OrderID    string
	OrderDate  string // YYYY-MM-DD
	CustomerID string
	Product    string
	Quantity   int
	UnitPrice  float64
}

// LineTotal is the derived per-order revenue.
func (o Order) LineTotal() float64 {
	return float64(o.Quantity) * o.UnitPrice
}

// OrderRow is one already-extracted relational row from the sales_orders
// table, as returned by a storage.OrderRowSource.
type OrderRow struct {
	OrderID         string
	OrderDate       string // YYYY-MM-DD
	CustomerSegment string
	PaymentMethod   string
	OrderAmount     float64
}

// CleanedOrder is one fully transformed ETL output row; the field set
// matches the 8-column columnar output schema.
type CleanedOrder struct {
	OrderID    string
	OrderDate  string // YYYY-MM-DD
	CustomerID string
	Product    string
	Quantity   int
	UnitPrice  float64
	OrderMonth string // YYYY-MM
	LineTotal  float64
}
