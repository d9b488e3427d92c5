// Package join combines a customer master with an order set by customer
// id, producing inner- and left-join segment aggregates plus an audit list
// of orders whose customer is not in the master.
package join

import (
	"sort"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/numeric"
)

// UnknownSegment is attached to left-join rows whose customer id does not
// resolve.
const UnknownSegment = "Unknown"

// Summary counts the inputs and join outcomes.
type Summary struct {
	CustomersCount   int `json:"customers_count"`
	OrdersCount      int `json:"orders_count"`
	InnerJoinRows    int `json:"inner_join_rows"`
	LeftJoinRows     int `json:"left_join_rows"`
	OrphanOrderCount int `json:"orphan_order_count"`
}

// SegmentSalesItem is the aggregate for one customer segment.
type SegmentSalesItem struct {
	Segment         string         `json:"segment"`
	TotalSales      numeric.Number `json:"total_sales"`
	OrderCount      int            `json:"order_count"`
	AvgOrderAmount  numeric.Number `json:"avg_order_amount"`
	UniqueCustomers int            `json:"unique_customers"`
}

// TopProductBySegmentItem is the single best-selling product of one segment.
type TopProductBySegmentItem struct {
	Segment       string         `json:"segment"`
	Product       string         `json:"product"`
	TotalSales    numeric.Number `json:"total_sales"`
	TotalQuantity int            `json:"total_quantity"`
}

// OrphanOrderItem is one order without a matching customer.
type OrphanOrderItem struct {
	OrderID    string         `json:"order_id"`
	OrderDate  string         `json:"order_date"`
	CustomerID string         `json:"customer_id"`
	Product    string         `json:"product"`
	LineTotal  numeric.Number `json:"line_total"`
}

// Result is the full join analysis.
type Result struct {
	Summary                   Summary                   `json:"summary"`
	SegmentSalesInner         []SegmentSalesItem        `json:"segment_sales_inner"`
	SegmentSalesLeft          []SegmentSalesItem        `json:"segment_sales_left"`
	TopProductsBySegmentInner []TopProductBySegmentItem `json:"top_products_by_segment_inner"`
	OrphanOrders              []OrphanOrderItem         `json:"orphan_orders"`
}

// enriched is one order with resolved customer attributes attached.
type enriched struct {
	domain.Order
	segment   string
	lineTotal float64
}

// Join resolves every order against the customer master. Matched orders
// land in both the inner and left sets; unmatched orders stay in the left
// set under the Unknown segment and are recorded as orphans.
func Join(customers []domain.Customer, orders []domain.Order) *Result {
	byID := make(map[string]domain.Customer, len(customers))
	for _, c := range customers {
		byID[c.CustomerID] = c
	}

	inner := make([]enriched, 0, len(orders))
	left := make([]enriched, 0, len(orders))
	orphans := make([]OrphanOrderItem, 0)

	for _, o := range orders {
		e := enriched{Order: o, lineTotal: o.LineTotal()}
		if c, ok := byID[o.CustomerID]; ok {
			e.segment = c.Segment
			inner = append(inner, e)
			left = append(left, e)
			continue
		}
		e.segment = UnknownSegment
		left = append(left, e)
		orphans = append(orphans, OrphanOrderItem{
			OrderID:    o.OrderID,
			OrderDate:  o.OrderDate,
			CustomerID: o.CustomerID,
			Product:    o.Product,
			LineTotal:  numeric.Normalize(e.lineTotal),
		})
	}

	sort.Slice(orphans, func(i, j int) bool {
		if orphans[i].OrderDate != orphans[j].OrderDate {
			return orphans[i].OrderDate < orphans[j].OrderDate
		}
		return orphans[i].OrderID < orphans[j].OrderID
	})

	return &Result{
		Summary: Summary{
			CustomersCount:   len(customers),
			OrdersCount:      len(orders),
			InnerJoinRows:    len(inner),
			LeftJoinRows:     len(left),
			OrphanOrderCount: len(orphans),
		},
		SegmentSalesInner:         buildSegmentSales(inner),
		SegmentSalesLeft:          buildSegmentSales(left),
		TopProductsBySegmentInner: buildTopProductsBySegment(inner),
		OrphanOrders:              orphans,
	}
}

// buildSegmentSales aggregates per segment: total, count, average and
// distinct customers; ordered total desc, segment asc.
func buildSegmentSales(rows []enriched) []SegmentSalesItem {
	type bucket struct {
		totalSales float64
		orderCount int
		customers  map[string]struct{}
	}
	buckets := make(map[string]*bucket)
	for _, r := range rows {
		b, ok := buckets[r.segment]
		if !ok {
			b = &bucket{customers: make(map[string]struct{})}
			buckets[r.segment] = b
		}
		b.totalSales += r.lineTotal
		b.orderCount++
		b.customers[r.CustomerID] = struct{}{}
	}

	type keyed struct {
		segment string
		b       *bucket
	}
	ordered := make([]keyed, 0, len(buckets))
	for segment, b := range buckets {
		ordered = append(ordered, keyed{segment: segment, b: b})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].b.totalSales != ordered[j].b.totalSales {
			return ordered[i].b.totalSales > ordered[j].b.totalSales
		}
		return ordered[i].segment < ordered[j].segment
	})

	items := make([]SegmentSalesItem, 0, len(ordered))
	for _, k := range ordered {
		// Buckets exist only when at least one order contributed, so the
		// average never divides by zero.
		items = append(items, SegmentSalesItem{
			Segment:         k.segment,
			TotalSales:      numeric.Normalize(k.b.totalSales),
			OrderCount:      k.b.orderCount,
			AvgOrderAmount:  numeric.Normalize(k.b.totalSales / float64(k.b.orderCount)),
			UniqueCustomers: len(k.b.customers),
		})
	}
	return items
}

// buildTopProductsBySegment picks, per segment, the product with the
// highest sales (product name ascending on ties) from the inner set and
// orders the resulting one-row-per-segment list total desc, segment asc.
func buildTopProductsBySegment(rows []enriched) []TopProductBySegmentItem {
	type bucket struct {
		totalSales    float64
		totalQuantity int
	}
	bySegment := make(map[string]map[string]*bucket)
	for _, r := range rows {
		products, ok := bySegment[r.segment]
		if !ok {
			products = make(map[string]*bucket)
			bySegment[r.segment] = products
		}
		b, ok := products[r.Product]
		if !ok {
			b = &bucket{}
			products[r.Product] = b
		}
		b.totalSales += r.lineTotal
		b.totalQuantity += r.Quantity
	}

	items := make([]TopProductBySegmentItem, 0, len(bySegment))
	for segment, products := range bySegment {
		var best TopProductBySegmentItem
		var bestSales float64
		first := true
		for product, b := range products {
			better := first ||
				b.totalSales > bestSales ||
				(b.totalSales == bestSales && product < best.Product)
			if better {
				best = TopProductBySegmentItem{
					Segment:       segment,
					Product:       product,
					TotalSales:    numeric.Normalize(b.totalSales),
					TotalQuantity: b.totalQuantity,
				}
				bestSales = b.totalSales
				first = false
			}
		}
		items = append(items, best)
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		af, bf := a.TotalSales.Float64(), b.TotalSales.Float64()
		if af != bf {
			return af > bf
		}
		return a.Segment < b.Segment
	})
	return items
}
