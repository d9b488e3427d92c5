// Package sqlreport re-aggregates extracted sales_orders rows by day,
// customer segment and payment method, and pulls out high-value orders
// above a threshold. Extraction itself lives behind storage.OrderRowSource.
package sqlreport

import (
	"errors"
	"sort"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/numeric"
)

// ErrNoData is returned when the extracted row set is empty; this report
// assumes a seeded upstream table.
var ErrNoData = errors.New("sales_orders has no rows: seed the database first")

// Summary covers counts, the covered date range and total revenue.
type Summary struct {
	TotalRows           int            `json:"total_rows"`
	DateRangeStart      string         `json:"date_range_start"`
	DateRangeEnd        string         `json:"date_range_end"`
	TotalRevenue        numeric.Number `json:"total_revenue"`
	HighValueOrderCount int            `json:"high_value_order_count"`
}

// DailySalesItem is the revenue total for one order date.
type DailySalesItem struct {
	Date  string         `json:"date"`
	Sales numeric.Number `json:"sales"`
}

// SegmentSalesItem is the aggregate for one customer segment.
type SegmentSalesItem struct {
	Segment        string         `json:"segment"`
	TotalSales     numeric.Number `json:"total_sales"`
	OrderCount     int            `json:"order_count"`
	AvgOrderAmount numeric.Number `json:"avg_order_amount"`
}

// PaymentMethodSalesItem is the aggregate for one payment method.
type PaymentMethodSalesItem struct {
	PaymentMethod  string         `json:"payment_method"`
	TotalSales     numeric.Number `json:"total_sales"`
	OrderCount     int            `json:"order_count"`
	AvgOrderAmount numeric.Number `json:"avg_order_amount"`
}

// HighValueOrderItem is one order at or above the threshold.
type HighValueOrderItem struct {
	OrderID       string         `json:"order_id"`
	OrderDate     string         `json:"order_date"`
	Segment       string         `json:"segment"`
	PaymentMethod string         `json:"payment_method"`
	OrderAmount   numeric.Number `json:"order_amount"`
}

// Report is the full SQL sales report.
type Report struct {
	Summary            Summary                  `json:"summary"`
	DailySales         []DailySalesItem         `json:"daily_sales"`
	SegmentSales       []SegmentSalesItem       `json:"segment_sales"`
	PaymentMethodSales []PaymentMethodSalesItem `json:"payment_method_sales"`
	HighValueOrders    []HighValueOrderItem     `json:"high_value_orders"`
}

type bucket struct {
	totalSales float64
	orderCount int
}

// Build aggregates rows into the report. Returns ErrNoData on empty input.
func Build(rows []domain.OrderRow, highValueThreshold float64) (*Report, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	daily := make(map[string]float64)
	segments := make(map[string]*bucket)
	payments := make(map[string]*bucket)

	var totalRevenue float64
	minDate, maxDate := rows[0].OrderDate, rows[0].OrderDate
	highValue := make([]HighValueOrderItem, 0)

	for _, row := range rows {
		daily[row.OrderDate] += row.OrderAmount
		accumulate(segments, row.CustomerSegment, row.OrderAmount)
		accumulate(payments, row.PaymentMethod, row.OrderAmount)
		totalRevenue += row.OrderAmount

		if row.OrderDate < minDate {
			minDate = row.OrderDate
		}
		if row.OrderDate > maxDate {
			maxDate = row.OrderDate
		}
		if row.OrderAmount >= highValueThreshold {
			highValue = append(highValue, HighValueOrderItem{
				OrderID:       row.OrderID,
				OrderDate:     row.OrderDate,
				Segment:       row.CustomerSegment,
				PaymentMethod: row.PaymentMethod,
				OrderAmount:   numeric.Normalize(row.OrderAmount),
			})
		}
	}

	sort.Slice(highValue, func(i, j int) bool {
		a, b := highValue[i], highValue[j]
		af, bf := a.OrderAmount.Float64(), b.OrderAmount.Float64()
		if af != bf {
			return af > bf
		}
		if a.OrderID != b.OrderID {
			return a.OrderID < b.OrderID
		}
		return a.OrderDate < b.OrderDate
	})

	return &Report{
		Summary: Summary{
			TotalRows:           len(rows),
			DateRangeStart:      minDate,
			DateRangeEnd:        maxDate,
			TotalRevenue:        numeric.Normalize(totalRevenue),
			HighValueOrderCount: len(highValue),
		},
		DailySales:         buildDailySales(daily),
		SegmentSales:       buildSegmentSales(segments),
		PaymentMethodSales: buildPaymentMethodSales(payments),
		HighValueOrders:    highValue,
	}, nil
}

func accumulate(buckets map[string]*bucket, key string, amount float64) {
	b, ok := buckets[key]
	if !ok {
		b = &bucket{}
		buckets[key] = b
	}
	b.totalSales += amount
	b.orderCount++
}

func buildDailySales(daily map[string]float64) []DailySalesItem {
	items := make([]DailySalesItem, 0, len(daily))
	for date, sum := range daily {
		items = append(items, DailySalesItem{Date: date, Sales: numeric.Normalize(sum)})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date < items[j].Date })
	return items
}

// sortedBuckets orders bucket keys by total desc, key asc.
func sortedBuckets(buckets map[string]*bucket) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := buckets[keys[i]], buckets[keys[j]]
		if a.totalSales != b.totalSales {
			return a.totalSales > b.totalSales
		}
		return keys[i] < keys[j]
	})
	return keys
}

func buildSegmentSales(segments map[string]*bucket) []SegmentSalesItem {
	items := make([]SegmentSalesItem, 0, len(segments))
	for _, key := range sortedBuckets(segments) {
		b := segments[key]
		items = append(items, SegmentSalesItem{
			Segment:        key,
			TotalSales:     numeric.Normalize(b.totalSales),
			OrderCount:     b.orderCount,
			AvgOrderAmount: numeric.Normalize(b.totalSales / float64(b.orderCount)),
		})
	}
	return items
}

func buildPaymentMethodSales(payments map[string]*bucket) []PaymentMethodSalesItem {
	items := make([]PaymentMethodSalesItem, 0, len(payments))
	for _, key := range sortedBuckets(payments) {
		b := payments[key]
		items = append(items, PaymentMethodSalesItem{
			PaymentMethod:  key,
			TotalSales:     numeric.Normalize(b.totalSales),
			OrderCount:     b.orderCount,
			AvgOrderAmount: numeric.Normalize(b.totalSales / float64(b.orderCount)),
		})
	}
	return items
}
