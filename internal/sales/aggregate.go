// Package sales aggregates detail rows into the daily / category / top-N
// views shared by the sales report, the visual report and the format
// comparison. Ordering rules are exact: output order is part of the
// cross-implementation contract.
package sales

import (
	"sort"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/numeric"
)

// topProductLimit bounds the top_products collection.
const topProductLimit = 3

// DailySalesItem is the revenue total for one calendar date.
type DailySalesItem struct {
	Date  string         `json:"date"`
	Sales numeric.Number `json:"sales"`
}

// CategorySalesItem is the revenue total for one category.
type CategorySalesItem struct {
	Category string         `json:"category"`
	Sales    numeric.Number `json:"sales"`
}

// TopProductItem is the revenue and quantity total for one product.
type TopProductItem struct {
	Product  string         `json:"product"`
	Sales    numeric.Number `json:"sales"`
	Quantity int            `json:"quantity"`
}

// Aggregations bundles the three aggregate views of one detail-row batch.
type Aggregations struct {
	DailySales    []DailySalesItem    `json:"daily_sales"`
	CategorySales []CategorySalesItem `json:"category_sales"`
	TopProducts   []TopProductItem    `json:"top_products"`
}

type productBucket struct {
	sales    float64
	quantity int
}

// Aggregate computes all three views in a single pass over rows.
// Empty input yields empty (non-nil) collections.
func Aggregate(rows []domain.DetailRow) Aggregations {
	dailyTotals := make(map[string]float64)
	categoryTotals := make(map[string]float64)
	productTotals := make(map[string]*productBucket)

	for _, row := range rows {
		lineTotal := row.LineTotal()
		dailyTotals[row.Date] += lineTotal
		categoryTotals[row.Category] += lineTotal

		bucket, ok := productTotals[row.Product]
		if !ok {
			bucket = &productBucket{}
			productTotals[row.Product] = bucket
		}
		bucket.sales += lineTotal
		bucket.quantity += row.Quantity
	}

	return Aggregations{
		DailySales:    buildDailySales(dailyTotals),
		CategorySales: buildCategorySales(categoryTotals),
		TopProducts:   buildTopProducts(productTotals),
	}
}

// buildDailySales orders buckets by date ascending (lexicographic ISO dates).
func buildDailySales(totals map[string]float64) []DailySalesItem {
	items := make([]DailySalesItem, 0, len(totals))
	for date, sum := range totals {
		items = append(items, DailySalesItem{Date: date, Sales: numeric.Normalize(sum)})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Date < items[j].Date
	})
	return items
}

// buildCategorySales orders buckets by sales descending, category name
// ascending on ties.
func buildCategorySales(totals map[string]float64) []CategorySalesItem {
	type bucket struct {
		category string
		sales    float64
	}
	buckets := make([]bucket, 0, len(totals))
	for category, sum := range totals {
		buckets = append(buckets, bucket{category: category, sales: sum})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].sales != buckets[j].sales {
			return buckets[i].sales > buckets[j].sales
		}
		return buckets[i].category < buckets[j].category
	})

	items := make([]CategorySalesItem, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, CategorySalesItem{Category: b.category, Sales: numeric.Normalize(b.sales)})
	}
	return items
}

// buildTopProducts orders like categories (sales desc, product asc) and
// keeps the first three entries. Fewer than three products is not an error.
func buildTopProducts(totals map[string]*productBucket) []TopProductItem {
	type bucket struct {
		product  string
		sales    float64
		quantity int
	}
	buckets := make([]bucket, 0, len(totals))
	for product, b := range totals {
		buckets = append(buckets, bucket{product: product, sales: b.sales, quantity: b.quantity})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].sales != buckets[j].sales {
			return buckets[i].sales > buckets[j].sales
		}
		return buckets[i].product < buckets[j].product
	})

	if len(buckets) > topProductLimit {
		buckets = buckets[:topProductLimit]
	}
	items := make([]TopProductItem, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, TopProductItem{
			Product:  b.product,
			Sales:    numeric.Normalize(b.sales),
			Quantity: b.quantity,
		})
	}
	return items
}
