package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/numeric"
)

func sampleRows() []domain.DetailRow {
	return []domain.DetailRow{
		{Date: "2026-01-02", Product: "Pen", Category: "Stationery", Quantity: 3, Price: 1.5},
		{Date: "2026-01-01", Product: "Bread", Category: "Food", Quantity: 2, Price: 2.5},
		{Date: "2026-01-01", Product: "Pen", Category: "Stationery", Quantity: 1, Price: 1.5},
		{Date: "2026-01-02", Product: "Milk", Category: "Food", Quantity: 4, Price: 1.25},
	}
}

func TestAggregate_DailySalesOrderedByDate(t *testing.T) {
	got := Aggregate(sampleRows())

	require.Len(t, got.DailySales, 2)
	assert.Equal(t, "2026-01-01", got.DailySales[0].Date)
	// 2*2.5 + 1*1.5 = 6.5
	assert.Equal(t, "6.5", got.DailySales[0].Sales.String())
	assert.Equal(t, "2026-01-02", got.DailySales[1].Date)
	// 3*1.5 + 4*1.25 = 9.5
	assert.Equal(t, "9.5", got.DailySales[1].Sales.String())
}

func TestAggregate_CategorySalesOrderedBySalesDesc(t *testing.T) {
	got := Aggregate(sampleRows())

	require.Len(t, got.CategorySales, 2)
	// Food = 5 + 5 = 10, Stationery = 1.5 + 4.5 = 6
	assert.Equal(t, "Food", got.CategorySales[0].Category)
	assert.Equal(t, "10", got.CategorySales[0].Sales.String())
	assert.Equal(t, "Stationery", got.CategorySales[1].Category)
	assert.Equal(t, "6", got.CategorySales[1].Sales.String())
}

func TestAggregate_CategoryTieBrokenByName(t *testing.T) {
	rows := []domain.DetailRow{
		{Date: "2026-01-01", Product: "B", Category: "Beta", Quantity: 1, Price: 5},
		{Date: "2026-01-01", Product: "A", Category: "Alpha", Quantity: 1, Price: 5},
	}
	got := Aggregate(rows)

	require.Len(t, got.CategorySales, 2)
	assert.Equal(t, "Alpha", got.CategorySales[0].Category)
	assert.Equal(t, "Beta", got.CategorySales[1].Category)
}

func TestAggregate_TopProductsBoundedAndStable(t *testing.T) {
	rows := []domain.DetailRow{
		{Date: "2026-01-01", Product: "A", Category: "X", Quantity: 1, Price: 40},
		{Date: "2026-01-01", Product: "B", Category: "X", Quantity: 1, Price: 30},
		{Date: "2026-01-01", Product: "C", Category: "X", Quantity: 1, Price: 20},
		{Date: "2026-01-01", Product: "D", Category: "X", Quantity: 1, Price: 10},
	}
	got := Aggregate(rows)

	require.Len(t, got.TopProducts, 3)
	assert.Equal(t, "A", got.TopProducts[0].Product)
	assert.Equal(t, "B", got.TopProducts[1].Product)
	assert.Equal(t, "C", got.TopProducts[2].Product)

	// Reordering input must not change the output.
	reordered := []domain.DetailRow{rows[3], rows[1], rows[0], rows[2]}
	assert.Equal(t, got, Aggregate(reordered))
}

func TestAggregate_TopProductsSumsQuantity(t *testing.T) {
	got := Aggregate(sampleRows())

	require.NotEmpty(t, got.TopProducts)
	for _, p := range got.TopProducts {
		if p.Product == "Pen" {
			assert.Equal(t, 4, p.Quantity)
			assert.Equal(t, "6", p.Sales.String())
		}
	}
}

func TestAggregate_Conservation(t *testing.T) {
	rows := sampleRows()
	got := Aggregate(rows)

	var detailTotal float64
	for _, r := range rows {
		detailTotal += r.LineTotal()
	}
	var dailyTotal, categoryTotal float64
	for _, d := range got.DailySales {
		dailyTotal += d.Sales.Float64()
	}
	for _, c := range got.CategorySales {
		categoryTotal += c.Sales.Float64()
	}
	assert.True(t, numeric.Normalize(detailTotal).Equal(numeric.Normalize(dailyTotal)))
	assert.True(t, numeric.Normalize(detailTotal).Equal(numeric.Normalize(categoryTotal)))
}

func TestAggregate_EmptyInput(t *testing.T) {
	got := Aggregate(nil)

	assert.NotNil(t, got.DailySales)
	assert.NotNil(t, got.CategorySales)
	assert.NotNil(t, got.TopProducts)
	assert.Empty(t, got.DailySales)
	assert.Empty(t, got.CategorySales)
	assert.Empty(t, got.TopProducts)
}
