package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-data-lab/internal/record"
)

func rawRows() []record.Record {
	return []record.Record{
		{"order_id": "O2", "order_date": "2024-01-06", "customer_id": "C2", "product": "Pen", "quantity": "2", "unit_price": "3.5"},
		{"order_id": "O1", "order_date": "2024-01-05", "customer_id": "C1", "product": "Book", "quantity": "4", "unit_price": "10"},
		{"order_id": "O3", "order_date": "not-a-date", "customer_id": "C3", "product": "Ink", "quantity": "1", "unit_price": "5"},
		{"order_id": "O4", "order_date": "2024-01-05", "customer_id": "", "product": "Desk", "quantity": "-1", "unit_price": "abc"},
	}
}

func TestRun_StageStats(t *testing.T) {
	loader := &MemoryLoader{}
	got, err := Run(rawRows(), loader)
	require.NoError(t, err)

	assert.Equal(t, 4, got.Summary.Extract.InputRecords)
	assert.Equal(t, 3, got.Summary.Transform.TransformedRecords)
	assert.Equal(t, 1, got.Summary.Transform.DroppedInvalidOrderDateCount)
	assert.Equal(t, 1, got.Summary.Transform.FilledCustomerIDCount)
	assert.Equal(t, 1, got.Summary.Transform.FilledQuantityCount)
	assert.Equal(t, 1, got.Summary.Transform.FilledUnitPriceCount)
	assert.Equal(t, 3, got.Summary.Load.LoadedRecords)
	assert.Equal(t, "memory", got.Summary.Load.OutputPath)
}

func TestRun_MedianFills(t *testing.T) {
	loader := &MemoryLoader{}
	got, err := Run(rawRows(), loader)
	require.NoError(t, err)

	// Valid quantities: [2, 4] → median 3. Valid prices: [3.5, 10] → 6.75.
	assert.Equal(t, "3", got.Summary.Transform.QuantityFillValue.String())
	assert.Equal(t, "6.75", got.Summary.Transform.UnitPriceFillValue.String())

	var filled *CleanedOrderItem
	for i := range got.SampleCleanedRows {
		if got.SampleCleanedRows[i].OrderID == "O4" {
			filled = &got.SampleCleanedRows[i]
		}
	}
	require.NotNil(t, filled)
	assert.Equal(t, "UNKNOWN_CUSTOMER", filled.CustomerID)
	assert.Equal(t, 3, filled.Quantity)
	assert.Equal(t, "6.75", filled.UnitPrice.String())
	assert.Equal(t, "20.25", filled.LineTotal.String())
}

func TestRun_MedianFallbacks(t *testing.T) {
	rows := []record.Record{
		{"order_id": "O1", "order_date": "2024-01-05", "customer_id": "C1", "product": "X", "quantity": "0", "unit_price": "-2"},
	}
	loader := &MemoryLoader{}
	got, err := Run(rows, loader)
	require.NoError(t, err)

	assert.Equal(t, "1", got.Summary.Transform.QuantityFillValue.String())
	assert.Equal(t, "0", got.Summary.Transform.UnitPriceFillValue.String())
	require.Len(t, loader.Rows, 1)
	assert.Equal(t, 1, loader.Rows[0].Quantity)
	assert.Equal(t, 0.0, loader.Rows[0].UnitPrice)
}

func TestRun_SortedByDateThenOrderID(t *testing.T) {
	loader := &MemoryLoader{}
	got, err := Run(rawRows(), loader)
	require.NoError(t, err)

	require.Len(t, loader.Rows, 3)
	assert.Equal(t, "O1", loader.Rows[0].OrderID)
	assert.Equal(t, "O4", loader.Rows[1].OrderID)
	assert.Equal(t, "O2", loader.Rows[2].OrderID)
	assert.Equal(t, "2024-01", loader.Rows[0].OrderMonth)

	require.Len(t, got.SampleCleanedRows, 3)
	assert.Equal(t, "O1", got.SampleCleanedRows[0].OrderID)
}

func TestRun_TotalSales(t *testing.T) {
	loader := &MemoryLoader{}
	got, err := Run(rawRows(), loader)
	require.NoError(t, err)

	// O1: 4*10 = 40, O2: 2*3.5 = 7, O4: 3*6.75 = 20.25 → 67.25
	assert.Equal(t, "67.25", got.Summary.TotalSales.String())
}

func TestRun_SampleBoundedToThree(t *testing.T) {
	rows := make([]record.Record, 0, 5)
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		rows = append(rows, record.Record{
			"order_id": id, "order_date": "2024-01-05", "customer_id": "C1",
			"product": "X", "quantity": "1", "unit_price": "2",
		})
	}
	got, err := Run(rows, &MemoryLoader{})
	require.NoError(t, err)
	assert.Len(t, got.SampleCleanedRows, 3)
}

func TestRun_EmptyInput(t *testing.T) {
	loader := &MemoryLoader{}
	got, err := Run(nil, loader)
	require.NoError(t, err)

	assert.Equal(t, 0, got.Summary.Extract.InputRecords)
	assert.Equal(t, 0, got.Summary.Transform.TransformedRecords)
	assert.Equal(t, "0", got.Summary.TotalSales.String())
	assert.Empty(t, got.SampleCleanedRows)
}
