package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-data-lab/internal/domain"
)

func TestListOrderRowsSorted(t *testing.T) {
	store := NewOrderRowStore([]domain.OrderRow{
		{OrderID: "O-2", OrderDate: "2024-03-02", CustomerSegment: "SMB", PaymentMethod: "paypal", OrderAmount: 20},
		{OrderID: "O-3", OrderDate: "2024-03-01", CustomerSegment: "Consumer", PaymentMethod: "paypal", OrderAmount: 30},
		{OrderID: "O-1", OrderDate: "2024-03-01", CustomerSegment: "Consumer", PaymentMethod: "paypal", OrderAmount: 10},
	})

	rows, err := store.ListOrderRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "O-1", rows[0].OrderID)
	assert.Equal(t, "O-3", rows[1].OrderID)
	assert.Equal(t, "O-2", rows[2].OrderID)
}

func TestListOrderRowsReturnsCopy(t *testing.T) {
	store := NewFixtureOrderRowStore()

	rows, err := store.ListOrderRows(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	rows[0].OrderID = "mutated"

	again, err := store.ListOrderRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "O-1001", again[0].OrderID)
}

func TestFixtureRowsStable(t *testing.T) {
	rows, err := NewFixtureOrderRowStore().ListOrderRows(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 8)
	assert.Equal(t, "2024-03-01", rows[0].OrderDate)
	assert.Equal(t, "2024-03-04", rows[len(rows)-1].OrderDate)
}
