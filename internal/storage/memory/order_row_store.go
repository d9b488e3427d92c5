// Package memory provides in-memory storage implementations for tests and
// fixture-driven tool runs.
package memory

import (
	"context"
	"sort"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/storage"
)

// OrderRowStore implements storage.OrderRowSource in memory.
type OrderRowStore struct {
	rows []domain.OrderRow
}

// NewOrderRowStore creates a store over the given rows.
func NewOrderRowStore(rows []domain.OrderRow) *OrderRowStore {
	return &OrderRowStore{rows: rows}
}

// NewFixtureOrderRowStore creates a store seeded with the same rows as
// sql/postgres/002_seed_sales_orders.sql, for running tools without a
// database.
func NewFixtureOrderRowStore() *OrderRowStore {
	return NewOrderRowStore(fixtureOrderRows())
}

// Compile-time interface check.
var _ storage.OrderRowSource = (*OrderRowStore)(nil)

// ListOrderRows returns a copy of the rows ordered by order_date then
// order_id, matching the relational source's contract.
func (s *OrderRowStore) ListOrderRows(_ context.Context) ([]domain.OrderRow, error) {
	rows := make([]domain.OrderRow, len(s.rows))
	copy(rows, s.rows)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OrderDate != rows[j].OrderDate {
			return rows[i].OrderDate < rows[j].OrderDate
		}
		return rows[i].OrderID < rows[j].OrderID
	})
	return rows, nil
}

func fixtureOrderRows() []domain.OrderRow {
	return []domain.OrderRow{
		{OrderID: "O-1001", OrderDate: "2024-03-01", CustomerSegment: "Enterprise", PaymentMethod: "credit_card", OrderAmount: 1200.00},
		{OrderID: "O-1002", OrderDate: "2024-03-01", CustomerSegment: "Consumer", PaymentMethod: "paypal", OrderAmount: 89.99},
		{OrderID: "O-1003", OrderDate: "2024-03-02", CustomerSegment: "Consumer", PaymentMethod: "credit_card", OrderAmount: 450.00},
		{OrderID: "O-1004", OrderDate: "2024-03-02", CustomerSegment: "SMB", PaymentMethod: "bank_transfer", OrderAmount: 760.50},
		{OrderID: "O-1005", OrderDate: "2024-03-03", CustomerSegment: "Enterprise", PaymentMethod: "bank_transfer", OrderAmount: 2300.00},
		{OrderID: "O-1006", OrderDate: "2024-03-03", CustomerSegment: "Consumer", PaymentMethod: "credit_card", OrderAmount: 120.25},
		{OrderID: "O-1007", OrderDate: "2024-03-04", CustomerSegment: "SMB", PaymentMethod: "paypal", OrderAmount: 499.99},
		{OrderID: "O-1008", OrderDate: "2024-03-04", CustomerSegment: "Enterprise", PaymentMethod: "credit_card", OrderAmount: 500.00},
	}
}
