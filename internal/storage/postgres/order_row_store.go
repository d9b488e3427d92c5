package postgres

import (
	"context"
	"fmt"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/storage"
)

// OrderRowStore implements storage.OrderRowSource using PostgreSQL.
type OrderRowStore struct {
	pool *Pool
}

// NewOrderRowStore creates a new OrderRowStore.
func NewOrderRowStore(pool *Pool) *OrderRowStore {
	return &OrderRowStore{pool: pool}
}

// Compile-time interface check.
var _ storage.OrderRowSource = (*OrderRowStore)(nil)

// ListOrderRows retrieves every order row ordered by order_date then
// order_id, so downstream aggregation sees a deterministic batch.
func (s *OrderRowStore) ListOrderRows(ctx context.Context) ([]domain.OrderRow, error) {
	query := `
		SELECT order_id, order_date::text, customer_segment, payment_method, order_amount
		FROM sales_orders
		ORDER BY order_date, order_id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sales_orders: %w", err)
	}
	defer rows.Close()

	orderRows := make([]domain.OrderRow, 0)
	for rows.Next() {
		var r domain.OrderRow
		if err := rows.Scan(&r.OrderID, &r.OrderDate, &r.CustomerSegment, &r.PaymentMethod, &r.OrderAmount); err != nil {
			return nil, fmt.Errorf("scan sales_orders row: %w", err)
		}
		orderRows = append(orderRows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales_orders rows: %w", err)
	}

	return orderRows, nil
}
