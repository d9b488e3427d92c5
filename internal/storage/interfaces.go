package storage

import (
	"context"

	"sales-data-lab/internal/domain"
)

// OrderRowSource provides read access to the sales_orders data.
type OrderRowSource interface {
	// ListOrderRows retrieves every order row, ordered by order_date ASC
	// then order_id ASC.
	ListOrderRows(ctx context.Context) ([]domain.OrderRow, error)
}
