package input

import (
	"fmt"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/record"
)

// DetailRows converts loose records into typed detail rows. A missing or
// unparseable field is fatal: detail exports are expected to be well formed.
func DetailRows(records []record.Record) ([]domain.DetailRow, error) {
	rows := make([]domain.DetailRow, 0, len(records))
	for i, rec := range records {
		date, ok := rec.String("date")
		if !ok {
			return nil, fmt.Errorf("row %d: missing date", i)
		}
		product, ok := rec.String("product")
		if !ok {
			return nil, fmt.Errorf("row %d: missing product", i)
		}
		category, ok := rec.String("category")
		if !ok {
			return nil, fmt.Errorf("row %d: missing category", i)
		}
		quantity, ok := rec.Int("quantity")
		if !ok {
			return nil, fmt.Errorf("row %d: invalid quantity", i)
		}
		price, ok := rec.Float("price")
		if !ok {
			return nil, fmt.Errorf("row %d: invalid price", i)
		}
		rows = append(rows, domain.DetailRow{
			Date:     date,
			Product:  product,
			Category: category,
			Quantity: quantity,
			Price:    price,
		})
	}
	return rows, nil
}

// Customers converts loose records into the customer master.
func Customers(records []record.Record) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0, len(records))
	for i, rec := range records {
		id, ok := rec.String("customer_id")
		if !ok {
			return nil, fmt.Errorf("customer %d: missing customer_id", i)
		}
		name, _ := rec.String("customer_name")
		segment, _ := rec.String("segment")
		customers = append(customers, domain.Customer{
			CustomerID:   id,
			CustomerName: name,
			Segment:      segment,
		})
	}
	return customers, nil
}

// Orders converts loose records into typed order lines.
func Orders(records []record.Record) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(records))
	for i, rec := range records {
		orderID, ok := rec.String("order_id")
		if !ok {
			return nil, fmt.Errorf("order %d: missing order_id", i)
		}
		orderDate, ok := rec.String("order_date")
		if !ok {
			return nil, fmt.Errorf("order %d: missing order_date", i)
		}
		customerID, _ := rec.String("customer_id")
		product, _ := rec.String("product")
		quantity, ok := rec.Int("quantity")
		if !ok {
			return nil, fmt.Errorf("order %d: invalid quantity", i)
		}
		unitPrice, ok := rec.Float("unit_price")
		if !ok {
			return nil, fmt.Errorf("order %d: invalid unit_price", i)
		}
		orders = append(orders, domain.Order{
			OrderID:    orderID,
			OrderDate:  orderDate,
			CustomerID: customerID,
			Product:    product,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
		})
	}
	return orders, nil
}
