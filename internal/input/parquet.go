package input

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"sales-data-lab/internal/domain"
)

// parquetDetailRow mirrors the detail export schema. Pandas-produced files
// carry integer columns as INT64.
type parquetDetailRow struct {
	Date     string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8"`
	Product  string  `parquet:"name=product, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	Quantity int64   `parquet:"name=quantity, type=INT64"`
	Price    float64 `parquet:"name=price, type=DOUBLE"`
}

// parquetCleanedOrder mirrors the 8-column cleaned order schema written by
// the ETL load stage.
type parquetCleanedOrder struct {
	OrderID    string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderDate  string  `parquet:"name=order_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerID string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Product    string  `parquet:"name=product, type=BYTE_ARRAY, convertedtype=UTF8"`
	Quantity   int32   `parquet:"name=quantity, type=INT32"`
	UnitPrice  float64 `parquet:"name=unit_price, type=DOUBLE"`
	OrderMonth string  `parquet:"name=order_month, type=BYTE_ARRAY, convertedtype=UTF8"`
	LineTotal  float64 `parquet:"name=line_total, type=DOUBLE"`
}

func readParquet[T any](path string) ([]T, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(T), 1)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}
	defer pr.ReadStop()

	rows := make([]T, pr.GetNumRows())
	if err := pr.Read(&rows); err != nil {
		return nil, fmt.Errorf("read parquet rows %s: %w", path, err)
	}
	return rows, nil
}

// ReadParquetDetails reads a detail export Parquet file.
func ReadParquetDetails(path string) ([]domain.DetailRow, error) {
	raw, err := readParquet[parquetDetailRow](path)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.DetailRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, domain.DetailRow{
			Date:     r.Date,
			Product:  r.Product,
			Category: r.Category,
			Quantity: int(r.Quantity),
			Price:    r.Price,
		})
	}
	return rows, nil
}

// ReadParquetOrders reads back a cleaned-order file produced by the ETL
// load stage.
func ReadParquetOrders(path string) ([]domain.CleanedOrder, error) {
	raw, err := readParquet[parquetCleanedOrder](path)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.CleanedOrder, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, domain.CleanedOrder{
			OrderID:    r.OrderID,
			OrderDate:  r.OrderDate,
			CustomerID: r.CustomerID,
			Product:    r.Product,
			Quantity:   int(r.Quantity),
			UnitPrice:  r.UnitPrice,
			OrderMonth: r.OrderMonth,
			LineTotal:  r.LineTotal,
		})
	}
	return rows, nil
}
