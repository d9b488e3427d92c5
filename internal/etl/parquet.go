package etl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"sales-data-lab/internal/domain"
)

// parquetOrderRow is the 8-column columnar schema of the cleaned output:
// string/string/string/string/int32/double/string/double.
type parquetOrderRow struct {
	OrderID    string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	OrderDate  string  `parquet:"name=order_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerID string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Product    string  `parquet:"name=product, type=BYTE_ARRAY, convertedtype=UTF8"`
	Quantity   int32   `parquet:"name=quantity, type=INT32"`
	UnitPrice  float64 `parquet:"name=unit_price, type=DOUBLE"`
	OrderMonth string  `parquet:"name=order_month, type=BYTE_ARRAY, convertedtype=UTF8"`
	LineTotal  float64 `parquet:"name=line_total, type=DOUBLE"`
}

// ParquetLoader writes the cleaned batch to an uncompressed Parquet file,
// creating parent directories as needed.
type ParquetLoader struct {
	Path string
}

// Load writes all rows and returns the destination and row count.
func (l *ParquetLoader) Load(rows []domain.CleanedOrder) (LoadStats, error) {
	if dir := filepath.Dir(l.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return LoadStats{}, fmt.Errorf("create output dir: %w", err)
		}
	}

	fw, err := local.NewLocalFileWriter(l.Path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("open parquet output %s: %w", l.Path, err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(parquetOrderRow), 1)
	if err != nil {
		return LoadStats{}, fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_UNCOMPRESSED

	for _, row := range rows {
		out := parquetOrderRow{
			OrderID:    row.OrderID,
			OrderDate:  row.OrderDate,
			CustomerID: row.CustomerID,
			Product:    row.Product,
			Quantity:   int32(row.Quantity),
			UnitPrice:  row.UnitPrice,
			OrderMonth: row.OrderMonth,
			LineTotal:  row.LineTotal,
		}
		if err := pw.Write(out); err != nil {
			return LoadStats{}, fmt.Errorf("write parquet row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return LoadStats{}, fmt.Errorf("finalize parquet output: %w", err)
	}

	return LoadStats{OutputPath: l.Path, LoadedRecords: len(rows)}, nil
}
