// Package etl implements the extract/transform/load mini-pipeline over raw
// order rows: date validation, median-based fills for quantity and unit
// price, derived columns, and a columnar load via a pluggable Loader.
package etl

import (
	"math"
	"sort"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/numeric"
	"sales-data-lab/internal/record"
	"sales-data-lab/internal/stats"
)

// Fill defaults when no valid median candidates exist.
const (
	fallbackQuantityFill  = 1.0
	fallbackUnitPriceFill = 0.0
	unknownCustomerID     = "UNKNOWN_CUSTOMER"
	sampleRowCount        = 3
)

// ExtractStats counts raw input rows; nothing is filtered at this stage.
type ExtractStats struct {
	InputRecords int `json:"input_records"`
}

// TransformStats counts drops, fills and the fill values used.
type TransformStats struct {
	TransformedRecords           int            `json:"transformed_records"`
	DroppedInvalidOrderDateCount int            `json:"dropped_invalid_order_date_count"`
	FilledCustomerIDCount        int            `json:"filled_customer_id_count"`
	FilledQuantityCount          int            `json:"filled_quantity_count"`
	FilledUnitPriceCount         int            `json:"filled_unit_price_count"`
	QuantityFillValue            numeric.Number `json:"quantity_fill_value"`
	UnitPriceFillValue           numeric.Number `json:"unit_price_fill_value"`
}

// LoadStats reports where and how many rows were persisted.
type LoadStats struct {
	OutputPath    string `json:"output_path"`
	LoadedRecords int    `json:"loaded_records"`
}

// Summary bundles the per-stage stats with the cleaned revenue total.
type Summary struct {
	Extract    ExtractStats   `json:"extract"`
	Transform  TransformStats `json:"transform"`
	Load       LoadStats      `json:"load"`
	TotalSales numeric.Number `json:"total_sales"`
}

// CleanedOrderItem is the JSON view of one cleaned row.
type CleanedOrderItem struct {
	OrderID    string         `json:"order_id"`
	OrderDate  string         `json:"order_date"`
	CustomerID string         `json:"customer_id"`
	Product    string         `json:"product"`
	Quantity   int            `json:"quantity"`
	UnitPrice  numeric.Number `json:"unit_price"`
	OrderMonth string         `json:"order_month"`
	LineTotal  numeric.Number `json:"line_total"`
}

// Result is the full pipeline report.
type Result struct {
	Summary           Summary            `json:"summary"`
	SampleCleanedRows []CleanedOrderItem `json:"sample_cleaned_rows"`
}

// Run executes the pipeline over raw rows and persists the cleaned batch
// through loader. Stage order is fixed; fills depend on batch-wide medians
// so nothing streams.
func Run(rawRows []record.Record, loader Loader) (*Result, error) {
	extractStats := ExtractStats{InputRecords: len(rawRows)}

	cleaned, transformStats := transform(rawRows)

	loadStats, err := loader.Load(cleaned)
	if err != nil {
		return nil, err
	}

	var totalSales float64
	for _, row := range cleaned {
		totalSales += row.LineTotal
	}

	sample := make([]CleanedOrderItem, 0, sampleRowCount)
	for i, row := range cleaned {
		if i == sampleRowCount {
			break
		}
		sample = append(sample, CleanedOrderItem{
			OrderID:    row.OrderID,
			OrderDate:  row.OrderDate,
			CustomerID: row.CustomerID,
			Product:    row.Product,
			Quantity:   row.Quantity,
			UnitPrice:  numeric.Normalize(row.UnitPrice),
			OrderMonth: row.OrderMonth,
			LineTotal:  numeric.Normalize(row.LineTotal),
		})
	}

	return &Result{
		Summary: Summary{
			Extract:    extractStats,
			Transform:  transformStats,
			Load:       loadStats,
			TotalSales: numeric.Normalize(totalSales),
		},
		SampleCleanedRows: sample,
	}, nil
}

// survivor is one row that passed date validation, pre-fill.
type survivor struct {
	orderID    string
	date       string // normalized YYYY-MM-DD
	customerID string
	product    string
	quantity   float64
	quantityOK bool
	unitPrice  float64
	priceOK    bool
}

// transform validates dates, derives batch medians and fills each
// surviving row by the fixed rules.
func transform(rawRows []record.Record) ([]domain.CleanedOrder, TransformStats) {
	var st TransformStats

	survivors := make([]survivor, 0, len(rawRows))
	for _, row := range rawRows {
		rawDate, _ := row.String("order_date")
		parsed, ok := record.ParseDate(rawDate)
		if !ok {
			st.DroppedInvalidOrderDateCount++
			continue
		}

		s := survivor{date: parsed.Format("2006-01-02")}
		s.orderID, _ = row.String("order_id")
		s.customerID, _ = row.String("customer_id")
		s.product, _ = row.String("product")
		s.quantity, s.quantityOK = row.Float("quantity")
		s.unitPrice, s.priceOK = row.Float("unit_price")
		survivors = append(survivors, s)
	}

	quantityFill := medianOrFallback(collect(survivors, func(s survivor) (float64, bool) {
		return s.quantity, s.quantityOK && s.quantity > 0
	}), fallbackQuantityFill)
	priceFill := medianOrFallback(collect(survivors, func(s survivor) (float64, bool) {
		return s.unitPrice, s.priceOK && s.unitPrice >= 0
	}), fallbackUnitPriceFill)

	st.QuantityFillValue = numeric.Normalize(quantityFill)
	st.UnitPriceFillValue = numeric.Normalize(priceFill)

	cleaned := make([]domain.CleanedOrder, 0, len(survivors))
	for _, s := range survivors {
		customerID := s.customerID
		if customerID == "" {
			customerID = unknownCustomerID
			st.FilledCustomerIDCount++
		}

		quantity := s.quantity
		if !s.quantityOK || quantity <= 0 {
			quantity = quantityFill
			st.FilledQuantityCount++
		}
		// Half-to-even, matching the reference implementation's rounding of
		// fractional fill medians.
		quantityInt := int(math.RoundToEven(quantity))

		unitPrice := s.unitPrice
		if !s.priceOK || unitPrice < 0 {
			unitPrice = priceFill
			st.FilledUnitPriceCount++
		}

		lineTotal := numeric.Normalize(float64(quantityInt) * unitPrice).Float64()
		cleaned = append(cleaned, domain.CleanedOrder{
			OrderID:    s.orderID,
			OrderDate:  s.date,
			CustomerID: customerID,
			Product:    s.product,
			Quantity:   quantityInt,
			UnitPrice:  unitPrice,
			OrderMonth: s.date[:7],
			LineTotal:  lineTotal,
		})
	}

	sort.Slice(cleaned, func(i, j int) bool {
		if cleaned[i].OrderDate != cleaned[j].OrderDate {
			return cleaned[i].OrderDate < cleaned[j].OrderDate
		}
		return cleaned[i].OrderID < cleaned[j].OrderID
	})

	st.TransformedRecords = len(cleaned)
	return cleaned, st
}

func collect(survivors []survivor, pick func(survivor) (float64, bool)) []float64 {
	values := make([]float64, 0, len(survivors))
	for _, s := range survivors {
		if v, ok := pick(s); ok {
			values = append(values, v)
		}
	}
	return values
}

func medianOrFallback(candidates []float64, fallback float64) float64 {
	m, err := stats.Median(candidates)
	if err != nil {
		return fallback
	}
	return m
}
