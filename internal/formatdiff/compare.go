// Package formatdiff aggregates two independently sourced detail-row
// batches (JSON array vs. Parquet) with the same rules and reports an
// index-aligned structural diff of the serialized aggregates. Comparison
// is on serialized form on purpose: 25 and 25.0 must count as different.
package formatdiff

import (
	"bytes"
	"encoding/json"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/sales"
)

// DifferenceItem records a disagreement at one position; the exhausted
// side is null.
type DifferenceItem struct {
	Index        int             `json:"index"`
	JSONValue    json.RawMessage `json:"json_value"`
	ParquetValue json.RawMessage `json:"parquet_value"`
}

// Differences holds the per-collection difference lists.
type Differences struct {
	DailySales    []DifferenceItem `json:"daily_sales"`
	CategorySales []DifferenceItem `json:"category_sales"`
	TopProducts   []DifferenceItem `json:"top_products"`
}

// Summary carries the input counts and the equivalence verdict.
type Summary struct {
	JSONRecordCount    int  `json:"json_record_count"`
	ParquetRecordCount int  `json:"parquet_record_count"`
	IsEquivalent       bool `json:"is_equivalent"`
}

// Result is the full comparison output.
type Result struct {
	Summary             Summary            `json:"summary"`
	JSONAggregations    sales.Aggregations `json:"json_aggregations"`
	ParquetAggregations sales.Aggregations `json:"parquet_aggregations"`
	Differences         Differences        `json:"differences"`
}

// Compare aggregates both batches and diffs the three collections
// positionally. The aggregator's deterministic ordering is what makes the
// positional walk meaningful; no re-sorting happens here.
func Compare(jsonRows, parquetRows []domain.DetailRow) *Result {
	jsonAggs := sales.Aggregate(jsonRows)
	parquetAggs := sales.Aggregate(parquetRows)

	differences := Differences{
		DailySales:    compareItems(serializeAll(jsonAggs.DailySales), serializeAll(parquetAggs.DailySales)),
		CategorySales: compareItems(serializeAll(jsonAggs.CategorySales), serializeAll(parquetAggs.CategorySales)),
		TopProducts:   compareItems(serializeAll(jsonAggs.TopProducts), serializeAll(parquetAggs.TopProducts)),
	}

	return &Result{
		Summary: Summary{
			JSONRecordCount:    len(jsonRows),
			ParquetRecordCount: len(parquetRows),
			IsEquivalent: len(differences.DailySales) == 0 &&
				len(differences.CategorySales) == 0 &&
				len(differences.TopProducts) == 0,
		},
		JSONAggregations:    jsonAggs,
		ParquetAggregations: parquetAggs,
		Differences:         differences,
	}
}

// serializeAll marshals each element of items to its canonical JSON form.
func serializeAll[T any](items []T) []json.RawMessage {
	out := make([]json.RawMessage, len(items))
	for i, item := range items {
		b, err := json.Marshal(item)
		if err != nil {
			// Aggregation items are plain structs; marshaling cannot fail.
			panic(err)
		}
		out[i] = b
	}
	return out
}

// compareItems walks indices 0..max(lenA,lenB)-1 and records every
// position where the serialized elements differ.
func compareItems(jsonItems, parquetItems []json.RawMessage) []DifferenceItem {
	nullValue := json.RawMessage("null")

	maxLen := len(jsonItems)
	if len(parquetItems) > maxLen {
		maxLen = len(parquetItems)
	}

	differences := make([]DifferenceItem, 0)
	for i := 0; i < maxLen; i++ {
		jsonValue := nullValue
		if i < len(jsonItems) {
			jsonValue = jsonItems[i]
		}
		parquetValue := nullValue
		if i < len(parquetItems) {
			parquetValue = parquetItems[i]
		}
		if !bytes.Equal(jsonValue, parquetValue) {
			differences = append(differences, DifferenceItem{
				Index:        i,
				JSONValue:    jsonValue,
				ParquetValue: parquetValue,
			})
		}
	}
	return differences
}
