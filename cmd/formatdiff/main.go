// formatdiff aggregates the same detail dataset from a JSON array and a
// Parquet file and reports whether the two pipelines produce identical
// serialized results.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sales-data-lab/internal/formatdiff"
	"sales-data-lab/internal/input"
	"sales-data-lab/internal/logging"
)

func main() {
	jsonPath := flag.String("json-input", "data/sales_detail.json", "Detail rows as a JSON array")
	parquetPath := flag.String("parquet-input", "data/sales_detail.parquet", "Detail rows as a Parquet file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logging.Init(*debug)

	jsonRecords, err := input.ReadJSONArray(*jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading JSON input: %v\n", err)
		os.Exit(1)
	}
	jsonRows, err := input.DetailRows(jsonRecords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing JSON detail rows: %v\n", err)
		os.Exit(1)
	}

	parquetRows, err := input.ReadParquetDetails(*parquetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading Parquet input: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("loaded", "json_rows", len(jsonRows), "parquet_rows", len(parquetRows))

	result := formatdiff.Compare(jsonRows, parquetRows)
	slog.Debug("compared", "equivalent", result.Summary.IsEquivalent)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
