// salesreport aggregates a sales detail CSV into daily, category and
// top-product views and prints the result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sales-data-lab/internal/input"
	"sales-data-lab/internal/logging"
	"sales-data-lab/internal/sales"
)

func main() {
	inputPath := flag.String("input", "data/sales_detail.csv", "Sales detail CSV file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logging.Init(*debug)

	records, err := input.ReadCSV(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	rows, err := input.DetailRows(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing detail rows: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("loaded detail rows", "count", len(rows))

	result := sales.Aggregate(rows)
	slog.Debug("aggregated",
		"daily", len(result.DailySales),
		"categories", len(result.CategorySales),
		"top_products", len(result.TopProducts))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
