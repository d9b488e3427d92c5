// visualreport aggregates a sales detail CSV, writes SVG charts and a
// Markdown decision report into the output directory, and prints the
// result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sales-data-lab/internal/input"
	"sales-data-lab/internal/logging"
	"sales-data-lab/internal/visual"
)

func main() {
	inputPath := flag.String("input", "data/sales_detail.csv", "Sales detail CSV file")
	outputDir := flag.String("output-dir", "docs", "Output directory for charts and report")
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

	result, err := visual.Build(rows, *outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building visual report: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("wrote artifacts", "output_dir", *outputDir)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
