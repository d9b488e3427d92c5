// etl runs the CSV-to-Parquet order pipeline: extract the raw export,
// clean and fill it, write the columnar output, and print stage stats plus
// a cleaned-row sample as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sales-data-lab/internal/etl"
	"sales-data-lab/internal/input"
	"sales-data-lab/internal/logging"
)

func main() {
	inputPath := flag.String("input", "data/raw_orders.csv", "Raw order export CSV file")
	outputPath := flag.String("output", "data/cleaned_orders.parquet", "Cleaned Parquet output file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logging.Init(*debug)

	rawRows, err := input.ReadCSV(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("extracted raw rows", "count", len(rawRows))

	result, err := etl.Run(rawRows, &etl.ParquetLoader{Path: *outputPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running pipeline: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("pipeline finished",
		"output", result.Summary.Load.OutputPath,
		"loaded", result.Summary.Load.LoadedRecords)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
