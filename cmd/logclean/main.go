// logclean cleans a JSONL access-log export: fills missing fields, flags
// anomalies, computes IQR outliers and prints the cleaned batch as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sales-data-lab/internal/input"
	"sales-data-lab/internal/logclean"
	"sales-data-lab/internal/logging"
)

func main() {
	inputPath := flag.String("input", "data/access_logs.jsonl", "Access log JSONL file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logging.Init(*debug)

	records, err := input.ReadJSONL(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("loaded log records", "count", len(records))

	result, err := logclean.Clean(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cleaning logs: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("cleaned",
		"kept", len(result.CleanedLogs),
		"anomalies", len(result.Anomalies),
		"outliers", len(result.Outliers))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
