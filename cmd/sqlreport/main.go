// sqlreport re-aggregates the sales_orders table (daily, segment, payment
// method, high-value orders) and prints the report as JSON. Runs against
// PostgreSQL, or against the seeded in-memory fixture with --use-fixtures.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sales-data-lab/internal/logging"
	"sales-data-lab/internal/sqlreport"
	"sales-data-lab/internal/storage"
	"sales-data-lab/internal/storage/memory"
	pgstore "sales-data-lab/internal/storage/postgres"
)

func main() {
	dbURL := flag.String("db-url", "postgres://app:app@db:5432/app", "PostgreSQL connection string")
	threshold := flag.Float64("high-value-threshold", 500.0, "Minimum amount for a high-value order")
	useFixtures := flag.Bool("use-fixtures", false, "Use the in-memory fixture batch instead of a database")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logging.Init(*debug)

	ctx := context.Background()

	var source storage.OrderRowSource
	if *useFixtures {
		source = memory.NewFixtureOrderRowStore()
	} else {
		pool, err := pgstore.NewPool(ctx, *dbURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()
		source = pgstore.NewOrderRowStore(pool)
	}

	rows, err := source.ListOrderRows(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading order rows: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("loaded order rows", "count", len(rows))

	report, err := sqlreport.Build(rows, *threshold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("built report",
		"days", len(report.DailySales),
		"high_value", report.Summary.HighValueOrderCount)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
