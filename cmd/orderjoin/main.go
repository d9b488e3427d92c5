// orderjoin joins an order export against the customer master, reports
// segment-level sales for both join flavors and prints the result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sales-data-lab/internal/input"
	"sales-data-lab/internal/join"
	"sales-data-lab/internal/logging"
)

func main() {
	customersPath := flag.String("customers", "data/customers.json", "Customer master JSON array")
	ordersPath := flag.String("orders", "data/orders.json", "Order export JSON array")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logging.Init(*debug)

	customerRecords, err := input.ReadJSONArray(*customersPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading customers: %v\n", err)
		os.Exit(1)
	}
	customers, err := input.Customers(customerRecords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing customers: %v\n", err)
		os.Exit(1)
	}

	orderRecords, err := input.ReadJSONArray(*ordersPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading orders: %v\n", err)
		os.Exit(1)
	}
	orders, err := input.Orders(orderRecords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing orders: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("loaded", "customers", len(customers), "orders", len(orders))

	result := join.Join(customers, orders)
	slog.Debug("joined",
		"inner_rows", result.Summary.InnerJoinRows,
		"orphans", result.Summary.OrphanOrderCount)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
