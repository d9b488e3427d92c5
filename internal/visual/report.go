// Package visual turns a detail-row batch into a decision-oriented report:
// the shared sales aggregations, headline metrics, short insights, SVG
// charts and a Markdown summary referencing them.
package visual

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sales-data-lab/internal/domain"
	"sales-data-lab/internal/numeric"
	"sales-data-lab/internal/sales"
)

// ErrEmptyDataset is returned when no rows exist; a best sales day cannot
// be derived from nothing.
var ErrEmptyDataset = errors.New("empty dataset: at least one detail row required")

// Artifact file names written into the output directory.
const (
	dailyChartFile     = "daily_sales.svg"
	categoryChartFile  = "category_sales.svg"
	topProductsFile    = "top_products.svg"
	decisionReportFile = "decision_report.md"
)

// Summary carries the headline sales metrics.
type Summary struct {
	TotalOrders       int            `json:"total_orders"`
	TotalRevenue      numeric.Number `json:"total_revenue"`
	AverageOrderValue numeric.Number `json:"average_order_value"`
	BestSalesDay      string         `json:"best_sales_day"`
	BestSalesAmount   numeric.Number `json:"best_sales_amount"`
}

// Artifacts lists the generated file names.
type Artifacts struct {
	DailySalesChart        string `json:"daily_sales_chart"`
	CategorySalesChart     string `json:"category_sales_chart"`
	TopProductsChart       string `json:"top_products_chart"`
	DecisionReportMarkdown string `json:"decision_report_markdown"`
}

// Result is the full visual report output.
type Result struct {
	Summary       Summary                   `json:"summary"`
	DailySales    []sales.DailySalesItem    `json:"daily_sales"`
	CategorySales []sales.CategorySalesItem `json:"category_sales"`
	TopProducts   []sales.TopProductItem    `json:"top_products"`
	Insights      []string                  `json:"insights"`
	Artifacts     Artifacts                 `json:"artifacts"`
}

// Build aggregates rows, derives the headline metrics and writes the chart
// and Markdown artifacts into outDir.
func Build(rows []domain.DetailRow, outDir string) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	aggs := sales.Aggregate(rows)

	// First-seen day wins ties: strict greater-than scan.
	best := aggs.DailySales[0]
	for _, item := range aggs.DailySales {
		if item.Sales.Float64() > best.Sales.Float64() {
			best = item
		}
	}

	var totalRevenue float64
	for _, item := range aggs.DailySales {
		totalRevenue += item.Sales.Float64()
	}

	summary := Summary{
		TotalOrders:       len(rows),
		TotalRevenue:      numeric.Normalize(totalRevenue),
		AverageOrderValue: numeric.Normalize(totalRevenue / float64(len(rows))),
		BestSalesDay:      best.Date,
		BestSalesAmount:   best.Sales,
	}

	artifacts := Artifacts{
		DailySalesChart:        dailyChartFile,
		CategorySalesChart:     categoryChartFile,
		TopProductsChart:       topProductsFile,
		DecisionReportMarkdown: decisionReportFile,
	}
	insights := buildInsights(summary, aggs)

	if err := writeArtifacts(outDir, aggs, summary, insights, artifacts); err != nil {
		return nil, err
	}

	return &Result{
		Summary:       summary,
		DailySales:    aggs.DailySales,
		CategorySales: aggs.CategorySales,
		TopProducts:   aggs.TopProducts,
		Insights:      insights,
		Artifacts:     artifacts,
	}, nil
}

// buildInsights derives the short decision notes from the aggregates.
// Build guarantees at least one row, so every collection is non-empty.
func buildInsights(summary Summary, aggs sales.Aggregations) []string {
	topCategory := aggs.CategorySales[0]
	topProduct := aggs.TopProducts[0]
	return []string{
		fmt.Sprintf("Best sales day is %s with daily sales of %s.", summary.BestSalesDay, summary.BestSalesAmount),
		fmt.Sprintf("Top category is %s with sales of %s.", topCategory.Category, topCategory.Sales),
		fmt.Sprintf("Top product is %s with sales of %s.", topProduct.Product, topProduct.Sales),
	}
}

func writeArtifacts(outDir string, aggs sales.Aggregations, summary Summary, insights []string, artifacts Artifacts) error {
	files := map[string]string{
		artifacts.DailySalesChart:        renderDailyChart(aggs.DailySales),
		artifacts.CategorySalesChart:     renderCategoryChart(aggs.CategorySales),
		artifacts.TopProductsChart:       renderTopProductsChart(aggs.TopProducts),
		artifacts.DecisionReportMarkdown: RenderMarkdown(summary, insights, artifacts),
	}
	for name, content := range files {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
