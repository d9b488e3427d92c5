package visual

import (
	"fmt"
	"strings"
)

// RenderMarkdown builds the decision report referencing the chart files.
func RenderMarkdown(summary Summary, insights []string, artifacts Artifacts) string {
	var sb strings.Builder

	sb.WriteString("# Sales Decision Report\n\n")

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|---|---|\n")
	sb.WriteString(fmt.Sprintf("| Total orders | %d |\n", summary.TotalOrders))
	sb.WriteString(fmt.Sprintf("| Total revenue | %s |\n", summary.TotalRevenue))
	sb.WriteString(fmt.Sprintf("| Average order value | %s |\n", summary.AverageOrderValue))
	sb.WriteString(fmt.Sprintf("| Best sales day | %s |\n", summary.BestSalesDay))
	sb.WriteString(fmt.Sprintf("| Best sales amount | %s |\n", summary.BestSalesAmount))
	sb.WriteString("\n")

	sb.WriteString("## Insights\n\n")
	for _, insight := range insights {
		sb.WriteString(fmt.Sprintf("- %s\n", insight))
	}
	sb.WriteString("\n")

	sb.WriteString("## Charts\n\n")
	sb.WriteString(fmt.Sprintf("![Daily sales](%s)\n\n", artifacts.DailySalesChart))
	sb.WriteString(fmt.Sprintf("![Sales by category](%s)\n\n", artifacts.CategorySalesChart))
	sb.WriteString(fmt.Sprintf("![Top products](%s)\n", artifacts.TopProductsChart))

	return sb.String()
}
