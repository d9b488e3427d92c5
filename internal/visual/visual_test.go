package visual

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-data-lab/internal/domain"
)

func sampleRows() []domain.DetailRow {
	return []domain.DetailRow{
		{Date: "2024-01-01", Product: "Laptop", Category: "Electronics", Quantity: 1, Price: 1200},
		{Date: "2024-01-01", Product: "Mouse", Category: "Electronics", Quantity: 2, Price: 25},
		{Date: "2024-01-02", Product: "Desk", Category: "Furniture", Quantity: 1, Price: 300},
		{Date: "2024-01-03", Product: "Laptop", Category: "Electronics", Quantity: 1, Price: 1200},
	}
}

func TestBuildEmptyDataset(t *testing.T) {
	_, err := Build(nil, t.TempDir())
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestBuildSummary(t *testing.T) {
	result, err := Build(sampleRows(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4, result.Summary.TotalOrders)
	assert.Equal(t, "2750", result.Summary.TotalRevenue.String())
	assert.Equal(t, "687.5", result.Summary.AverageOrderValue.String())
	assert.Equal(t, "2024-01-01", result.Summary.BestSalesDay)
	assert.Equal(t, "1250", result.Summary.BestSalesAmount.String())
}

func TestBuildBestDayTieKeepsEarliest(t *testing.T) {
	rows := []domain.DetailRow{
		{Date: "2024-02-02", Product: "A", Category: "X", Quantity: 1, Price: 100},
		{Date: "2024-02-01", Product: "B", Category: "X", Quantity: 1, Price: 100},
	}
	result, err := Build(rows, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", result.Summary.BestSalesDay)
}

func TestBuildWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	result, err := Build(sampleRows(), dir)
	require.NoError(t, err)

	for _, name := range []string{
		result.Artifacts.DailySalesChart,
		result.Artifacts.CategorySalesChart,
		result.Artifacts.TopProductsChart,
		result.Artifacts.DecisionReportMarkdown,
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	report, err := os.ReadFile(filepath.Join(dir, result.Artifacts.DecisionReportMarkdown))
	require.NoError(t, err)
	assert.Contains(t, string(report), "# Sales Decision Report")
	assert.Contains(t, string(report), "2024-01-01")

	chart, err := os.ReadFile(filepath.Join(dir, result.Artifacts.DailySalesChart))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(chart), "<svg"))
}

func TestBuildInsights(t *testing.T) {
	result, err := Build(sampleRows(), t.TempDir())
	require.NoError(t, err)

	require.Len(t, result.Insights, 3)
	assert.Contains(t, result.Insights[0], "2024-01-01")
	assert.Contains(t, result.Insights[1], "Electronics")
	assert.Contains(t, result.Insights[2], "Laptop")
}
