package visual

import (
	"fmt"
	"strings"

	"sales-data-lab/internal/sales"
)

// Chart geometry shared by all renderers.
const (
	chartWidth   = 800
	chartHeight  = 400
	chartPadding = 60
)

func svgHeader(sb *strings.Builder, title string) {
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, chartWidth, chartHeight))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, chartWidth, chartHeight))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="30" font-family="sans-serif" font-size="18" text-anchor="middle">%s</text>`, chartWidth/2, escapeXML(title)))
	sb.WriteString("\n")
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// renderDailyChart draws daily sales as a polyline with point markers and
// date labels along the x axis.
func renderDailyChart(items []sales.DailySalesItem) string {
	var sb strings.Builder
	svgHeader(&sb, "Daily Sales")

	maxSales := 0.0
	for _, item := range items {
		if v := item.Sales.Float64(); v > maxSales {
			maxSales = v
		}
	}
	if maxSales == 0 {
		maxSales = 1
	}

	plotW := float64(chartWidth - 2*chartPadding)
	plotH := float64(chartHeight - 2*chartPadding)
	step := plotW
	if len(items) > 1 {
		step = plotW / float64(len(items)-1)
	}

	var points []string
	for i, item := range items {
		x := float64(chartPadding) + step*float64(i)
		if len(items) == 1 {
			x = float64(chartWidth) / 2
		}
		y := float64(chartHeight-chartPadding) - item.Sales.Float64()/maxSales*plotH
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="steelblue"/>`, x, y))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-family="sans-serif" font-size="11" text-anchor="middle">%s</text>`,
			x, chartHeight-chartPadding+20, escapeXML(item.Date)))
		sb.WriteString("\n")
	}
	if len(points) > 1 {
		sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="steelblue" stroke-width="2"/>`, strings.Join(points, " ")))
		sb.WriteString("\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// renderCategoryChart draws category sales as vertical bars.
func renderCategoryChart(items []sales.CategorySalesItem) string {
	var sb strings.Builder
	svgHeader(&sb, "Sales by Category")

	maxSales := 0.0
	for _, item := range items {
		if v := item.Sales.Float64(); v > maxSales {
			maxSales = v
		}
	}
	if maxSales == 0 {
		maxSales = 1
	}

	plotW := float64(chartWidth - 2*chartPadding)
	plotH := float64(chartHeight - 2*chartPadding)
	slot := plotW / float64(max(len(items), 1))
	barW := slot * 0.6

	for i, item := range items {
		h := item.Sales.Float64() / maxSales * plotH
		x := float64(chartPadding) + slot*float64(i) + (slot-barW)/2
		y := float64(chartHeight-chartPadding) - h
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="darkorange"/>`, x, y, barW, h))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-family="sans-serif" font-size="11" text-anchor="middle">%s</text>`,
			x+barW/2, chartHeight-chartPadding+20, escapeXML(item.Category)))
		sb.WriteString("\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// renderTopProductsChart draws the top products as horizontal bars, the
// largest on top.
func renderTopProductsChart(items []sales.TopProductItem) string {
	var sb strings.Builder
	svgHeader(&sb, "Top Products")

	maxSales := 0.0
	for _, item := range items {
		if v := item.Sales.Float64(); v > maxSales {
			maxSales = v
		}
	}
	if maxSales == 0 {
		maxSales = 1
	}

	labelW := 160.0
	plotW := float64(chartWidth) - labelW - 2*float64(chartPadding)
	plotH := float64(chartHeight - 2*chartPadding)
	slot := plotH / float64(max(len(items), 1))
	barH := slot * 0.6

	for i, item := range items {
		w := item.Sales.Float64() / maxSales * plotW
		x := float64(chartPadding) + labelW
		y := float64(chartPadding) + slot*float64(i) + (slot-barH)/2
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="seagreen"/>`, x, y, w, barH))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" text-anchor="end">%s</text>`,
			x-8, y+barH/2+4, escapeXML(item.Product)))
		sb.WriteString("\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
