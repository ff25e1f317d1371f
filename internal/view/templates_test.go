package view

import (
	"bytes"
	"html/template"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findash/findash/internal/dashboard"
	"github.com/findash/findash/internal/finance"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
}

func TestRenderSheet(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	points := []finance.FinancialPoint{{Date: "01/2024", Year: 2024, Month: 1, Revenue: 1234.5, Expenses: 1000}}
	sheet := dashboard.Sheet{
		Tab:         dashboard.OutputTab,
		DatasetID:   "ds-1",
		GeneratedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
		Tables:      []dashboard.Table{dashboard.BuildTable("Profit and Loss Statement", points, dashboard.ProfitAndLoss.Fields)},
		Charts:      []dashboard.Chart{{Name: "compare-revenue", Title: "Revenue Comparison", SVG: template.HTML("<svg id=\"chart-stub\"></svg>")}},
		Variance:    []dashboard.VarianceRow{{Year: 2024, Field: finance.FieldRevenue, Actual: 2000, Plan: 1000, Variance: 1000, VariancePct: 100, Flagged: true}},
		Nav:         []dashboard.NavItem{{Tab: dashboard.DefaultTab}, {Tab: dashboard.OutputTab, Active: true}},
	}

	var buf bytes.Buffer
	require.NoError(t, engine.Execute(&buf, "pages/sheet.html", TemplateData{Title: "Output Sheet", Data: sheet}))
	body := buf.String()

	assert.Contains(t, body, "<h2>Output Sheet</h2>")
	assert.Contains(t, body, "<h3>Profit and Loss Statement</h3>")
	assert.Contains(t, body, "$1234.50")
	assert.Contains(t, body, "$234.50")
	assert.Contains(t, body, "<svg id=\"chart-stub\"></svg>")
	assert.Contains(t, body, "$1,000.00")
	// html/template escapes the sign; browsers render it as "+".
	assert.Contains(t, body, "&#43;100.00%")
	assert.NotContains(t, body, ">100.00%")
	assert.Contains(t, body, "flagged")
	assert.Contains(t, body, "href=\"/sheets/input-1\"")
	assert.Contains(t, body, "aria-current=\"page\"")
	assert.Contains(t, body, "19 Oct 2026 09:30 UTC")
}
