package dashboard

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findash/findash/internal/dashboard/svg"
	"github.com/findash/findash/internal/finance"
	"github.com/findash/findash/internal/shared"
)

var testNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

type failingMulti struct{}

func (failingMulti) LineMulti(int, int, []string, []svg.Series, svg.MultiOpts) (template.HTML, error) {
	return "", errors.New("renderer down")
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	ds := finance.NewDataset(finance.NewGenerator(finance.WithSource(finance.NewSeededSource(11))), testNow)
	r := svg.Renderer{}
	return NewService(ds, NewChartCache(nil, time.Minute, nil), Renderers{Line: r, Multi: r, Bar: r}, ServiceConfig{VarianceThresholdPct: 5})
}

func TestInputSheet(t *testing.T) {
	svc := newTestService(t)
	sheet, err := svc.Sheet(context.Background(), Tab{Kind: TabInput, N: 2})
	require.NoError(t, err)

	require.Len(t, sheet.Tables, 1)
	table := sheet.Tables[0]
	assert.Len(t, table.Rows, TableRows)
	assert.Equal(t, []string{"Date", "Revenue", "Expenses", "Profit", "Assets", "Liabilities", "Cash Inflow", "Cash Outflow"}, table.Headers())
	assert.Equal(t, "01/2024", table.Rows[0].Date)
	assert.Equal(t, "12/2025", table.Rows[TableRows-1].Date)

	first := svc.Dataset().Series(finance.KindActual)[0]
	assert.Equal(t, first.Profit(), table.Rows[0].Values[2])
	assert.Empty(t, sheet.Charts)
	assert.Empty(t, sheet.Variance)
	assert.Equal(t, svc.Dataset().ID.String(), sheet.DatasetID)

	require.Len(t, sheet.Nav, 11)
	assert.True(t, sheet.Nav[1].Active)
	assert.False(t, sheet.Nav[0].Active)
}

func TestCalcSheet(t *testing.T) {
	svc := newTestService(t)
	sheet, err := svc.Sheet(context.Background(), Tab{Kind: TabCalc, N: 4})
	require.NoError(t, err)

	require.Len(t, sheet.Tables, 1)
	assert.Equal(t, []string{"Date", "Profit", "Net Assets", "Net Cash Flow"}, sheet.Tables[0].Headers())
	p := svc.Dataset().Series(finance.KindActual)[3]
	assert.Equal(t, []float64{p.Profit(), p.NetAssets(), p.NetCashFlow()}, sheet.Tables[0].Rows[3].Values)

	require.Len(t, sheet.Charts, 1)
	assert.True(t, strings.HasPrefix(string(sheet.Charts[0].SVG), "<svg"))
}

func TestOutputSheet(t *testing.T) {
	svc := newTestService(t)
	sheet, err := svc.Sheet(context.Background(), OutputTab)
	require.NoError(t, err)

	require.Len(t, sheet.Tables, 3)
	assert.Equal(t, "Profit and Loss Statement", sheet.Tables[0].Title)
	assert.Equal(t, "Balance Sheet", sheet.Tables[1].Title)
	assert.Equal(t, "Cash Flow Statement", sheet.Tables[2].Title)
	for _, table := range sheet.Tables {
		assert.Len(t, table.Rows, TableRows)
	}

	require.Len(t, sheet.Charts, 3)
	assert.Equal(t, "Revenue Comparison", sheet.Charts[0].Title)
	assert.Equal(t, "Profit Comparison", sheet.Charts[1].Title)
	assert.Equal(t, "bars-cash", sheet.Charts[2].Name)
	assert.Contains(t, string(sheet.Charts[0].SVG), svg.ColorPlan)
	first := svc.Dataset().Series(finance.KindActual)[0]
	assert.Contains(t, string(sheet.Charts[0].SVG), "<title>01/2024 Actual: "+shared.USD(first.Revenue)+"</title>")

	assert.Len(t, sheet.Variance, 8)
}

func TestSheetRejectsInvalidTab(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Sheet(context.Background(), Tab{Kind: TabCalc, N: 9})
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestComparisonChartCachedPerDataset(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	first, err := svc.ComparisonChart(ctx, finance.FieldRevenue)
	require.NoError(t, err)

	cached, ok := svc.charts.local.Get(ChartKey(svc.Dataset().ID, "compare", "revenue"))
	require.True(t, ok)
	assert.Equal(t, first.SVG, cached)

	second, err := svc.ComparisonChart(ctx, finance.FieldRevenue)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComparisonChartRendererError(t *testing.T) {
	svc := newTestService(t)
	svc.renderers.Multi = failingMulti{}
	_, err := svc.ComparisonChart(context.Background(), finance.FieldProfit)
	assert.ErrorContains(t, err, "renderer down")

	_, err = svc.Sheet(context.Background(), OutputTab)
	assert.Error(t, err)
}

func TestChartByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	for _, name := range []string{"compare-revenue", "compare-netAssets", "trend-netCashFlow", "bars-cash"} {
		chart, err := svc.ChartByName(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, name, chart.Name)
	}

	_, err := svc.ChartByName(ctx, "compare-ebitda")
	assert.ErrorIs(t, err, finance.ErrUnknownField)
	_, err = svc.ChartByName(ctx, "pie-revenue")
	assert.ErrorIs(t, err, ErrUnknownChart)
}
