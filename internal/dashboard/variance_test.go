package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findash/findash/internal/finance"
)

func point(kind finance.SeriesKind, year, month int, revenue, expenses float64) finance.FinancialPoint {
	return finance.FinancialPoint{
		Date:     finance.FormatDate(year, month),
		Year:     year,
		Month:    month,
		Revenue:  revenue,
		Expenses: expenses,
		Kind:     kind,
	}
}

func TestComputePlanVariance(t *testing.T) {
	actual := []finance.FinancialPoint{
		point(finance.KindActual, 2024, 1, 100, 60),
		point(finance.KindActual, 2024, 2, 110, 60),
		point(finance.KindActual, 2025, 1, 120, 70),
	}
	plan := []finance.FinancialPoint{
		point(finance.KindPlan, 2024, 1, 100, 50),
		point(finance.KindPlan, 2024, 2, 100, 50),
		point(finance.KindPlan, 2025, 1, 120, 70),
	}
	rows := ComputePlanVariance(actual, plan, ComparisonFields, 5)
	require.Len(t, rows, 4)

	assert.Equal(t, 2024, rows[0].Year)
	assert.Equal(t, finance.FieldRevenue, rows[0].Field)
	assert.Equal(t, 210.0, rows[0].Actual)
	assert.Equal(t, 200.0, rows[0].Plan)
	assert.Equal(t, 10.0, rows[0].Variance)
	assert.Equal(t, 5.0, rows[0].VariancePct)
	assert.True(t, rows[0].Flagged)

	assert.Equal(t, finance.FieldProfit, rows[1].Field)
	assert.Equal(t, 90.0, rows[1].Actual)
	assert.Equal(t, 100.0, rows[1].Plan)
	assert.Equal(t, -10.0, rows[1].VariancePct)
	assert.True(t, rows[1].Flagged)

	assert.Equal(t, 2025, rows[2].Year)
	assert.Zero(t, rows[2].Variance)
	assert.False(t, rows[2].Flagged)
}

func TestComputePlanVarianceZeroPlan(t *testing.T) {
	actual := []finance.FinancialPoint{point(finance.KindActual, 2024, 1, 50, 50)}
	plan := []finance.FinancialPoint{point(finance.KindPlan, 2024, 1, 0, 0)}
	rows := ComputePlanVariance(actual, plan, []finance.Field{finance.FieldRevenue}, 0)
	require.Len(t, rows, 1)
	assert.Equal(t, 50.0, rows[0].Variance)
	assert.Zero(t, rows[0].VariancePct)
	assert.False(t, rows[0].Flagged)
}

func TestComputePlanVarianceGenerated(t *testing.T) {
	ds := finance.NewDataset(finance.NewGenerator(finance.WithSource(finance.NewSeededSource(3))), testNow)
	rows := ComputePlanVariance(ds.Series(finance.KindActual), ds.Series(finance.KindPlan), ComparisonFields, 5)
	require.Len(t, rows, 8)
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].Year, rows[i].Year)
	}
}
