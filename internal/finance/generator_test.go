package finance

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

type countingSource struct {
	calls int
}

func (c *countingSource) Float64() float64 {
	c.calls++
	return 0.5
}

var datePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)

func TestGenerateLengthAndOrder(t *testing.T) {
	gen := NewGenerator()
	for _, kind := range []SeriesKind{KindActual, KindPlan} {
		points := gen.Generate(kind)
		require.Len(t, points, 48)
		assert.Equal(t, gen.Len(), len(points))

		seen := make(map[string]bool, len(points))
		var prev time.Time
		for i, p := range points {
			require.Regexp(t, datePattern, p.Date)
			assert.False(t, seen[p.Date], "duplicate date %s", p.Date)
			seen[p.Date] = true

			ts, err := time.Parse("01/2006", p.Date)
			require.NoError(t, err)
			if i > 0 {
				assert.True(t, ts.After(prev), "dates not increasing at %d", i)
			}
			prev = ts
			assert.Equal(t, p.Year, ts.Year())
			assert.Equal(t, p.Month, int(ts.Month()))
		}
	}
}

func TestGenerateBoundaries(t *testing.T) {
	points := NewGenerator().Generate(KindActual)
	assert.Equal(t, "01/2024", points[0].Date)
	assert.Equal(t, "12/2027", points[len(points)-1].Date)
	assert.Equal(t, "01/2025", points[12].Date)
}

func TestGenerateLabelsEveryPoint(t *testing.T) {
	for _, p := range NewGenerator().Generate(KindPlan) {
		assert.Equal(t, KindPlan, p.Kind)
	}
}

func TestGenerateCashFlowBounds(t *testing.T) {
	gen := NewGenerator()
	for run := 0; run < 20; run++ {
		for _, p := range gen.Generate(KindActual) {
			assert.GreaterOrEqual(t, p.CashInflow, p.Revenue)
			assert.Less(t, p.CashInflow, p.Revenue*1.1+1e-6)
			assert.GreaterOrEqual(t, p.CashOutflow, p.Expenses)
			assert.GreaterOrEqual(t, p.Revenue, 0.0)
			assert.GreaterOrEqual(t, p.Expenses, 0.0)
		}
	}
}

func TestGenerateFirstYearRanges(t *testing.T) {
	points := NewGenerator().Generate(KindActual)
	for _, p := range points[:12] {
		assert.InDelta(t, BaseRevenue/12*Seasonality(p.Month), p.Revenue, 1e-6)
		assert.GreaterOrEqual(t, p.Expenses, BaseExpenses/12)
		assert.Less(t, p.Expenses, BaseExpenses/12*1.05)
		assert.GreaterOrEqual(t, p.Assets, BaseAssets-50_000)
		assert.Less(t, p.Assets, BaseAssets+50_000)
		assert.GreaterOrEqual(t, p.Liabilities, BaseLiabilities-25_000)
		assert.Less(t, p.Liabilities, BaseLiabilities+25_000)
	}
}

func TestGenerateZeroVariance(t *testing.T) {
	points := NewGenerator(WithSource(constSource(0))).Generate(KindActual)

	want := (1_000_000.0 / 12) * (1 + 0.1*math.Sin(math.Pi/12))
	assert.InDelta(t, want, points[0].Revenue, 1e-9)
	assert.InDelta(t, BaseExpenses/12, points[0].Expenses, 1e-9)
	assert.InDelta(t, BaseAssets-50_000, points[0].Assets, 1e-9)
	assert.InDelta(t, BaseLiabilities-25_000, points[0].Liabilities, 1e-9)
	assert.Equal(t, points[0].Revenue, points[0].CashInflow)
	assert.Equal(t, points[0].Expenses, points[0].CashOutflow)

	// growth fixed at 1.0 keeps every year identical
	for i := 12; i < len(points); i++ {
		assert.Equal(t, points[i%12].Revenue, points[i].Revenue)
		assert.Equal(t, points[i%12].Assets, points[i].Assets)
	}
}

func TestGenerateCompoundsBaselines(t *testing.T) {
	points := NewGenerator(WithSource(constSource(0.5))).Generate(KindActual)
	// revenue grows 5%, expenses 2.5%, assets 7.5% per year at r=0.5
	assert.InDelta(t, points[0].Revenue*1.05, points[12].Revenue, 1e-6)
	assert.InDelta(t, points[0].Expenses*1.025, points[12].Expenses, 1e-6)
	assert.InDelta(t, BaseAssets*1.075, points[12].Assets, 1e-6)
	assert.InDelta(t, BaseLiabilities*1.025, points[12].Liabilities, 1e-6)
}

func TestGenerateDrawCount(t *testing.T) {
	src := &countingSource{}
	NewGenerator(WithSource(src)).Generate(KindActual)
	// per year: 1 growth + 12*5 monthly + 3 baseline draws
	assert.Equal(t, 4*(1+12*5+3), src.calls)
}

func TestSeededSourceReproducible(t *testing.T) {
	a := NewGenerator(WithSource(NewSeededSource(42))).Generate(KindActual)
	b := NewGenerator(WithSource(NewSeededSource(42))).Generate(KindActual)
	c := NewGenerator(WithSource(NewSeededSource(7))).Generate(KindActual)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSeasonalityPeaksMidYear(t *testing.T) {
	assert.InDelta(t, 1.1, Seasonality(6), 1e-12)
	assert.InDelta(t, 1.0, Seasonality(12), 1e-12)
	assert.Greater(t, Seasonality(6), Seasonality(1))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "03/2025", FormatDate(2025, 3))
	assert.Equal(t, "12/2027", FormatDate(2027, 12))
}
