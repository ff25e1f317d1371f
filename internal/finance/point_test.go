package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	p := FinancialPoint{
		Revenue:     1200.5,
		Expenses:    700.25,
		Assets:      5000,
		Liabilities: 3200,
		CashInflow:  1300,
		CashOutflow: 900,
	}
	m := Derive(p)
	assert.Equal(t, p.Revenue-p.Expenses, m.Profit)
	assert.Equal(t, 1800.0, m.NetAssets)
	assert.Equal(t, 400.0, m.NetCashFlow)
	assert.Equal(t, m, Derive(p))
}

func TestDeriveZeroProfit(t *testing.T) {
	p := FinancialPoint{Revenue: 83_333.33, Expenses: 83_333.33}
	assert.Zero(t, Derive(p).Profit)
}

func TestDeriveAllPreservesOrder(t *testing.T) {
	points := NewGenerator().Generate(KindActual)
	before := append([]FinancialPoint(nil), points...)
	metrics := DeriveAll(points)
	require.Len(t, metrics, len(points))
	for i, p := range points {
		assert.Equal(t, p.Revenue-p.Expenses, metrics[i].Profit)
		assert.Equal(t, p.Assets-p.Liabilities, metrics[i].NetAssets)
		assert.Equal(t, p.CashInflow-p.CashOutflow, metrics[i].NetCashFlow)
	}
	assert.Equal(t, before, points)
	assert.Empty(t, DeriveAll(nil))
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind(" Plan ")
	require.NoError(t, err)
	assert.Equal(t, KindPlan, kind)

	_, err = ParseKind("forecast")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseField(t *testing.T) {
	f, err := ParseField("netcashflow")
	require.NoError(t, err)
	assert.Equal(t, FieldNetCashFlow, f)
	assert.Equal(t, "Net Cash Flow", f.Label())

	_, err = ParseField("ebitda")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFieldValue(t *testing.T) {
	p := FinancialPoint{Revenue: 10, Expenses: 4, Assets: 9, Liabilities: 3, CashInflow: 11, CashOutflow: 5}
	cases := map[Field]float64{
		FieldRevenue:     10,
		FieldExpenses:    4,
		FieldProfit:      6,
		FieldAssets:      9,
		FieldLiabilities: 3,
		FieldNetAssets:   6,
		FieldCashInflow:  11,
		FieldCashOutflow: 5,
		FieldNetCashFlow: 6,
	}
	for field, want := range cases {
		assert.Equal(t, want, field.Value(p), string(field))
	}
}

func TestNewDataset(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	ds := NewDataset(NewGenerator(WithSource(NewSeededSource(1))), now)
	assert.NotEqual(t, uuid.Nil, ds.ID)
	assert.Equal(t, now.UTC(), ds.GeneratedAt)
	assert.Len(t, ds.Series(KindActual), 48)
	assert.Len(t, ds.Series(KindPlan), 48)
	assert.Equal(t, KindPlan, ds.Series(KindPlan)[0].Kind)
	assert.Nil(t, ds.Series("forecast"))

	assert.Len(t, ds.Head(KindActual, 24), 24)
	assert.Len(t, ds.Head(KindActual, 0), 48)
	assert.Len(t, ds.Head(KindActual, 100), 48)

	labels := ds.Labels(KindActual)
	assert.Equal(t, "01/2024", labels[0])
	values := ds.Values(KindActual, FieldProfit)
	assert.Equal(t, ds.Series(KindActual)[5].Profit(), values[5])
}
