package finance

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Baseline annual values every run starts from.
const (
	BaseRevenue     = 1_000_000.0
	BaseExpenses    = 800_000.0
	BaseAssets      = 5_000_000.0
	BaseLiabilities = 3_000_000.0
)

// MonthsPerYear is the number of points emitted per generated year.
const MonthsPerYear = 12

// DefaultYears is the fixed span every series covers.
var DefaultYears = []int{2024, 2025, 2026, 2027}

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// NewSeededSource returns a deterministic PCG source for reproducible runs.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator produces synthetic monthly series.
type Generator struct {
	years  []int
	source Source
}

// Option customises a Generator.
type Option func(*Generator)

// WithSource replaces the default unseeded random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// NewGenerator builds a generator over DefaultYears.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		years:  append([]int(nil), DefaultYears...),
		source: globalSource{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Years returns the years covered by each series.
func (g *Generator) Years() []int {
	return append([]int(nil), g.years...)
}

// Len is the number of points each call to Generate returns.
func (g *Generator) Len() int {
	return len(g.years) * MonthsPerYear
}

// runState carries the compounding baselines of one Generate call.
type runState struct {
	revenue     float64
	expenses    float64
	assets      float64
	liabilities float64
}

// Generate produces one chronological series labelled kind. Draw order is
// fixed: growth per year, then five draws per month, then three baseline
// growth draws at year end.
func (g *Generator) Generate(kind SeriesKind) []FinancialPoint {
	state := runState{
		revenue:     BaseRevenue,
		expenses:    BaseExpenses,
		assets:      BaseAssets,
		liabilities: BaseLiabilities,
	}
	points := make([]FinancialPoint, 0, g.Len())
	for _, year := range g.years {
		annualGrowth := 1 + g.source.Float64()*0.1

		for month := 1; month <= MonthsPerYear; month++ {
			seasonality := Seasonality(month)
			revenue := (state.revenue / 12) * seasonality
			expenses := (state.expenses / 12) * (1 + g.source.Float64()*0.05)
			assets := state.assets + g.source.Float64()*100_000 - 50_000
			liabilities := state.liabilities + g.source.Float64()*50_000 - 25_000
			cashInflow := revenue * (1 + g.source.Float64()*0.1)
			cashOutflow := expenses * (1 + g.source.Float64()*0.1)

			points = append(points, FinancialPoint{
				Date:        FormatDate(year, month),
				Year:        year,
				Month:       month,
				Revenue:     revenue,
				Expenses:    expenses,
				Assets:      assets,
				Liabilities: liabilities,
				CashInflow:  cashInflow,
				CashOutflow: cashOutflow,
				Kind:        kind,
			})
		}

		state.revenue *= annualGrowth
		state.expenses *= 1 + g.source.Float64()*0.05
		state.assets *= 1 + g.source.Float64()*0.15
		state.liabilities *= 1 + g.source.Float64()*0.05
	}
	return points
}

// Seasonality is the revenue multiplier for a 1-based month.
func Seasonality(month int) float64 {
	return 1 + math.Sin((float64(month)/12)*math.Pi)*0.1
}

// FormatDate renders the MM/YYYY label of a point.
func FormatDate(year, month int) string {
	return fmt.Sprintf("%02d/%d", month, year)
}
