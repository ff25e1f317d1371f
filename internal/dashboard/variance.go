package dashboard

import (
	"math"
	"sort"

	"github.com/findash/findash/internal/finance"
)

// VarianceRow compares a yearly actual total against the plan.
type VarianceRow struct {
	Year        int           `json:"year"`
	Field       finance.Field `json:"field"`
	Actual      float64       `json:"actual"`
	Plan        float64       `json:"plan"`
	Variance    float64       `json:"variance"`
	VariancePct float64       `json:"variance_pct"`
	Flagged     bool          `json:"flagged"`
}

// ComputePlanVariance totals fields per year for both series and flags rows
// whose absolute percentage variance reaches thresholdPct. A threshold <= 0
// disables flagging.
func ComputePlanVariance(actual, plan []finance.FinancialPoint, fields []finance.Field, thresholdPct float64) []VarianceRow {
	type key struct {
		year  int
		field finance.Field
	}
	lookup := make(map[key]*VarianceRow)
	accumulate := func(points []finance.FinancialPoint, isActual bool) {
		for _, p := range points {
			for _, f := range fields {
				k := key{year: p.Year, field: f}
				row, ok := lookup[k]
				if !ok {
					row = &VarianceRow{Year: p.Year, Field: f}
					lookup[k] = row
				}
				if isActual {
					row.Actual += f.Value(p)
				} else {
					row.Plan += f.Value(p)
				}
			}
		}
	}
	accumulate(actual, true)
	accumulate(plan, false)

	order := make(map[finance.Field]int, len(fields))
	for i, f := range fields {
		order[f] = i
	}

	rows := make([]VarianceRow, 0, len(lookup))
	for _, row := range lookup {
		row.Actual = round2(row.Actual)
		row.Plan = round2(row.Plan)
		row.Variance = round2(row.Actual - row.Plan)
		if row.Plan != 0 {
			row.VariancePct = round2(row.Variance / math.Abs(row.Plan) * 100)
		}
		row.Flagged = thresholdPct > 0 && math.Abs(row.VariancePct) >= thresholdPct
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return order[rows[i].Field] < order[rows[j].Field]
	})
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
