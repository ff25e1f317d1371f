package finance

import (
	"errors"
	"fmt"
	"strings"
)

// Field names a numeric column of a point, stored or derived.
type Field string

const (
	FieldRevenue     Field = "revenue"
	FieldExpenses    Field = "expenses"
	FieldProfit      Field = "profit"
	FieldAssets      Field = "assets"
	FieldLiabilities Field = "liabilities"
	FieldNetAssets   Field = "netAssets"
	FieldCashInflow  Field = "cashInflow"
	FieldCashOutflow Field = "cashOutflow"
	FieldNetCashFlow Field = "netCashFlow"
)

// ErrUnknownField is returned for field names outside the known set.
var ErrUnknownField = errors.New("finance: unknown field")

var fieldLabels = map[Field]string{
	FieldRevenue:     "Revenue",
	FieldExpenses:    "Expenses",
	FieldProfit:      "Profit",
	FieldAssets:      "Assets",
	FieldLiabilities: "Liabilities",
	FieldNetAssets:   "Net Assets",
	FieldCashInflow:  "Cash Inflow",
	FieldCashOutflow: "Cash Outflow",
	FieldNetCashFlow: "Net Cash Flow",
}

// ParseField resolves a field name case-insensitively.
func ParseField(raw string) (Field, error) {
	name := strings.TrimSpace(raw)
	for f := range fieldLabels {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

// Label returns the human readable column heading.
func (f Field) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// Value reads the field from p, computing derived fields on demand.
func (f Field) Value(p FinancialPoint) float64 {
	switch f {
	case FieldRevenue:
		return p.Revenue
	case FieldExpenses:
		return p.Expenses
	case FieldProfit:
		return p.Profit()
	case FieldAssets:
		return p.Assets
	case FieldLiabilities:
		return p.Liabilities
	case FieldNetAssets:
		return p.NetAssets()
	case FieldCashInflow:
		return p.CashInflow
	case FieldCashOutflow:
		return p.CashOutflow
	case FieldNetCashFlow:
		return p.NetCashFlow()
	}
	return 0
}
