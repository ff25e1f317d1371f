package finance

import (
	"errors"
	"fmt"
	"strings"
)

// SeriesKind identifies which synthetic run produced a point.
type SeriesKind string

const (
	// KindActual labels the "actual" series.
	KindActual SeriesKind = "actual"
	// KindPlan labels the "plan" series.
	KindPlan SeriesKind = "plan"
)

// ErrUnknownKind is returned when a series label is neither actual nor plan.
var ErrUnknownKind = errors.New("finance: unknown series kind")

// ParseKind resolves a series label.
func ParseKind(raw string) (SeriesKind, error) {
	switch SeriesKind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindActual:
		return KindActual, nil
	case KindPlan:
		return KindPlan, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}

// FinancialPoint is one month of one generated series.
type FinancialPoint struct {
	Date        string     `json:"date"`
	Year        int        `json:"year"`
	Month       int        `json:"month"`
	Revenue     float64    `json:"revenue"`
	Expenses    float64    `json:"expenses"`
	Assets      float64    `json:"assets"`
	Liabilities float64    `json:"liabilities"`
	CashInflow  float64    `json:"cashInflow"`
	CashOutflow float64    `json:"cashOutflow"`
	Kind        SeriesKind `json:"seriesKind"`
}

// Profit is revenue minus expenses.
func (p FinancialPoint) Profit() float64 { return p.Revenue - p.Expenses }

// NetAssets is assets minus liabilities.
func (p FinancialPoint) NetAssets() float64 { return p.Assets - p.Liabilities }

// NetCashFlow is cash inflow minus cash outflow.
func (p FinancialPoint) NetCashFlow() float64 { return p.CashInflow - p.CashOutflow }

// Metrics holds the values derived from a single point.
type Metrics struct {
	Profit      float64 `json:"profit"`
	NetAssets   float64 `json:"netAssets"`
	NetCashFlow float64 `json:"netCashFlow"`
}

// Derive computes the derived metrics for p. It never writes back to p.
func Derive(p FinancialPoint) Metrics {
	return Metrics{
		Profit:      p.Profit(),
		NetAssets:   p.NetAssets(),
		NetCashFlow: p.NetCashFlow(),
	}
}

// DeriveAll applies Derive element-wise, preserving length and order.
func DeriveAll(points []FinancialPoint) []Metrics {
	out := make([]Metrics, len(points))
	for i, p := range points {
		out[i] = Derive(p)
	}
	return out
}
