package dashboard

import "github.com/findash/findash/internal/finance"

// TableRows is how many leading months every sheet table shows.
const TableRows = 24

// Statement is a titled set of columns rendered over the actual series.
type Statement struct {
	Slug   string
	Title  string
	Fields []finance.Field
}

var (
	// InputColumns are the columns of every input sheet.
	InputColumns = []finance.Field{
		finance.FieldRevenue,
		finance.FieldExpenses,
		finance.FieldProfit,
		finance.FieldAssets,
		finance.FieldLiabilities,
		finance.FieldCashInflow,
		finance.FieldCashOutflow,
	}

	// CalcColumns are the derived columns of every calculation sheet.
	CalcColumns = []finance.Field{
		finance.FieldProfit,
		finance.FieldNetAssets,
		finance.FieldNetCashFlow,
	}

	ProfitAndLoss = Statement{
		Slug:   "profit-and-loss",
		Title:  "Profit and Loss Statement",
		Fields: []finance.Field{finance.FieldRevenue, finance.FieldExpenses, finance.FieldProfit},
	}
	BalanceSheet = Statement{
		Slug:   "balance-sheet",
		Title:  "Balance Sheet",
		Fields: []finance.Field{finance.FieldAssets, finance.FieldLiabilities},
	}
	CashFlowStatement = Statement{
		Slug:   "cash-flow",
		Title:  "Cash Flow Statement",
		Fields: []finance.Field{finance.FieldCashInflow, finance.FieldCashOutflow},
	}

	// OutputStatements are shown on the output view in this order.
	OutputStatements = []Statement{ProfitAndLoss, BalanceSheet, CashFlowStatement}

	// ComparisonFields key the actual-vs-plan charts of the output view.
	ComparisonFields = []finance.Field{finance.FieldRevenue, finance.FieldProfit}
)

// Table is a rendered grid of dates by fields.
type Table struct {
	Title   string
	Columns []finance.Field
	Rows    []Row
}

// Row is one month of a Table.
type Row struct {
	Date   string
	Values []float64
}

// BuildTable projects fields over points, one row per point.
func BuildTable(title string, points []finance.FinancialPoint, fields []finance.Field) Table {
	rows := make([]Row, 0, len(points))
	for _, p := range points {
		values := make([]float64, len(fields))
		for i, f := range fields {
			values[i] = f.Value(p)
		}
		rows = append(rows, Row{Date: p.Date, Values: values})
	}
	return Table{Title: title, Columns: fields, Rows: rows}
}

// Headers returns the column captions including the leading date column.
func (t Table) Headers() []string {
	headers := make([]string, 0, len(t.Columns)+1)
	headers = append(headers, "Date")
	for _, f := range t.Columns {
		headers = append(headers, f.Label())
	}
	return headers
}
