// Package export serialises dashboard data for download.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/findash/findash/internal/dashboard"
	"github.com/findash/findash/internal/finance"
	"github.com/findash/findash/internal/shared"
)

// SeriesColumns is the full column set of a series export.
var SeriesColumns = []finance.Field{
	finance.FieldRevenue,
	finance.FieldExpenses,
	finance.FieldProfit,
	finance.FieldAssets,
	finance.FieldLiabilities,
	finance.FieldNetAssets,
	finance.FieldCashInflow,
	finance.FieldCashOutflow,
	finance.FieldNetCashFlow,
}

// WriteSeriesCSV emits every point with stored and derived fields.
func WriteSeriesCSV(w io.Writer, points []finance.FinancialPoint) error {
	writer := csv.NewWriter(w)
	header := []string{"Date", "Series"}
	for _, f := range SeriesColumns {
		header = append(header, f.Label())
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, p := range points {
		record := []string{p.Date, string(p.Kind)}
		for _, f := range SeriesColumns {
			record = append(record, shared.FixedAmount(f.Value(p)))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTableCSV emits a sheet table. A titled table is preceded by a
// single-cell title row.
func WriteTableCSV(w io.Writer, table dashboard.Table) error {
	writer := csv.NewWriter(w)
	if table.Title != "" {
		if err := writer.Write([]string{table.Title}); err != nil {
			return err
		}
	}
	if err := writer.Write(table.Headers()); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := make([]string, 0, len(row.Values)+1)
		record = append(record, row.Date)
		for _, v := range row.Values {
			record = append(record, shared.FixedAmount(v))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteVarianceCSV emits the plan variance rows.
func WriteVarianceCSV(w io.Writer, rows []dashboard.VarianceRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Year", "Metric", "Actual", "Plan", "Variance", "Variance %", "Flagged"}); err != nil {
		return err
	}
	for _, row := range rows {
		flagged := "no"
		if row.Flagged {
			flagged = "yes"
		}
		if err := writer.Write([]string{
			strconv.Itoa(row.Year),
			row.Field.Label(),
			shared.FixedAmount(row.Actual),
			shared.FixedAmount(row.Plan),
			shared.FixedAmount(row.Variance),
			shared.FixedAmount(row.VariancePct),
			flagged,
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSheetCSV writes every table of sheet separated by blank lines, then
// the variance block when present.
func WriteSheetCSV(w io.Writer, sheet dashboard.Sheet) error {
	for i, table := range sheet.Tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := WriteTableCSV(w, table); err != nil {
			return err
		}
	}
	if len(sheet.Variance) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return WriteVarianceCSV(w, sheet.Variance)
}
