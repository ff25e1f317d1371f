package export

import (
	"encoding/json"
	"io"

	"github.com/findash/findash/internal/finance"
)

// SeriesRecord is a point together with its derived metrics.
type SeriesRecord struct {
	finance.FinancialPoint
	finance.Metrics
}

// Records pairs every point with Derive(point), preserving order.
func Records(points []finance.FinancialPoint) []SeriesRecord {
	metrics := finance.DeriveAll(points)
	records := make([]SeriesRecord, len(points))
	for i, p := range points {
		records[i] = SeriesRecord{FinancialPoint: p, Metrics: metrics[i]}
	}
	return records
}

// WriteSeriesJSON emits points as an indented JSON array of SeriesRecord.
func WriteSeriesJSON(w io.Writer, points []finance.FinancialPoint) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Records(points))
}
