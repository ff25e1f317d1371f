package finance

import (
	"time"

	"github.com/google/uuid"
)

// Dataset is the actual/plan pair generated once per process.
type Dataset struct {
	ID          uuid.UUID
	GeneratedAt time.Time
	actual      []FinancialPoint
	plan        []FinancialPoint
}

// NewDataset generates the actual series, then the plan series.
func NewDataset(gen *Generator, now time.Time) *Dataset {
	if gen == nil {
		gen = NewGenerator()
	}
	return &Dataset{
		ID:          uuid.New(),
		GeneratedAt: now.UTC(),
		actual:      gen.Generate(KindActual),
		plan:        gen.Generate(KindPlan),
	}
}

// Series returns the points of kind. Callers must treat the slice as read-only.
func (d *Dataset) Series(kind SeriesKind) []FinancialPoint {
	if d == nil {
		return nil
	}
	switch kind {
	case KindActual:
		return d.actual
	case KindPlan:
		return d.plan
	}
	return nil
}

// Head returns at most n leading points of kind; n <= 0 means all.
func (d *Dataset) Head(kind SeriesKind, n int) []FinancialPoint {
	points := d.Series(kind)
	if n <= 0 || n >= len(points) {
		return points
	}
	return points[:n]
}

// Labels returns the date labels of kind in order.
func (d *Dataset) Labels(kind SeriesKind) []string {
	points := d.Series(kind)
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Date
	}
	return labels
}

// Values projects field over the points of kind.
func (d *Dataset) Values(kind SeriesKind, field Field) []float64 {
	points := d.Series(kind)
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = field.Value(p)
	}
	return values
}
