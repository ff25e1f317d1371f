// Package svg renders the dashboard charts as inline, accessible SVG.
package svg

// LineOpts customises the single series line chart.
type LineOpts struct {
	Title       string
	Description string
	StrokeColor string
	FillColor   string
	AxisColor   string
	GridColor   string
	Padding     float64
	ShowDots    bool
	TickCount   int
}

// Series is one named polyline of a multi-series chart.
type Series struct {
	Name   string
	Values []float64
	Color  string
	Dashed bool
}

// MultiOpts customises the comparison line chart.
type MultiOpts struct {
	Title       string
	Description string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
	// LabelEvery thins x-axis labels; 0 picks a step that fits the width.
	LabelEvery int
	// FormatValue renders point tooltips; nil prints two decimals.
	FormatValue func(float64) string
}

// BarOpts customises the grouped bar chart.
type BarOpts struct {
	Title        string
	Description  string
	SeriesALabel string
	SeriesBLabel string
	ColorA       string
	ColorB       string
	AxisColor    string
	GridColor    string
	Padding      float64
	TickCount    int
}

// Chart defaults.
const (
	DefaultWidth   = 720
	DefaultHeight  = 240
	DefaultPadding = 24.0
	DefaultTicks   = 6

	// ComparisonHeight matches the 300px comparison charts of the dashboard.
	ComparisonHeight = 300
	// ComparisonPadding leaves room for currency ticks on the y axis.
	ComparisonPadding = 48.0
)

// Palette used by the actual/plan comparison charts.
const (
	ColorActual = "#8884d8"
	ColorPlan   = "#82ca9d"
)
