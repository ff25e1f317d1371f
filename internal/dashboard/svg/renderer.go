package svg

import "html/template"

// Renderer adapts the package functions to the dashboard renderer interfaces.
type Renderer struct{}

func (Renderer) Line(width, height int, series []float64, labels []string, opts LineOpts) (template.HTML, error) {
	return Line(width, height, series, labels, opts)
}

func (Renderer) LineMulti(width, height int, labels []string, series []Series, opts MultiOpts) (template.HTML, error) {
	return LineMulti(width, height, labels, series, opts)
}

func (Renderer) Bars(width, height int, seriesA, seriesB []float64, labels []string, opts BarOpts) (template.HTML, error) {
	return Bars(width, height, seriesA, seriesB, labels, opts)
}
