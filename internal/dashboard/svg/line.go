package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Line renders a single series with an optional filled area under it.
func Line(width, height int, series []float64, labels []string, opts LineOpts) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("svg: series required")
	}
	if len(series) != len(labels) {
		return "", fmt.Errorf("svg: labels length must match series")
	}
	f, err := newFrame(width, height, opts.Padding, opts.TickCount, opts.AxisColor, opts.GridColor)
	if err != nil {
		return "", err
	}
	f.fit(bounds(series))

	strokeColor := fallback(opts.StrokeColor, "#2563eb")
	fillColor := fallback(opts.FillColor, "rgba(37,99,235,0.12)")
	path := polyline(f, series)

	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "line", "Line chart", "Trend data")
	f.grid(&b)
	baseline := f.y(0)
	f.axes(&b, baseline)

	firstX, lastX := f.x(0, len(series)), f.x(len(series)-1, len(series))
	fmt.Fprintf(&b, "<path d=\"%s L%.2f %.2f L%.2f %.2f Z\" fill=\"%s\" stroke=\"none\" aria-hidden=\"true\"></path>", path, lastX, baseline, firstX, baseline, fillColor)
	fmt.Fprintf(&b, "<path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"2\" stroke-linejoin=\"round\" stroke-linecap=\"round\"></path>", path, strokeColor)

	if opts.ShowDots {
		for i, value := range series {
			fmt.Fprintf(&b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"3\" fill=\"%s\"></circle>", f.x(i, len(series)), f.y(value), strokeColor)
		}
	}

	step := labelStep(len(labels), f.chartWidth, 0)
	for i, label := range labels {
		if i%step == 0 {
			f.xLabel(&b, f.x(i, len(labels)), label)
		}
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

func polyline(f *frame, series []float64) string {
	var path strings.Builder
	for i, value := range series {
		cmd := " L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&path, "%s%.2f %.2f", cmd, f.x(i, len(series)), f.y(value))
	}
	return path.String()
}

// labelStep keeps x labels roughly 48px apart.
func labelStep(n int, chartWidth float64, every int) int {
	if every > 0 {
		return every
	}
	if n <= 1 {
		return 1
	}
	fit := int(chartWidth / 48)
	if fit < 1 {
		fit = 1
	}
	step := (n + fit - 1) / fit
	if step < 1 {
		step = 1
	}
	return step
}
