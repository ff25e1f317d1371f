package svg

import (
	"fmt"
	"html/template"
	"strings"
)

var defaultPalette = []string{ColorActual, ColorPlan, "#f97316", "#0ea5e9"}

// LineMulti draws several series over shared labels, one polyline each,
// with a legend above the plot.
func LineMulti(width, height int, labels []string, series []Series, opts MultiOpts) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("svg: at least one series required")
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("svg: labels required")
	}
	minVal, maxVal := 0.0, 0.0
	for i, s := range series {
		if len(s.Values) != len(labels) {
			return "", fmt.Errorf("svg: series %q length must match labels", s.Name)
		}
		lo, hi := bounds(s.Values)
		if i == 0 || lo < minVal {
			minVal = lo
		}
		if i == 0 || hi > maxVal {
			maxVal = hi
		}
	}
	f, err := newFrame(width, height, opts.Padding, opts.TickCount, opts.AxisColor, opts.GridColor)
	if err != nil {
		return "", err
	}
	f.fit(minVal, maxVal)

	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "multi", "Comparison chart", "Series comparison")
	f.grid(&b)
	f.axes(&b, f.y(0))

	format := opts.FormatValue
	if format == nil {
		format = func(v float64) string { return fmt.Sprintf("%.2f", v) }
	}

	legendX := f.padding
	for i, s := range series {
		color := fallback(s.Color, defaultPalette[i%len(defaultPalette)])
		name := fallback(s.Name, fmt.Sprintf("Series %d", i+1))
		dash := ""
		if s.Dashed {
			dash = " stroke-dasharray=\"6,4\""
		}
		fmt.Fprintf(&b, "<path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"2\"%s stroke-linejoin=\"round\" stroke-linecap=\"round\" aria-label=\"%s\"></path>", polyline(f, s.Values), color, dash, template.HTMLEscapeString(name))
		f.legendEntry(&b, legendX, color, name)
		legendX += 90
	}

	// Point markers carry the hover tooltips.
	for i, s := range series {
		color := fallback(s.Color, defaultPalette[i%len(defaultPalette)])
		name := fallback(s.Name, fmt.Sprintf("Series %d", i+1))
		for j, value := range s.Values {
			tip := fmt.Sprintf("%s %s: %s", labels[j], name, format(value))
			fmt.Fprintf(&b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"2.5\" fill=\"%s\"><title>%s</title></circle>", f.x(j, len(labels)), f.y(value), color, template.HTMLEscapeString(tip))
		}
	}

	step := labelStep(len(labels), f.chartWidth, opts.LabelEvery)
	for i, label := range labels {
		if i%step == 0 {
			f.xLabel(&b, f.x(i, len(labels)), label)
		}
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
