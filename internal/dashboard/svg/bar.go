package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Bars renders a grouped bar chart comparing two series.
func Bars(width, height int, seriesA, seriesB []float64, labels []string, opts BarOpts) (template.HTML, error) {
	if len(seriesA) == 0 && len(seriesB) == 0 {
		return "", fmt.Errorf("svg: at least one series required")
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("svg: labels required")
	}
	if len(seriesA) > 0 && len(seriesA) != len(labels) {
		return "", fmt.Errorf("svg: seriesA length must match labels")
	}
	if len(seriesB) > 0 && len(seriesB) != len(labels) {
		return "", fmt.Errorf("svg: seriesB length must match labels")
	}
	f, err := newFrame(width, height, opts.Padding, opts.TickCount, opts.AxisColor, opts.GridColor)
	if err != nil {
		return "", err
	}
	f.fit(barBounds(seriesA, seriesB))

	colorA := fallback(opts.ColorA, "#0ea5e9")
	colorB := fallback(opts.ColorB, "#f97316")
	labelA := fallback(opts.SeriesALabel, "Series A")
	labelB := fallback(opts.SeriesBLabel, "Series B")

	zeroY := f.y(0)
	groupWidth := f.chartWidth / float64(len(labels))
	barWidth := groupWidth / 3

	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "bar", "Bar chart", "Grouped bar comparison")
	f.grid(&b)
	f.axes(&b, zeroY)

	step := labelStep(len(labels), f.chartWidth, 0)
	for i, label := range labels {
		baseX := f.padding + float64(i)*groupWidth
		if len(seriesA) > 0 {
			y, h := barPosition(seriesA[i], f.scale, zeroY, f.padding, f.bottom())
			fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\" aria-label=\"%s %s\"></rect>", baseX+barWidth*0.3, y, barWidth, h, colorA, template.HTMLEscapeString(labelA), template.HTMLEscapeString(label))
		}
		if len(seriesB) > 0 {
			y, h := barPosition(seriesB[i], f.scale, zeroY, f.padding, f.bottom())
			fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\" aria-label=\"%s %s\"></rect>", baseX+barWidth*1.4, y, barWidth, h, colorB, template.HTMLEscapeString(labelB), template.HTMLEscapeString(label))
		}
		if i%step == 0 {
			f.xLabel(&b, baseX+groupWidth/2, label)
		}
	}

	legendX := f.padding
	if len(seriesA) > 0 {
		f.legendEntry(&b, legendX, colorA, labelA)
		legendX += 90
	}
	if len(seriesB) > 0 {
		f.legendEntry(&b, legendX, colorB, labelB)
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

func barBounds(a, b []float64) (float64, float64) {
	minVal, maxVal := 0.0, 0.0
	if len(a) > 0 {
		minVal, maxVal = bounds(a)
	}
	if len(b) > 0 {
		minB, maxB := bounds(b)
		if len(a) == 0 || minB < minVal {
			minVal = minB
		}
		if len(a) == 0 || maxB > maxVal {
			maxVal = maxB
		}
	}
	return minVal, maxVal
}

func barPosition(value, scale, zeroY, top, bottom float64) (float64, float64) {
	if value >= 0 {
		height := value * scale
		y := zeroY - height
		if y < top {
			height -= top - y
			y = top
		}
		return y, math.Max(height, 0)
	}
	height := math.Abs(value * scale)
	if zeroY+height > bottom {
		height = bottom - zeroY
	}
	return zeroY, math.Max(height, 0)
}
