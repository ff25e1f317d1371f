package dashboard

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/findash/findash/internal/dashboard/svg"
	"github.com/findash/findash/internal/finance"
	"github.com/findash/findash/internal/shared"
)

// LineRenderer abstracts single series SVG rendering.
type LineRenderer interface {
	Line(width, height int, series []float64, labels []string, opts svg.LineOpts) (template.HTML, error)
}

// MultiLineRenderer abstracts comparison chart rendering.
type MultiLineRenderer interface {
	LineMulti(width, height int, labels []string, series []svg.Series, opts svg.MultiOpts) (template.HTML, error)
}

// BarRenderer abstracts grouped bar rendering.
type BarRenderer interface {
	Bars(width, height int, seriesA, seriesB []float64, labels []string, opts svg.BarOpts) (template.HTML, error)
}

// ErrUnknownChart is returned for chart names no sheet renders.
var ErrUnknownChart = errors.New("dashboard: unknown chart")

// Chart is a rendered, titled chart.
type Chart struct {
	Name  string
	Title string
	SVG   template.HTML
}

// NavItem is one tab button.
type NavItem struct {
	Tab    Tab
	Active bool
}

// Sheet is the view model of one tab.
type Sheet struct {
	Tab         Tab
	Nav         []NavItem
	DatasetID   string
	GeneratedAt time.Time
	Tables      []Table
	Charts      []Chart
	Variance    []VarianceRow
}

// Renderers groups the chart renderers used by the service.
type Renderers struct {
	Line  LineRenderer
	Multi MultiLineRenderer
	Bar   BarRenderer
}

// ServiceConfig tunes the dashboard service.
type ServiceConfig struct {
	VarianceThresholdPct float64
}

// Service builds sheet view models over one immutable dataset.
type Service struct {
	dataset   *finance.Dataset
	charts    *ChartCache
	renderers Renderers
	cfg       ServiceConfig
}

// NewService wires the service dependencies.
func NewService(dataset *finance.Dataset, charts *ChartCache, renderers Renderers, cfg ServiceConfig) *Service {
	return &Service{dataset: dataset, charts: charts, renderers: renderers, cfg: cfg}
}

// Dataset exposes the underlying dataset.
func (s *Service) Dataset() *finance.Dataset {
	return s.dataset
}

// Sheet builds the view model for tab.
func (s *Service) Sheet(ctx context.Context, tab Tab) (Sheet, error) {
	if !tab.Valid() {
		return Sheet{}, fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	sheet := Sheet{
		Tab:         tab,
		Nav:         navigation(tab),
		DatasetID:   s.dataset.ID.String(),
		GeneratedAt: s.dataset.GeneratedAt,
		Tables:      s.Tables(tab),
	}
	var err error
	switch tab.Kind {
	case TabCalc:
		sheet.Charts, err = s.calcCharts(ctx)
	case TabOutput:
		sheet.Charts, err = s.outputCharts(ctx)
		sheet.Variance = s.Variance()
	}
	if err != nil {
		return Sheet{}, err
	}
	return sheet, nil
}

// Tables returns the tables shown on tab, each limited to TableRows months
// of the actual series.
func (s *Service) Tables(tab Tab) []Table {
	head := s.dataset.Head(finance.KindActual, TableRows)
	switch tab.Kind {
	case TabInput:
		return []Table{BuildTable("", head, InputColumns)}
	case TabCalc:
		return []Table{BuildTable("", head, CalcColumns)}
	case TabOutput:
		tables := make([]Table, 0, len(OutputStatements))
		for _, st := range OutputStatements {
			tables = append(tables, BuildTable(st.Title, head, st.Fields))
		}
		return tables
	}
	return nil
}

// Variance compares yearly actual and plan totals of the comparison fields.
func (s *Service) Variance() []VarianceRow {
	return ComputePlanVariance(
		s.dataset.Series(finance.KindActual),
		s.dataset.Series(finance.KindPlan),
		ComparisonFields,
		s.cfg.VarianceThresholdPct,
	)
}

// ComparisonChart renders the actual-vs-plan chart of field over the full
// series.
func (s *Service) ComparisonChart(ctx context.Context, field finance.Field) (Chart, error) {
	if s.renderers.Multi == nil {
		return Chart{}, fmt.Errorf("dashboard: comparison renderer missing")
	}
	title := field.Label() + " Comparison"
	key := ChartKey(s.dataset.ID, "compare", string(field))
	html, err := s.charts.Fetch(ctx, key, func(context.Context) (template.HTML, error) {
		return s.renderers.Multi.LineMulti(svg.DefaultWidth, svg.ComparisonHeight, s.dataset.Labels(finance.KindActual), []svg.Series{
			{Name: "Actual", Values: s.dataset.Values(finance.KindActual, field), Color: svg.ColorActual},
			{Name: "Plan", Values: s.dataset.Values(finance.KindPlan, field), Color: svg.ColorPlan},
		}, svg.MultiOpts{
			Title:       title,
			Description: fmt.Sprintf("Monthly %s, actual against plan", field.Label()),
			Padding:     svg.ComparisonPadding,
			LabelEvery:  finance.MonthsPerYear / 2,
			FormatValue: shared.USD,
		})
	})
	if err != nil {
		return Chart{}, fmt.Errorf("dashboard: render %s comparison: %w", field, err)
	}
	return Chart{Name: "compare-" + string(field), Title: title, SVG: html}, nil
}

// ChartByName resolves the chart names used on the sheets:
// "compare-<field>", "trend-netCashFlow" and "bars-cash".
func (s *Service) ChartByName(ctx context.Context, name string) (Chart, error) {
	switch {
	case name == "trend-"+string(finance.FieldNetCashFlow):
		charts, err := s.calcCharts(ctx)
		if err != nil {
			return Chart{}, err
		}
		return charts[0], nil
	case name == "bars-cash":
		return s.cashFlowChart(ctx)
	case strings.HasPrefix(name, "compare-"):
		field, err := finance.ParseField(strings.TrimPrefix(name, "compare-"))
		if err != nil {
			return Chart{}, err
		}
		return s.ComparisonChart(ctx, field)
	}
	return Chart{}, fmt.Errorf("%w: %q", ErrUnknownChart, name)
}

func (s *Service) calcCharts(ctx context.Context) ([]Chart, error) {
	if s.renderers.Line == nil {
		return nil, fmt.Errorf("dashboard: line renderer missing")
	}
	const title = "Net Cash Flow Trend"
	head := s.dataset.Head(finance.KindActual, TableRows)
	html, err := s.charts.Fetch(ctx, ChartKey(s.dataset.ID, "trend", string(finance.FieldNetCashFlow)), func(context.Context) (template.HTML, error) {
		labels, values := project(head, finance.FieldNetCashFlow)
		return s.renderers.Line.Line(svg.DefaultWidth, svg.DefaultHeight, values, labels, svg.LineOpts{
			Title:       title,
			Description: "Cash inflow minus cash outflow per month",
			Padding:     svg.ComparisonPadding,
			ShowDots:    true,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: render net cash flow trend: %w", err)
	}
	return []Chart{{Name: "trend-netCashFlow", Title: title, SVG: html}}, nil
}

func (s *Service) outputCharts(ctx context.Context) ([]Chart, error) {
	charts := make([]Chart, len(ComparisonFields)+1)
	g, gctx := errgroup.WithContext(ctx)
	for i, field := range ComparisonFields {
		g.Go(func() error {
			chart, err := s.ComparisonChart(gctx, field)
			if err != nil {
				return err
			}
			charts[i] = chart
			return nil
		})
	}
	g.Go(func() error {
		chart, err := s.cashFlowChart(gctx)
		if err != nil {
			return err
		}
		charts[len(charts)-1] = chart
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return charts, nil
}

func (s *Service) cashFlowChart(ctx context.Context) (Chart, error) {
	if s.renderers.Bar == nil {
		return Chart{}, fmt.Errorf("dashboard: bar renderer missing")
	}
	const title = "Cash Inflow vs Outflow"
	head := s.dataset.Head(finance.KindActual, TableRows)
	html, err := s.charts.Fetch(ctx, ChartKey(s.dataset.ID, "bars", "cash"), func(context.Context) (template.HTML, error) {
		labels, in := project(head, finance.FieldCashInflow)
		_, out := project(head, finance.FieldCashOutflow)
		return s.renderers.Bar.Bars(svg.DefaultWidth, svg.DefaultHeight, in, out, labels, svg.BarOpts{
			Title:        title,
			Description:  "Monthly cash inflow and outflow",
			SeriesALabel: "Cash Inflow",
			SeriesBLabel: "Cash Outflow",
			Padding:      svg.ComparisonPadding,
		})
	})
	if err != nil {
		return Chart{}, fmt.Errorf("dashboard: render cash flow bars: %w", err)
	}
	return Chart{Name: "bars-cash", Title: title, SVG: html}, nil
}

func project(points []finance.FinancialPoint, field finance.Field) ([]string, []float64) {
	labels := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Date
		values[i] = field.Value(p)
	}
	return labels, values
}

func navigation(active Tab) []NavItem {
	tabs := AllTabs()
	items := make([]NavItem, len(tabs))
	for i, tab := range tabs {
		items[i] = NavItem{Tab: tab, Active: tab == active}
	}
	return items
}
