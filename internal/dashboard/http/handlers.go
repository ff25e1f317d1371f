package dashboardhttp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/findash/findash/internal/dashboard"
	"github.com/findash/findash/internal/dashboard/export"
	"github.com/findash/findash/internal/finance"
	"github.com/findash/findash/internal/platform/httpx"
	"github.com/findash/findash/internal/view"
)

const requestTimeout = 2 * time.Second

// DashboardService defines the data contract used by the handler.
type DashboardService interface {
	Sheet(ctx context.Context, tab dashboard.Tab) (dashboard.Sheet, error)
	ChartByName(ctx context.Context, name string) (dashboard.Chart, error)
	Dataset() *finance.Dataset
}

// Handler serves the dashboard sheets, exports and JSON API.
type Handler struct {
	logger    *slog.Logger
	service   DashboardService
	templates *view.Engine
	validate  *validator.Validate
	csvPool   sync.Pool
	exportRPM int
}

// NewHandler constructs the dashboard HTTP handler. exportRPM limits CSV and
// SVG downloads per client per minute; 0 picks a default.
func NewHandler(logger *slog.Logger, service DashboardService, templates *view.Engine, exportRPM int) *Handler {
	if exportRPM <= 0 {
		exportRPM = 30
	}
	h := &Handler{
		logger:    logger,
		service:   service,
		templates: templates,
		validate:  validator.New(),
		exportRPM: exportRPM,
	}
	h.csvPool.New = func() interface{} { return new(bytes.Buffer) }
	return h
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/sheets/"+dashboard.DefaultTab.String(), http.StatusSeeOther)
}

func (h *Handler) handleSheet(w http.ResponseWriter, r *http.Request) {
	tab, err := dashboard.ParseTab(chi.URLParam(r, "tab"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	sheet, err := h.service.Sheet(ctx, tab)
	if err != nil {
		h.handleServerError(w, "build sheet", err)
		return
	}

	viewData := view.TemplateData{
		Title:       tab.Title(),
		CurrentPath: r.URL.Path,
		Data:        sheet,
	}
	if err := h.templates.Render(w, "pages/sheet.html", viewData); err != nil {
		h.handleServerError(w, "render template", err)
	}
}

func (h *Handler) handleSheetCSV(w http.ResponseWriter, r *http.Request) {
	tab, err := dashboard.ParseTab(chi.URLParam(r, "tab"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	sheet, err := h.service.Sheet(ctx, tab)
	if err != nil {
		h.handleServerError(w, "build sheet", err)
		return
	}

	buf := h.csvPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		buf.Reset()
		h.csvPool.Put(buf)
	}()

	if err := export.WriteSheetCSV(buf, sheet); err != nil {
		h.handleServerError(w, "write sheet csv", err)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", tab, shortID(sheet.DatasetID))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream csv", err)
	}
}

type seriesQuery struct {
	Rows *int `validate:"omitempty,min=1,max=48"`
}

func (q seriesQuery) limit() int {
	if q.Rows == nil {
		return 0
	}
	return *q.Rows
}

type seriesResponse struct {
	DatasetID string                `json:"datasetId"`
	Kind      finance.SeriesKind    `json:"seriesKind"`
	Count     int                   `json:"count"`
	Points    []export.SeriesRecord `json:"points"`
}

func (h *Handler) handleSeries(w http.ResponseWriter, r *http.Request) {
	kind, err := finance.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httpx.RespondError(w, r, fmt.Errorf("%w: %v", httpx.ErrNotFound, err))
		return
	}
	query, err := h.parseSeriesQuery(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	ds := h.service.Dataset()
	points := ds.Head(kind, query.limit())
	httpx.JSON(w, http.StatusOK, seriesResponse{
		DatasetID: ds.ID.String(),
		Kind:      kind,
		Count:     len(points),
		Points:    export.Records(points),
	})
}

func (h *Handler) parseSeriesQuery(r *http.Request) (seriesQuery, error) {
	var q seriesQuery
	if raw := strings.TrimSpace(r.URL.Query().Get("rows")); raw != "" {
		rows, err := strconv.Atoi(raw)
		if err != nil {
			return seriesQuery{}, fmt.Errorf("%w: rows must be an integer", httpx.ErrValidation)
		}
		q.Rows = &rows
	}
	if err := h.validate.Struct(q); err != nil {
		return seriesQuery{}, fmt.Errorf("%w: rows must be between 1 and 48", httpx.ErrValidation)
	}
	return q, nil
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	chart, err := h.service.ChartByName(ctx, chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, dashboard.ErrUnknownChart) || errors.Is(err, finance.ErrUnknownField) {
			http.NotFound(w, r)
			return
		}
		h.handleServerError(w, "render chart", err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write([]byte(chart.SVG)); err != nil {
		h.logError("stream svg", err)
	}
}

func (h *Handler) handleServerError(w http.ResponseWriter, context string, err error) {
	h.logError(context, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) logError(context string, err error) {
	if h.logger != nil {
		h.logger.Error(context, slog.Any("error", err))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
