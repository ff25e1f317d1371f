package dashboardhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers the dashboard endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(h.exportRPM, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/", h.handleIndex)
	r.Get("/sheets/{tab}", h.handleSheet)
	r.Get("/api/series/{kind}", h.handleSeries)
	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/sheets/{tab}/export.csv", h.handleSheetCSV)
		gr.Get("/api/charts/{name}.svg", h.handleChart)
	})
}
