// internal/app/features/charts/routes.go
package charts

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the chart endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeCharts) // mounted under /charts
	r.Get("/filters", h.ServeFilters)
	return r
}
