// internal/app/features/records/routes.go
package records

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter serving the record list at its root.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
