// internal/app/features/charts/handler.go
package charts

import (
	"net/http"

	uierrors "github.com/dalemusser/datavizz/internal/app/features/errors"
	"github.com/dalemusser/datavizz/internal/app/features/records"
	recordsstore "github.com/dalemusser/datavizz/internal/app/store/records"
	"github.com/dalemusser/datavizz/internal/app/system/insights"
	"github.com/dalemusser/datavizz/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler serves chart inputs computed over the same record slice that
// GET / returns, so a client that cannot run the engine itself sees
// identical results.
type Handler struct {
	Records *recordsstore.Store
	Limit   int64
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs a charts Handler.
func NewHandler(store *recordsstore.Store, limit int64, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Records: store,
		Limit:   limit,
		ErrLog:  errLog,
		Log:     logger,
	}
}

// chartsResponse is the JSON body of GET /charts.
type chartsResponse struct {
	Selection insights.Selection `json:"selection"`
	insights.Charts
}

// ServeCharts handles GET /charts.
//
// Query parameters end_year, topic, sector, region, pestle, source, swot
// and country constrain the subset; absent or empty ones do not.
func (h *Handler) ServeCharts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "charts records")
	defer cancel()

	recs, err := h.Records.List(ctx, h.Limit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list records for charts failed", err, records.FetchErrorMessage)
		return
	}

	sel := insights.SelectionFromQuery(r.URL.Query())
	uierrors.WriteJSON(w, http.StatusOK, chartsResponse{
		Selection: sel,
		Charts:    insights.BuildCharts(insights.Filter(recs, sel)),
	})
}

// ServeFilters handles GET /charts/filters, listing the selectable values
// of every dimension.
func (h *Handler) ServeFilters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "filter options")
	defer cancel()

	recs, err := h.Records.List(ctx, h.Limit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list records for filters failed", err, records.FetchErrorMessage)
		return
	}

	uierrors.WriteJSON(w, http.StatusOK, insights.FilterOptions(recs))
}
