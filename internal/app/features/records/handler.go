// internal/app/features/records/handler.go
package records

import (
	"net/http"

	uierrors "github.com/dalemusser/datavizz/internal/app/features/errors"
	recordsstore "github.com/dalemusser/datavizz/internal/app/store/records"
	"github.com/dalemusser/datavizz/internal/app/system/metrics"
	"github.com/dalemusser/datavizz/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// FetchErrorMessage is the client-facing message for any store failure.
const FetchErrorMessage = "Error fetching data"

// Handler serves the dashboard's record slice.
type Handler struct {
	Records *recordsstore.Store
	Limit   int64
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs a records Handler serving up to limit records.
func NewHandler(store *recordsstore.Store, limit int64, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Records: store,
		Limit:   limit,
		ErrLog:  errLog,
		Log:     logger,
	}
}

// ServeList handles GET /.
//
// On success: 200 and a JSON array of at most Limit records.
// On any store error: 500 and
//
//	{ "message": "Error fetching data" }
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "list records")
	defer cancel()

	recs, err := h.Records.List(ctx, h.Limit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list records failed", err, FetchErrorMessage)
		return
	}

	metrics.ObserveRecordsServed(len(recs))
	h.Log.Debug("served records", zap.Int("count", len(recs)))
	uierrors.WriteJSON(w, http.StatusOK, recs)
}
