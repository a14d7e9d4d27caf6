// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	chartsfeature "github.com/dalemusser/datavizz/internal/app/features/charts"
	errorsfeature "github.com/dalemusser/datavizz/internal/app/features/errors"
	healthfeature "github.com/dalemusser/datavizz/internal/app/features/health"
	recordsfeature "github.com/dalemusser/datavizz/internal/app/features/records"
	recordsstore "github.com/dalemusser/datavizz/internal/app/store/records"
	"github.com/dalemusser/datavizz/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler.
//
// Routes:
//
//	GET /                 record slice (up to RecordsLimit)
//	GET /charts           chart inputs for the selection in the query string
//	GET /charts/filters   selectable values per dimension
//	GET /health           Mongo connectivity
//	GET /metrics          Prometheus exposition
//
// Anything else falls through to chi's default 404/405.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	errLog := errorsfeature.NewErrorLogger(logger)
	store := recordsstore.New(deps.MongoDatabase, appCfg.MongoCollection)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", metrics.Handler())

	chartsHandler := chartsfeature.NewHandler(store, appCfg.RecordsLimit, errLog, logger)
	r.Mount("/charts", chartsfeature.Routes(chartsHandler))

	recordsHandler := recordsfeature.NewHandler(store, appCfg.RecordsLimit, errLog, logger)
	r.Mount("/", recordsfeature.Routes(recordsHandler))

	return r, nil
}
