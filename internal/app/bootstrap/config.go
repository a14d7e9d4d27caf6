// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

// fallbackDatabase is used when neither mongo_database nor the URI names a
// database, matching the Mongo drivers' own default.
const fallbackDatabase = "test"

// appConfigKeys defines the configuration keys for datavizz.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, records_limit, etc.
//   - Environment variables: DATAVIZZ_MONGO_URI, DATAVIZZ_RECORDS_LIMIT, etc.
//   - Command-line flags: --mongo_uri, --records_limit, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (required)"},
	{Name: "mongo_database", Default: "", Desc: "MongoDB database name (blank: taken from the URI)"},
	{Name: "mongo_collection", Default: "Data", Desc: "Collection holding the insight records"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size"},
	{Name: "records_limit", Default: 50, Desc: "Number of records served to the dashboard"},
	{Name: "cors_origins", Default: "*", Desc: "Comma-separated list of allowed CORS origins"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// Precedence is flags > env > files > defaults. Environment variables use
// the DATAVIZZ_ prefix for app keys and WAFFLE_ for core keys; see
// ApplyDeploymentEnv for the PORT and MONGODB_URI aliases.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "DATAVIZZ", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoCollection:  appValues.String("mongo_collection"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		RecordsLimit:     int64(appValues.Int("records_limit")),
		CORSOrigins:      splitList(appValues.String("cors_origins")),
	}

	if appCfg.MongoDatabase == "" {
		appCfg.MongoDatabase = databaseFromURI(appCfg.MongoURI)
		logger.Info("using database from mongo_uri",
			zap.String("mongo_database", appCfg.MongoDatabase))
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects configurations that cannot serve the dashboard.
// A missing or malformed URI fails here, before any connection attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI == "" {
		return fmt.Errorf("mongo_uri is required (set DATAVIZZ_MONGO_URI or MONGODB_URI)")
	}
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.RecordsLimit <= 0 {
		return fmt.Errorf("records_limit must be positive, got %d", appCfg.RecordsLimit)
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	return nil
}

// databaseFromURI returns the database named in the URI path, or
// fallbackDatabase when there is none or the URI does not parse.
func databaseFromURI(uri string) string {
	if uri == "" {
		return fallbackDatabase
	}
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return fallbackDatabase
	}
	return cs.Database
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
