// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds datavizz-specific configuration.
//
// WAFFLE's CoreConfig covers the framework side (HTTP port, TLS, logging
// level, request limits). AppConfig carries what only this service needs:
// where the records live and how many of them the dashboard gets.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (required)
	MongoDatabase    string // Database name; blank means the one named in MongoURI
	MongoCollection  string // Source collection (default: Data)
	MongoMaxPoolSize uint64 // Max pooled connections
	MongoMinPoolSize uint64 // Min pooled connections

	// RecordsLimit is the number of documents served by GET / and used by
	// the chart endpoints.
	RecordsLimit int64

	// CORSOrigins lists the origins allowed to call the API ("*" for any).
	CORSOrigins []string
}
