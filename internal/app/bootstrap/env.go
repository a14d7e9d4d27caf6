// internal/app/bootstrap/env.go
package bootstrap

import "os"

// DefaultPort is the HTTP port used when neither PORT nor WAFFLE_HTTP_PORT is set.
const DefaultPort = "3000"

// ApplyDeploymentEnv maps the conventional deployment variables onto the
// names WAFFLE and LoadConfig read. Explicit WAFFLE_/DATAVIZZ_ values win.
//
//	PORT        -> WAFFLE_HTTP_PORT   (default 3000)
//	MONGODB_URI -> DATAVIZZ_MONGO_URI
//
// Call it from main before app.Run.
func ApplyDeploymentEnv() {
	if _, ok := os.LookupEnv("WAFFLE_HTTP_PORT"); !ok {
		port := os.Getenv("PORT")
		if port == "" {
			port = DefaultPort
		}
		_ = os.Setenv("WAFFLE_HTTP_PORT", port)
	}
	if _, ok := os.LookupEnv("DATAVIZZ_MONGO_URI"); !ok {
		if uri := os.Getenv("MONGODB_URI"); uri != "" {
			_ = os.Setenv("DATAVIZZ_MONGO_URI", uri)
		}
	}
}
