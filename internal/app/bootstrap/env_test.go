package bootstrap

import (
	"os"
	"testing"
)

// clearEnv unsets key for the duration of the test.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestApplyDeploymentEnv_Defaults(t *testing.T) {
	clearEnv(t, "WAFFLE_HTTP_PORT")
	clearEnv(t, "PORT")
	clearEnv(t, "DATAVIZZ_MONGO_URI")
	clearEnv(t, "MONGODB_URI")

	ApplyDeploymentEnv()

	if got := os.Getenv("WAFFLE_HTTP_PORT"); got != DefaultPort {
		t.Errorf("WAFFLE_HTTP_PORT: got %q, want %q", got, DefaultPort)
	}
	if _, ok := os.LookupEnv("DATAVIZZ_MONGO_URI"); ok {
		t.Error("DATAVIZZ_MONGO_URI should stay unset when MONGODB_URI is empty")
	}
}

func TestApplyDeploymentEnv_Aliases(t *testing.T) {
	clearEnv(t, "WAFFLE_HTTP_PORT")
	clearEnv(t, "DATAVIZZ_MONGO_URI")
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://db:27017/insights")

	ApplyDeploymentEnv()

	if got := os.Getenv("WAFFLE_HTTP_PORT"); got != "8080" {
		t.Errorf("WAFFLE_HTTP_PORT: got %q, want %q", got, "8080")
	}
	if got := os.Getenv("DATAVIZZ_MONGO_URI"); got != "mongodb://db:27017/insights" {
		t.Errorf("DATAVIZZ_MONGO_URI: got %q, want %q", got, "mongodb://db:27017/insights")
	}
}

func TestApplyDeploymentEnv_ExplicitWins(t *testing.T) {
	t.Setenv("WAFFLE_HTTP_PORT", "9000")
	t.Setenv("PORT", "8080")
	t.Setenv("DATAVIZZ_MONGO_URI", "mongodb://explicit/a")
	t.Setenv("MONGODB_URI", "mongodb://alias/b")

	ApplyDeploymentEnv()

	if got := os.Getenv("WAFFLE_HTTP_PORT"); got != "9000" {
		t.Errorf("WAFFLE_HTTP_PORT: got %q, want %q", got, "9000")
	}
	if got := os.Getenv("DATAVIZZ_MONGO_URI"); got != "mongodb://explicit/a" {
		t.Errorf("DATAVIZZ_MONGO_URI: got %q, want %q", got, "mongodb://explicit/a")
	}
}
