package bootstrap

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func validConfig() AppConfig {
	return AppConfig{
		MongoURI:         "mongodb://localhost:27017/insights",
		MongoDatabase:    "insights",
		MongoCollection:  "Data",
		MongoMaxPoolSize: 100,
		RecordsLimit:     50,
		CORSOrigins:      []string{"*"},
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*AppConfig) {}},
		{name: "missing uri", mutate: func(c *AppConfig) { c.MongoURI = "" }, wantErr: "mongo_uri is required"},
		{name: "bad scheme", mutate: func(c *AppConfig) { c.MongoURI = "postgres://localhost" }, wantErr: "invalid MongoDB URI"},
		{name: "zero limit", mutate: func(c *AppConfig) { c.RecordsLimit = 0 }, wantErr: "records_limit must be positive"},
		{name: "pool sizes inverted", mutate: func(c *AppConfig) {
			c.MongoMinPoolSize = 10
			c.MongoMaxPoolSize = 5
		}, wantErr: "exceeds mongo_max_pool_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, zap.NewNop())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateConfig: unexpected error %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateConfig: expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateConfig error: got %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDatabaseFromURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"mongodb://localhost:27017/insights", "insights"},
		{"mongodb://user:pw@db.example.com/blackcoffer?authSource=admin", "blackcoffer"},
		{"mongodb://localhost:27017", fallbackDatabase},
		{"mongodb://localhost:27017/", fallbackDatabase},
		{"", fallbackDatabase},
		{"::not a uri::", fallbackDatabase},
	}
	for _, tt := range tests {
		if got := databaseFromURI(tt.uri); got != tt.want {
			t.Errorf("databaseFromURI(%q): got %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"*", []string{"*"}},
		{"http://a.example, http://b.example", []string{"http://a.example", "http://b.example"}},
		{" , ,", nil},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
