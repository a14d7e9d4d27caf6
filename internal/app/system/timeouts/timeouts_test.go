package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/datavizz/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()

	if got := timeouts.Ping(); got != timeouts.DefaultPing {
		t.Errorf("Ping: got %v, want %v", got, timeouts.DefaultPing)
	}
	if got := timeouts.Short(); got != timeouts.DefaultShort {
		t.Errorf("Short: got %v, want %v", got, timeouts.DefaultShort)
	}
	if got := timeouts.Fetch(); got != timeouts.DefaultFetch {
		t.Errorf("Fetch: got %v, want %v", got, timeouts.DefaultFetch)
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	timeouts.Reset()
	defer timeouts.Reset()

	timeouts.Configure(timeouts.Config{Short: 7 * time.Second})

	cur := timeouts.Current()
	if cur.Short != 7*time.Second {
		t.Errorf("Short: got %v, want 7s", cur.Short)
	}
	if cur.Ping != timeouts.DefaultPing {
		t.Errorf("Ping: got %v, want default", cur.Ping)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	timeouts.Reset()
	defer timeouts.Reset()

	t.Setenv("DATAVIZZ_TIMEOUT_PING", "500ms")
	t.Setenv("DATAVIZZ_TIMEOUT_SHORT", "not-a-duration")
	t.Setenv("DATAVIZZ_TIMEOUT_FETCH", "30s")

	if n := timeouts.ConfigureFromEnv(); n != 2 {
		t.Errorf("configured: got %d, want 2", n)
	}
	if got := timeouts.Ping(); got != 500*time.Millisecond {
		t.Errorf("Ping: got %v", got)
	}
	if got := timeouts.Short(); got != timeouts.DefaultShort {
		t.Errorf("Short: got %v, want default", got)
	}
	if got := timeouts.Fetch(); got != 30*time.Second {
		t.Errorf("Fetch: got %v", got)
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test op")
	defer cancel()

	<-ctx.Done()
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("Err: got %v, want DeadlineExceeded", ctx.Err())
	}
}
