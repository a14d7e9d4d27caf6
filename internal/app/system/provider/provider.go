// Package provider holds the dashboard's client-side data: the one-shot
// fetch of the record set from the backend and the persisted theme flag.
//
// A Provider is an explicit handle passed to whoever needs it. Load fetches
// at most once; a failed fetch leaves the provider "not loaded" for its
// whole lifetime.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dalemusser/datavizz/internal/app/system/metrics"
	"github.com/dalemusser/datavizz/internal/app/system/timeouts"
	"github.com/dalemusser/datavizz/internal/domain/models"
	"go.uber.org/zap"
)

// ErrNotLoaded is returned by Err before Load has been attempted.
var ErrNotLoaded = errors.New("provider: data not loaded")

// State is the provider's load state. The only transition is
// StateNotLoaded to StateLoaded.
type State int

const (
	StateNotLoaded State = iota
	StateLoaded
)

func (s State) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "not loaded"
}

// ThemeStore persists the dark-theme flag. prefs.Theme implements it.
type ThemeStore interface {
	Load() (bool, error)
	Save(dark bool) error
}

// Option configures a Provider.
type Option func(*Provider)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) { p.client = c }
}

// WithLogger sets the logger; the default discards.
func WithLogger(l *zap.Logger) Option {
	return func(p *Provider) { p.log = l }
}

// Provider fetches the record set once and owns the theme flag.
type Provider struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
	themes   ThemeStore

	once sync.Once

	mu      sync.RWMutex
	state   State
	records []models.Record
	err     error
	tried   bool
	dark    bool
}

// New creates a Provider for endpoint. The theme flag is read from themes
// immediately; a nil store or a read failure leaves the light theme.
func New(endpoint string, themes ThemeStore, opts ...Option) *Provider {
	p := &Provider{
		endpoint: endpoint,
		client:   http.DefaultClient,
		log:      zap.NewNop(),
		themes:   themes,
	}
	for _, opt := range opts {
		opt(p)
	}

	if themes != nil {
		dark, err := themes.Load()
		if err != nil {
			p.log.Warn("theme preference unreadable; using light theme", zap.Error(err))
		} else {
			p.dark = dark
		}
	}
	return p
}

// Load performs the single fetch. Later calls do nothing and return the
// outcome of the first one.
func (p *Provider) Load(ctx context.Context) error {
	p.once.Do(func() {
		records, err := p.fetch(ctx)

		p.mu.Lock()
		defer p.mu.Unlock()
		p.tried = true
		if err != nil {
			p.err = err
			p.log.Error("error fetching data",
				zap.String("endpoint", p.endpoint),
				zap.Error(err))
			metrics.ObserveFetch(metrics.FetchFailed)
			return
		}
		p.records = records
		p.state = StateLoaded
		p.log.Debug("data loaded",
			zap.String("endpoint", p.endpoint),
			zap.Int("records", len(records)))
		metrics.ObserveFetch(metrics.FetchOK)
	})
	return p.Err()
}

func (p *Provider) fetch(ctx context.Context) ([]models.Record, error) {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), p.log, "provider fetch")
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", p.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", p.endpoint, resp.StatusCode)
	}

	var records []models.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

// Data returns the fetched records and whether they are loaded. The slice
// is shared; callers must not modify it.
func (p *Provider) Data() ([]models.Record, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.state != StateLoaded {
		return nil, false
	}
	return p.records, true
}

// State reports the load state.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Err returns nil once loaded, the fetch error after a failed Load, and
// ErrNotLoaded before Load has run.
func (p *Provider) Err() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	switch {
	case p.state == StateLoaded:
		return nil
	case !p.tried:
		return ErrNotLoaded
	}
	return p.err
}

// Dark reports whether the dark theme is active.
func (p *Provider) Dark() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dark
}

// ToggleTheme flips the theme flag and persists it. If the store refuses
// the write the flag is left unchanged.
func (p *Provider) ToggleTheme() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := !p.dark
	if p.themes != nil {
		if err := p.themes.Save(next); err != nil {
			return p.dark, fmt.Errorf("save theme: %w", err)
		}
	}
	p.dark = next
	return next, nil
}
