package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dalemusser/datavizz/internal/app/system/insights"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sample = `[
  {"_id":"5fe0c9d5a1b2c3d4e5f60718","end_year":"","start_year":2017,"intensity":6,"likelihood":3,"relevance":2,"sector":"Energy","topic":"oil","region":"World","country":""},
  {"_id":"5fe0c9d5a1b2c3d4e5f60719","end_year":2027,"start_year":"","intensity":"","likelihood":2,"relevance":1,"sector":"","topic":"gas","region":"Asia","country":"India"}
]`

func serve(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

type memThemes struct {
	dark    bool
	loadErr error
	saveErr error
	saves   int
}

func (m *memThemes) Load() (bool, error) { return m.dark, m.loadErr }

func (m *memThemes) Save(dark bool) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.dark = dark
	return nil
}

func TestLoad_Success(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, sample)
	p := New(srv.URL, nil)

	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.State() != StateLoaded {
		t.Errorf("State: got %v, want %v", p.State(), StateLoaded)
	}
	records, ok := p.Data()
	if !ok {
		t.Fatal("Data: expected loaded")
	}
	if len(records) != 2 {
		t.Fatalf("len(records): got %d, want 2", len(records))
	}
	if got := string(records[0].StartYear); got != "2017" {
		t.Errorf("start_year: got %q, want %q", got, "2017")
	}
	if got := string(records[1].EndYear); got != "2027" {
		t.Errorf("end_year: got %q, want %q", got, "2027")
	}
}

func TestLoad_LooseDocuments(t *testing.T) {
	body := `[{"_id":"abc-1","swot":3,"topic":"oil"},{"_id":7,"swot":"Strength","country":null}]`
	srv, _ := serve(t, http.StatusOK, body)
	p := New(srv.URL, nil)

	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	records, ok := p.Data()
	if !ok || len(records) != 2 {
		t.Fatalf("Data: got (%d records, %v), want (2, true)", len(records), ok)
	}
	if records[0].ID != "abc-1" || records[0].Swot != "3" {
		t.Errorf("first record: got id=%q swot=%q", records[0].ID, records[0].Swot)
	}
	if records[1].ID != "7" {
		t.Errorf("second record id: got %q, want %q", records[1].ID, "7")
	}
}

func TestLoad_FetchesOnce(t *testing.T) {
	srv, hits := serve(t, http.StatusOK, sample)
	p := New(srv.URL, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Load(context.Background())
		}()
	}
	wg.Wait()
	_ = p.Load(context.Background())

	if n := atomic.LoadInt32(hits); n != 1 {
		t.Errorf("fetches: got %d, want 1", n)
	}
}

func TestLoad_NonSuccessStatusStaysNotLoaded(t *testing.T) {
	srv, hits := serve(t, http.StatusInternalServerError, `{"message":"Error fetching data"}`)

	core, logs := observer.New(zapcore.ErrorLevel)
	p := New(srv.URL, nil, WithLogger(zap.New(core)))

	err := p.Load(context.Background())
	if err == nil {
		t.Fatal("Load: expected error for 500 response")
	}
	if errors.Is(err, ErrNotLoaded) {
		t.Error("Load error should describe the fetch failure, not ErrNotLoaded")
	}
	if _, ok := p.Data(); ok {
		t.Error("Data: should not be loaded after failure")
	}
	if p.State() != StateNotLoaded {
		t.Errorf("State: got %v, want %v", p.State(), StateNotLoaded)
	}
	if logs.FilterMessage("error fetching data").Len() != 1 {
		t.Errorf("expected one logged fetch error, got %d", logs.Len())
	}

	// No retry.
	if err2 := p.Load(context.Background()); err2 == nil || err2.Error() != err.Error() {
		t.Errorf("second Load: got %v, want %v", err2, err)
	}
	if n := atomic.LoadInt32(hits); n != 1 {
		t.Errorf("fetches: got %d, want 1", n)
	}
}

func TestLoad_MalformedBody(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `{"not":"an array"}`)
	p := New(srv.URL, nil)

	if err := p.Load(context.Background()); err == nil {
		t.Fatal("Load: expected decode error")
	}
	if p.State() != StateNotLoaded {
		t.Errorf("State: got %v, want %v", p.State(), StateNotLoaded)
	}
}

func TestLoad_Unreachable(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, sample)
	url := srv.URL
	srv.Close()

	p := New(url, nil)
	if err := p.Load(context.Background()); err == nil {
		t.Fatal("Load: expected transport error")
	}
	if _, ok := p.Data(); ok {
		t.Error("Data: should not be loaded")
	}
}

func TestLoad_EmptyArray(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `[]`)
	p := New(srv.URL, nil)

	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	records, ok := p.Data()
	if !ok || records == nil || len(records) != 0 {
		t.Errorf("Data: got (%v, %v), want ([], true)", records, ok)
	}
}

func TestErr_BeforeLoad(t *testing.T) {
	p := New("http://127.0.0.1:1", nil)
	if !errors.Is(p.Err(), ErrNotLoaded) {
		t.Errorf("Err: got %v, want ErrNotLoaded", p.Err())
	}
	if _, ok := p.Data(); ok {
		t.Error("Data: should not be loaded before Load")
	}
}

func TestTheme_DefaultsToLight(t *testing.T) {
	if New("http://x", nil).Dark() {
		t.Error("nil store: want light theme")
	}
	if New("http://x", &memThemes{loadErr: errors.New("boom")}).Dark() {
		t.Error("unreadable store: want light theme")
	}
	if !New("http://x", &memThemes{dark: true}).Dark() {
		t.Error("stored dark flag should be honoured")
	}
}

func TestToggleTheme_Persists(t *testing.T) {
	store := &memThemes{}
	p := New("http://x", store)

	dark, err := p.ToggleTheme()
	if err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if !dark || !p.Dark() || !store.dark {
		t.Errorf("after first toggle: got provider=%v store=%v, want true", p.Dark(), store.dark)
	}

	dark, err = p.ToggleTheme()
	if err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if dark || p.Dark() || store.dark {
		t.Errorf("after second toggle: got provider=%v store=%v, want false", p.Dark(), store.dark)
	}
	if store.saves != 2 {
		t.Errorf("saves: got %d, want 2", store.saves)
	}
}

func TestToggleTheme_SaveFailureKeepsFlag(t *testing.T) {
	p := New("http://x", &memThemes{saveErr: errors.New("read-only")})

	dark, err := p.ToggleTheme()
	if err == nil {
		t.Fatal("ToggleTheme: expected error")
	}
	if dark || p.Dark() {
		t.Error("flag should be unchanged when the save fails")
	}
}

func TestProvider_DrivesView(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, sample)
	p := New(srv.URL, nil)
	view := insights.NewView(p)

	if f := view.Render(nil); !f.Loading || f.Charts != nil {
		t.Errorf("before Load: got %+v, want loading frame", f)
	}

	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	f := view.Render(insights.Selection{insights.Topic: "gas"})
	if f.Loading || f.Charts == nil {
		t.Fatal("after Load: expected charts")
	}
	if f.Charts.Records != 1 {
		t.Errorf("filtered records: got %d, want 1", f.Charts.Records)
	}
	if got := f.Charts.Doughnut.Labels; len(got) != 1 || got[0] != "India" {
		t.Errorf("doughnut labels: got %v, want [India]", got)
	}
}
