package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Bool(ThemeKey) {
		t.Error("absent theme flag should read as false")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Open should not create the file")
	}
}

func TestSetBool_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SetBool(ThemeKey, true); err != nil {
		t.Fatalf("SetBool: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read prefs file: %v", err)
	}
	if !strings.Contains(string(data), "dark: true") {
		t.Errorf("prefs file: got %q, want it to contain %q", data, "dark: true")
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reopened.Bool(ThemeKey) {
		t.Error("theme flag should survive reopen")
	}
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte("dark: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Open should fail on malformed YAML")
	}
}

func TestTheme_RoundTrip(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "prefs.yaml"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	theme := Theme{Store: s}

	for _, want := range []bool{true, false, true} {
		if err := theme.Save(want); err != nil {
			t.Fatalf("Save(%v): %v", want, err)
		}
		got, err := theme.Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if got != want {
			t.Errorf("Load: got %v, want %v", got, want)
		}
	}
}

func TestEmpty_ReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte("dark: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := Empty(path)
	if s.Bool(ThemeKey) {
		t.Error("empty store should read the theme flag as false")
	}
	if err := s.SetBool(ThemeKey, true); err != nil {
		t.Fatalf("SetBool: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open after rewrite: %v", err)
	}
	if !reopened.Bool(ThemeKey) {
		t.Error("rewritten file should hold the theme flag")
	}
}
