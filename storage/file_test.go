package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Set(ThemeKey, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(LanguageKey, "en"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok, _ := reopened.Get(ThemeKey); !ok || v != "dark" {
		t.Fatalf("expected persisted theme, got %q ok=%v", v, ok)
	}
	if v, ok, _ := reopened.Get(LanguageKey); !ok || v != "en" {
		t.Fatalf("expected persisted language, got %q ok=%v", v, ok)
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, ok, err := s.Get(ThemeKey); ok || err != nil {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}
}

func TestFileStoreMalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, ok, _ := s.Get(ThemeKey); ok {
		t.Fatal("expected malformed file to be treated as empty")
	}

	// A write still succeeds and replaces the broken file.
	if err := s.Set(ThemeKey, "light"); err != nil {
		t.Fatalf("Set after malformed load: %v", err)
	}
	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok, _ := reopened.Get(ThemeKey); !ok || v != "light" {
		t.Fatalf("expected rewritten state, got %q ok=%v", v, ok)
	}
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Set(AuthTokenKey, "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete(AuthTokenKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok, _ := reopened.Get(AuthTokenKey); ok {
		t.Fatal("expected deleted key to stay deleted after reopen")
	}
}
