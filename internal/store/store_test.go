package store

import (
	"path/filepath"
	"testing"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "preferences.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()

	if _, ok := s.Get("appearance.theme"); ok {
		t.Error("Get on empty store = ok, want absent")
	}

	if err := s.Set("appearance.theme", "ocean"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok := s.Get("appearance.theme")
	if !ok || value != "ocean" {
		t.Errorf("Get = (%q, %v), want (%q, true)", value, ok, "ocean")
	}

	// Upsert overwrites.
	if err := s.Set("appearance.theme", "dark"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if value, _ := s.Get("appearance.theme"); value != "dark" {
		t.Errorf("Get after overwrite = %q, want %q", value, "dark")
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Set("appearance.language", "uk"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	value, ok := s2.Get("appearance.language")
	if !ok || value != "uk" {
		t.Errorf("Get after reopen = (%q, %v), want (%q, true)", value, ok, "uk")
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Get("missing"); ok {
		t.Error("Get on empty memory store = ok, want absent")
	}
	if err := m.Set("appearance.ui_mode", "lite"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok := m.Get("appearance.ui_mode")
	if !ok || value != "lite" {
		t.Errorf("Get = (%q, %v), want (%q, true)", value, ok, "lite")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}
