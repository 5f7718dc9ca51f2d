package appearance

import (
	"errors"
	"testing"
)

func TestUIModeInitializeAbsent(t *testing.T) {
	rec := newRecorder()
	c := NewUIModeController(newFakeStore(), rec, nil)

	if mode := c.Initialize(); mode != DefaultUIMode {
		t.Errorf("Initialize() = %q, want %q", mode, DefaultUIMode)
	}
	if got := rec.markers[MarkerGroupUIMode]; got != string(DefaultUIMode) {
		t.Errorf("marker %q = %q, want %q", MarkerGroupUIMode, got, DefaultUIMode)
	}
}

func TestUIModeInitializePersisted(t *testing.T) {
	store := newFakeStore()
	store.values[uiModeKey] = "lite"
	c := NewUIModeController(store, newRecorder(), nil)

	if mode := c.Initialize(); mode != ModeLite {
		t.Errorf("Initialize() = %q, want %q", mode, ModeLite)
	}
}

func TestUIModeInitializeInvalidFallsBack(t *testing.T) {
	for _, persisted := range []string{"", "PRO", "compact", "lite "} {
		store := newFakeStore()
		store.values[uiModeKey] = persisted
		c := NewUIModeController(store, newRecorder(), nil)
		if mode := c.Initialize(); mode != DefaultUIMode {
			t.Errorf("Initialize() with persisted %q = %q, want %q", persisted, mode, DefaultUIMode)
		}
		if store.writes != 0 {
			t.Errorf("fallback for %q wrote to the store", persisted)
		}
	}
}

func TestUIModeSetInvalid(t *testing.T) {
	c := NewUIModeController(newFakeStore(), newRecorder(), nil)
	c.Initialize()

	if _, err := c.Set("compact"); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("Set(\"compact\") error = %v, want ErrInvalidMode", err)
	}
	if c.Current() != DefaultUIMode {
		t.Errorf("current mode = %q after failed Set, want %q", c.Current(), DefaultUIMode)
	}
}

func TestUIModeMarkerExclusive(t *testing.T) {
	store := newFakeStore()
	rec := newRecorder()
	c := NewUIModeController(store, rec, nil)
	c.Initialize()

	if _, err := c.Set(ModeLite); err != nil {
		t.Fatalf("Set(ModeLite): %v", err)
	}
	if got := rec.markers[MarkerGroupUIMode]; got != "lite" {
		t.Errorf("marker %q = %q, want %q", MarkerGroupUIMode, got, "lite")
	}
	if len(rec.markers) != 1 {
		t.Errorf("marker groups = %v, want exactly one entry for %q", rec.markers, MarkerGroupUIMode)
	}
	if got := store.values[uiModeKey]; got != "lite" {
		t.Errorf("stored mode = %q, want %q", got, "lite")
	}

	if _, err := c.Set(ModePro); err != nil {
		t.Fatalf("Set(ModePro): %v", err)
	}
	if got := rec.markers[MarkerGroupUIMode]; got != "pro" {
		t.Errorf("marker %q = %q after switch back, want %q", MarkerGroupUIMode, got, "pro")
	}
}

func TestUIModesClosedSet(t *testing.T) {
	modes := UIModes()
	if len(modes) != 2 || modes[0] != ModePro || modes[1] != ModeLite {
		t.Errorf("UIModes() = %v, want [pro lite]", modes)
	}
	for _, mode := range modes {
		if !mode.Valid() {
			t.Errorf("mode %q reported invalid", mode)
		}
	}
}
