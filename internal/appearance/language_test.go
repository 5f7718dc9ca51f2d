package appearance

import (
	"errors"
	"reflect"
	"testing"
)

func newLangController(t *testing.T, store Store, rec *recorder) *LanguageController {
	t.Helper()
	c, err := NewLanguageController(store, rec, nil, "de", testTables())
	if err != nil {
		t.Fatalf("NewLanguageController: %v", err)
	}
	return c
}

func TestLanguageDefaultNeedsTable(t *testing.T) {
	_, err := NewLanguageController(newFakeStore(), newRecorder(), nil, "fr", testTables())
	if err == nil {
		t.Fatal("NewLanguageController with untabled default succeeded, want error")
	}
}

func TestLanguageInitializeAbsent(t *testing.T) {
	rec := newRecorder()
	c := newLangController(t, newFakeStore(), rec)

	if code := c.Initialize(); code != "de" {
		t.Errorf("Initialize() = %q, want %q", code, "de")
	}
	if got := rec.markers[MarkerGroupLanguage]; got != "de" {
		t.Errorf("marker %q = %q, want %q", MarkerGroupLanguage, got, "de")
	}
}

func TestLanguageInitializeUnsupportedFallsBack(t *testing.T) {
	store := newFakeStore()
	store.values[languageKey] = "fr"
	c := newLangController(t, store, newRecorder())

	if code := c.Initialize(); code != "de" {
		t.Errorf("Initialize() = %q, want %q", code, "de")
	}
	if got := store.values[languageKey]; got != "fr" {
		t.Errorf("stored language = %q, want %q", got, "fr")
	}
}

func TestLanguageSetUnsupported(t *testing.T) {
	c := newLangController(t, newFakeStore(), newRecorder())
	c.Initialize()

	if _, err := c.Set("fr"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("Set(\"fr\") error = %v, want ErrUnsupportedLanguage", err)
	}
	if c.Current() != "de" {
		t.Errorf("current language = %q after failed Set, want %q", c.Current(), "de")
	}
}

func TestLanguageSetAndMarker(t *testing.T) {
	store := newFakeStore()
	rec := newRecorder()
	c := newLangController(t, store, rec)
	c.Initialize()

	if _, err := c.Set("en"); err != nil {
		t.Fatalf("Set(\"en\"): %v", err)
	}
	if got := rec.markers[MarkerGroupLanguage]; got != "en" {
		t.Errorf("marker %q = %q, want %q", MarkerGroupLanguage, got, "en")
	}
	if got := store.values[languageKey]; got != "en" {
		t.Errorf("stored language = %q, want %q", got, "en")
	}
}

func TestTranslateFallbackChain(t *testing.T) {
	c := newLangController(t, newFakeStore(), newRecorder())
	c.Initialize()
	if _, err := c.Set("en"); err != nil {
		t.Fatalf("Set(\"en\"): %v", err)
	}

	// Hit in the active language.
	if got := c.Translate("menu.overview"); got != "Overview" {
		t.Errorf("Translate(menu.overview) = %q, want %q", got, "Overview")
	}
	// Missing in en, present in the default language.
	if got := c.Translate("menu.exit"); got != "Beenden" {
		t.Errorf("Translate(menu.exit) = %q, want %q", got, "Beenden")
	}
	// Missing everywhere: the key stays visible.
	if got := c.Translate("menu.ghost"); got != "menu.ghost" {
		t.Errorf("Translate(menu.ghost) = %q, want the literal key", got)
	}
}

func TestSupportedCodesSorted(t *testing.T) {
	c := newLangController(t, newFakeStore(), newRecorder())
	if got := c.SupportedCodes(); !reflect.DeepEqual(got, []string{"de", "en"}) {
		t.Errorf("SupportedCodes() = %v, want [de en]", got)
	}
}
