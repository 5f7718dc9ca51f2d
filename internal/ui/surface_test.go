package ui

import (
	"testing"

	"github.com/spaarbot/spaarctl/internal/appearance"
)

func resetSurface(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		surface = newSurface()
		rebuildStyles()
	})
}

func TestSurfaceSeededWithDefaultPalette(t *testing.T) {
	s := newSurface()
	def, _ := appearance.Find(appearance.DefaultThemeID)
	for name, want := range def.Palette.Variables() {
		got, ok := s.variables[name]
		if !ok || got != want {
			t.Errorf("seeded variable %s = (%q, %v), want (%q, true)", name, got, ok, want)
		}
	}
}

func TestSurfaceVariableOverwrite(t *testing.T) {
	resetSurface(t)
	p := Projector()

	p.SetVariable(appearance.VarPrimary, "#111111")
	p.SetVariable(appearance.VarPrimary, "#222222")

	value, ok := p.Variable(appearance.VarPrimary)
	if !ok || value != "#222222" {
		t.Errorf("Variable(%s) = (%q, %v), want (%q, true)", appearance.VarPrimary, value, ok, "#222222")
	}
}

func TestSurfaceMarkerExclusive(t *testing.T) {
	resetSurface(t)
	p := Projector()

	p.SetExclusiveMarker(appearance.MarkerGroupUIMode, "pro")
	p.SetExclusiveMarker(appearance.MarkerGroupUIMode, "lite")
	if got := p.Marker(appearance.MarkerGroupUIMode); got != "lite" {
		t.Errorf("Marker(ui-mode) = %q, want %q", got, "lite")
	}

	// Another group is untouched.
	p.SetExclusiveMarker(appearance.MarkerGroupLanguage, "uk")
	if got := p.Marker(appearance.MarkerGroupUIMode); got != "lite" {
		t.Errorf("Marker(ui-mode) = %q after language change, want %q", got, "lite")
	}
	if got := p.Marker(appearance.MarkerGroupLanguage); got != "uk" {
		t.Errorf("Marker(language) = %q, want %q", got, "uk")
	}
}

func TestDense(t *testing.T) {
	resetSurface(t)
	p := Projector()

	p.SetExclusiveMarker(appearance.MarkerGroupUIMode, string(appearance.ModePro))
	if Dense() {
		t.Error("Dense() = true in pro mode, want false")
	}
	p.SetExclusiveMarker(appearance.MarkerGroupUIMode, string(appearance.ModeLite))
	if !Dense() {
		t.Error("Dense() = false in lite mode, want true")
	}
}

func TestNoColorBlanksStyles(t *testing.T) {
	resetSurface(t)
	p := Projector()

	p.SetNoColor(true)
	if got := p.color(appearance.VarPrimary); got != "" {
		t.Errorf("color(%s) = %q with no-color, want empty", appearance.VarPrimary, got)
	}
	p.SetNoColor(false)
	if got := p.color(appearance.VarPrimary); got == "" {
		t.Errorf("color(%s) = empty with color on, want a value", appearance.VarPrimary)
	}
}

func TestGradientPreviewRendersStops(t *testing.T) {
	resetSurface(t)
	out := GradientPreview(appearance.Gradient{From: "#111111", Via: "#222222", To: "#333333"})
	if out == "" {
		t.Error("GradientPreview returned empty output")
	}
}
