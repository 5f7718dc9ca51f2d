// Package ui renders the terminal surface of spaarctl. It implements the
// appearance.StyleProjector contract: projected style variables and
// exclusive markers are the only way presentation state reaches the
// styles in this package.
package ui

import (
	"sync"

	"github.com/spaarbot/spaarctl/internal/appearance"
)

// Surface is the production rendering target. It records the projected
// variable set and marker groups and regenerates the package style set on
// every write, so styles always reflect the last full application.
type Surface struct {
	mu        sync.RWMutex
	variables map[string]string
	markers   map[string]string
	noColor   bool
}

var surface = newSurface()

func newSurface() *Surface {
	s := &Surface{
		variables: map[string]string{},
		markers:   map[string]string{},
	}
	if def, ok := appearance.Find(appearance.DefaultThemeID); ok {
		for name, value := range def.Palette.Variables() {
			s.variables[name] = value
		}
	}
	return s
}

// Projector returns the process-wide rendering surface.
func Projector() *Surface {
	return surface
}

// SetVariable stores one named style property, replacing any prior value.
func (s *Surface) SetVariable(name, value string) {
	s.mu.Lock()
	s.variables[name] = value
	s.mu.Unlock()
	rebuildStyles()
}

// SetExclusiveMarker activates value within group, displacing the previous
// marker of that group.
func (s *Surface) SetExclusiveMarker(group, value string) {
	s.mu.Lock()
	s.markers[group] = value
	s.mu.Unlock()
	rebuildStyles()
}

// SetNoColor switches the surface to monochrome output.
func (s *Surface) SetNoColor(disabled bool) {
	s.mu.Lock()
	s.noColor = disabled
	s.mu.Unlock()
	rebuildStyles()
}

// Variable returns the current value of a style variable.
func (s *Surface) Variable(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.variables[name]
	return value, ok
}

// Marker returns the active value of a marker group, or "" if none.
func (s *Surface) Marker(group string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.markers[group]
}

func (s *Surface) color(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.noColor {
		return ""
	}
	return s.variables[name]
}

// Dense reports whether the lite display mode is active. Lite collapses
// vertical spacing the same way the dense flag did.
func Dense() bool {
	return surface.Marker(appearance.MarkerGroupUIMode) == string(appearance.ModeLite)
}
