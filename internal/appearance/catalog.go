// Package appearance owns the persisted presentation state of the client:
// color theme, UI density mode, and language. Each axis is resolved from
// the preference store at startup, validated, and projected onto the
// rendering surface through a StyleProjector.
package appearance

import "sort"

// Gradient holds the three decorative stops shown on theme preview cards.
type Gradient struct {
	From string
	Via  string
	To   string
}

// Palette defines the named color roles of a theme.
type Palette struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Surface    string
	Text       string
	Muted      string
	Border     string
	Success    string
	Warning    string
	Error      string
}

// ThemeDefinition describes one selectable color theme.
type ThemeDefinition struct {
	ID          string
	DisplayName string
	Preview     Gradient
	PremiumOnly bool
	Palette     Palette
}

// DefaultThemeID always resolves in the catalog and is never premium-only.
const DefaultThemeID = "dark"

// Style variable names written by theme projection, one per palette role.
const (
	VarPrimary    = "color-primary"
	VarSecondary  = "color-secondary"
	VarAccent     = "color-accent"
	VarBackground = "color-background"
	VarSurface    = "color-surface"
	VarText       = "color-text"
	VarMuted      = "color-muted"
	VarBorder     = "color-border"
	VarSuccess    = "color-success"
	VarWarning    = "color-warning"
	VarError      = "color-error"
)

// Variables returns the full style variable set for the palette. Every
// theme writes the same variable names, so applying a theme always
// overwrites the previous one completely.
func (p Palette) Variables() map[string]string {
	return map[string]string{
		VarPrimary:    p.Primary,
		VarSecondary:  p.Secondary,
		VarAccent:     p.Accent,
		VarBackground: p.Background,
		VarSurface:    p.Surface,
		VarText:       p.Text,
		VarMuted:      p.Muted,
		VarBorder:     p.Border,
		VarSuccess:    p.Success,
		VarWarning:    p.Warning,
		VarError:      p.Error,
	}
}

// Themes returns the catalog in display order.
func Themes() []ThemeDefinition {
	out := make([]ThemeDefinition, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks up a theme by id. Absence is a normal outcome.
func Find(id string) (ThemeDefinition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return ThemeDefinition{}, false
}

// ThemeIDs returns all catalog ids sorted alphabetically.
func ThemeIDs() []string {
	ids := make([]string, 0, len(catalog))
	for _, def := range catalog {
		ids = append(ids, def.ID)
	}
	sort.Strings(ids)
	return ids
}

func defaultTheme() ThemeDefinition {
	def, ok := Find(DefaultThemeID)
	if !ok {
		panic("appearance: default theme missing from catalog")
	}
	return def
}
