package appearance

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// ThemeController owns the active color theme. It validates candidates
// against the catalog and the caller's entitlement, persists explicit
// selections, and projects the resolved palette onto the surface.
type ThemeController struct {
	store     Store
	projector StyleProjector
	logger    *log.Logger
	current   ThemeDefinition
}

func NewThemeController(store Store, projector StyleProjector, logger *log.Logger) *ThemeController {
	return &ThemeController{store: store, projector: projector, logger: silentIfNil(logger)}
}

// Initialize resolves the persisted theme and projects it. Resolution is
// total: an absent, unknown, or unauthorized value falls back to the
// default theme. The fallback is not written back to the store, so a
// premium selection survives an entitlement lapse and is restored when
// premium returns.
func (c *ThemeController) Initialize(premium bool) ThemeDefinition {
	persisted, ok := c.store.Get(themeKey)
	c.current = resolveTheme(persisted, ok, premium)
	if ok && c.current.ID != persisted {
		c.logger.Debug("persisted theme not applicable, using default",
			"persisted", persisted, "active", c.current.ID)
	}
	c.apply()
	return c.current
}

func resolveTheme(persisted string, ok bool, premium bool) ThemeDefinition {
	if !ok {
		return defaultTheme()
	}
	def, found := Find(persisted)
	if !found {
		return defaultTheme()
	}
	if def.PremiumOnly && !premium {
		return defaultTheme()
	}
	return def
}

// Set switches to the theme with the given id. The UI hides locked entries
// from non-premium users, but gating is enforced here again regardless.
func (c *ThemeController) Set(id string, premium bool) (ThemeDefinition, error) {
	def, found := Find(id)
	if !found {
		return ThemeDefinition{}, fmt.Errorf("theme %q: %w", id, ErrUnknownTheme)
	}
	if def.PremiumOnly && !premium {
		return ThemeDefinition{}, fmt.Errorf("theme %q: %w", id, ErrLockedTheme)
	}

	if err := c.store.Set(themeKey, id); err != nil {
		c.logger.Debug("theme selection not persisted", "theme", id, "error", err)
	}
	c.current = def
	c.apply()
	return def, nil
}

// Current returns the active theme definition.
func (c *ThemeController) Current() ThemeDefinition {
	return c.current
}

// apply writes every palette role of the active theme before returning.
// All themes share one variable name set, so nothing from a previously
// active theme can linger.
func (c *ThemeController) apply() {
	variables := c.current.Palette.Variables()
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.projector.SetVariable(name, variables[name])
	}
}
