package appearance

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// UIMode is the density mode of the client. The value set is closed.
type UIMode string

const (
	ModePro  UIMode = "pro"
	ModeLite UIMode = "lite"
)

// DefaultUIMode is used when no valid mode has been persisted.
const DefaultUIMode = ModePro

// Valid reports membership in the closed mode set.
func (m UIMode) Valid() bool {
	return m == ModePro || m == ModeLite
}

// UIModes returns the selectable modes in display order.
func UIModes() []UIMode {
	return []UIMode{ModePro, ModeLite}
}

// UIModeController owns the active density mode. Projection is a single
// exclusive marker: activating one mode always deactivates the other.
type UIModeController struct {
	store     Store
	projector StyleProjector
	logger    *log.Logger
	current   UIMode
}

func NewUIModeController(store Store, projector StyleProjector, logger *log.Logger) *UIModeController {
	return &UIModeController{store: store, projector: projector, logger: silentIfNil(logger)}
}

// Initialize resolves the persisted mode and projects it. Anything other
// than an exact member of the mode set falls back to the default.
func (c *UIModeController) Initialize() UIMode {
	c.current = DefaultUIMode
	if persisted, ok := c.store.Get(uiModeKey); ok {
		if mode := UIMode(persisted); mode.Valid() {
			c.current = mode
		} else {
			c.logger.Debug("persisted ui mode invalid, using default",
				"persisted", persisted, "active", c.current)
		}
	}
	c.apply()
	return c.current
}

// Set switches the density mode.
func (c *UIModeController) Set(mode UIMode) (UIMode, error) {
	if !mode.Valid() {
		return c.current, fmt.Errorf("ui mode %q: %w", string(mode), ErrInvalidMode)
	}
	if err := c.store.Set(uiModeKey, string(mode)); err != nil {
		c.logger.Debug("ui mode selection not persisted", "mode", mode, "error", err)
	}
	c.current = mode
	c.apply()
	return mode, nil
}

// Current returns the active mode.
func (c *UIModeController) Current() UIMode {
	return c.current
}

func (c *UIModeController) apply() {
	c.projector.SetExclusiveMarker(MarkerGroupUIMode, string(c.current))
}
