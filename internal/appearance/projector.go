package appearance

// Marker groups written by the controllers. Within a group exactly one
// value is active at a time.
const (
	MarkerGroupUIMode   = "ui-mode"
	MarkerGroupLanguage = "language"
)

// StyleProjector is the global rendering surface the controllers write to.
// Both operations are synchronous and total: once a controller's apply step
// returns, every variable belonging to it has landed. The projector is the
// sole writer of the surface and each write is a full overwrite, so
// consecutive applications only need last-write-wins semantics.
type StyleProjector interface {
	// SetVariable sets one named global style property, replacing any
	// prior value under the same name.
	SetVariable(name, value string)

	// SetExclusiveMarker activates value within the named group and
	// deactivates whatever was active there before.
	SetExclusiveMarker(group, value string)
}

// Store persists one string entry per preference axis. Get reports absence
// with its second return; a failed read counts as absent. Set failures are
// tolerated by the controllers: the in-memory state and projection still
// advance, only durability is lost for that write.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Storage keys, one per axis. These are part of the persisted format and
// must stay stable across releases.
const (
	themeKey    = "appearance.theme"
	uiModeKey   = "appearance.ui_mode"
	languageKey = "appearance.language"
)
