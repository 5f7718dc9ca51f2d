package appearance

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

func silentIfNil(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// Selection is a snapshot of the resolved state of all three axes.
type Selection struct {
	ThemeID  string
	UIMode   UIMode
	Language string
}

// Options configures Start. Store and Projector are required. Premium is
// the entitlement at startup; setters take a fresh flag on every call.
type Options struct {
	Store     Store
	Projector StyleProjector

	// Premium gates premium-only themes during initial resolution.
	Premium bool

	// DefaultLanguage must have an entry in Translations.
	DefaultLanguage string

	// Translations maps language code to a key/message table.
	Translations map[string]map[string]string

	// Logger receives debug-level notes about fallbacks and lost writes.
	// Optional; defaults to a silent logger.
	Logger *log.Logger
}

// Session is the composition root of the presentation state. It wires the
// three controllers to one store and one projector and guarantees that all
// axes are resolved and projected before Start returns, so the first paint
// is fully themed.
type Session struct {
	theme  *ThemeController
	uiMode *UIModeController
	lang   *LanguageController
}

// Start constructs and initializes the session. Axes are independent, so
// initialization order does not affect the outcome.
func Start(opts Options) (*Session, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("start presentation session: store is required")
	}
	if opts.Projector == nil {
		return nil, fmt.Errorf("start presentation session: projector is required")
	}
	logger := silentIfNil(opts.Logger)

	lang, err := NewLanguageController(opts.Store, opts.Projector, logger, opts.DefaultLanguage, opts.Translations)
	if err != nil {
		return nil, fmt.Errorf("start presentation session: %w", err)
	}

	s := &Session{
		theme:  NewThemeController(opts.Store, opts.Projector, logger),
		uiMode: NewUIModeController(opts.Store, opts.Projector, logger),
		lang:   lang,
	}
	s.theme.Initialize(opts.Premium)
	s.uiMode.Initialize()
	s.lang.Initialize()
	return s, nil
}

// Selection returns the current state of all three axes.
func (s *Session) Selection() Selection {
	return Selection{
		ThemeID:  s.theme.Current().ID,
		UIMode:   s.uiMode.Current(),
		Language: s.lang.Current(),
	}
}

// SetTheme changes the active theme. The premium flag is supplied fresh by
// the host on every call; a purchase mid-session takes effect immediately.
func (s *Session) SetTheme(id string, premium bool) (ThemeDefinition, error) {
	return s.theme.Set(id, premium)
}

// SetUIMode changes the density mode.
func (s *Session) SetUIMode(mode UIMode) (UIMode, error) {
	return s.uiMode.Set(mode)
}

// SetLanguage changes the active language.
func (s *Session) SetLanguage(code string) (string, error) {
	return s.lang.Set(code)
}

// CurrentTheme returns the active theme definition.
func (s *Session) CurrentTheme() ThemeDefinition {
	return s.theme.Current()
}

// CurrentUIMode returns the active density mode.
func (s *Session) CurrentUIMode() UIMode {
	return s.uiMode.Current()
}

// CurrentLanguage returns the active language code.
func (s *Session) CurrentLanguage() string {
	return s.lang.Current()
}

// SupportedLanguages returns the selectable language codes, sorted.
func (s *Session) SupportedLanguages() []string {
	return s.lang.SupportedCodes()
}

// Translate resolves a message key in the active language.
func (s *Session) Translate(key string) string {
	return s.lang.Translate(key)
}
