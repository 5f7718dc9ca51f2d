package appearance

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// LanguageController owns the active language code and exposes translation
// lookups over host-supplied tables. The controller does not load tables
// itself; see internal/i18n for the embedded catalogs.
type LanguageController struct {
	store       Store
	projector   StyleProjector
	logger      *log.Logger
	tables      map[string]map[string]string
	defaultCode string
	current     string
}

func NewLanguageController(store Store, projector StyleProjector, logger *log.Logger, defaultCode string, tables map[string]map[string]string) (*LanguageController, error) {
	if _, ok := tables[defaultCode]; !ok {
		return nil, fmt.Errorf("default language %q has no translation table", defaultCode)
	}
	return &LanguageController{
		store:       store,
		projector:   projector,
		logger:      silentIfNil(logger),
		tables:      tables,
		defaultCode: defaultCode,
	}, nil
}

// Initialize resolves the persisted language code and projects it. Codes
// without a translation table fall back to the default code.
func (c *LanguageController) Initialize() string {
	c.current = c.defaultCode
	if persisted, ok := c.store.Get(languageKey); ok {
		if _, supported := c.tables[persisted]; supported {
			c.current = persisted
		} else {
			c.logger.Debug("persisted language unsupported, using default",
				"persisted", persisted, "active", c.current)
		}
	}
	c.apply()
	return c.current
}

// Set switches the active language.
func (c *LanguageController) Set(code string) (string, error) {
	if _, supported := c.tables[code]; !supported {
		return c.current, fmt.Errorf("language %q: %w", code, ErrUnsupportedLanguage)
	}
	if err := c.store.Set(languageKey, code); err != nil {
		c.logger.Debug("language selection not persisted", "language", code, "error", err)
	}
	c.current = code
	c.apply()
	return code, nil
}

// Current returns the active language code.
func (c *LanguageController) Current() string {
	return c.current
}

// SupportedCodes returns every code with a translation table, sorted.
func (c *LanguageController) SupportedCodes() []string {
	codes := make([]string, 0, len(c.tables))
	for code := range c.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Translate resolves key against the active language, then the default
// language, and finally returns the key itself. A missing translation is
// rendered literally so it stays visible and debuggable.
func (c *LanguageController) Translate(key string) string {
	if value, ok := c.tables[c.current][key]; ok {
		return value
	}
	if value, ok := c.tables[c.defaultCode][key]; ok {
		return value
	}
	return key
}

func (c *LanguageController) apply() {
	c.projector.SetExclusiveMarker(MarkerGroupLanguage, c.current)
}
