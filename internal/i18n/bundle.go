// Package i18n loads the embedded translation catalogs. One YAML file per
// language code lives under locales/; the engine consumes the tables
// through appearance.Options.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultCode is the product's base language; its catalog must exist.
const DefaultCode = "de"

//go:embed locales/*.yaml
var localeFS embed.FS

type catalogFile struct {
	Code     string            `yaml:"code"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds one translation table per supported language code.
type Bundle struct {
	tables map[string]map[string]string
}

// Load reads the catalogs embedded in this package.
func Load() (*Bundle, error) {
	return LoadFS(localeFS)
}

// LoadFS reads locale catalogs from fsys. Each file must declare the code
// matching its filename and at least one message.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("globbing locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	bundle := &Bundle{tables: map[string]map[string]string{}}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
		}
		if err := bundle.add(path, file); err != nil {
			return nil, err
		}
	}

	if !bundle.Has(DefaultCode) {
		return nil, fmt.Errorf("default language %q is not defined in catalogs", DefaultCode)
	}
	return bundle, nil
}

func (b *Bundle) add(path string, file catalogFile) error {
	code := strings.TrimSpace(file.Code)
	if code == "" {
		return fmt.Errorf("catalog %s: code is required", path)
	}
	if fromPath := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)); code != fromPath {
		return fmt.Errorf("catalog %s: code %q must match filename code %q", path, code, fromPath)
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("catalog %s: invalid language code %q: %w", path, code, err)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", path)
	}
	if _, exists := b.tables[code]; exists {
		return fmt.Errorf("catalog %s: code %q already defined", path, code)
	}

	table := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		table[trimmed] = value
	}
	b.tables[code] = table
	return nil
}

// Has reports whether a catalog exists for code.
func (b *Bundle) Has(code string) bool {
	_, ok := b.tables[code]
	return ok
}

// Codes returns the supported language codes, sorted.
func (b *Bundle) Codes() []string {
	codes := make([]string, 0, len(b.tables))
	for code := range b.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Tables returns a copy of every translation table, keyed by code.
func (b *Bundle) Tables() map[string]map[string]string {
	out := make(map[string]map[string]string, len(b.tables))
	for code, table := range b.tables {
		copied := make(map[string]string, len(table))
		for key, value := range table {
			copied[key] = value
		}
		out[code] = copied
	}
	return out
}
