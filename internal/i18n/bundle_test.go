package i18n

import (
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"de", "en", "ru", "uk"}
	if got := b.Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
	if !b.Has(DefaultCode) {
		t.Errorf("Has(%q) = false, want true", DefaultCode)
	}
}

func TestEmbeddedCatalogsShareKeys(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tables := b.Tables()
	base := tables[DefaultCode]
	for code, table := range tables {
		if code == DefaultCode {
			continue
		}
		for key := range table {
			if _, ok := base[key]; !ok {
				t.Errorf("catalog %q has key %q missing from the %q catalog", code, key, DefaultCode)
			}
		}
	}
}

func catalogYAML(code string, messages map[string]string) []byte {
	var sb strings.Builder
	sb.WriteString("code: \"" + code + "\"\nmessages:\n")
	for key, value := range messages {
		sb.WriteString("  " + key + ": \"" + value + "\"\n")
	}
	return []byte(sb.String())
}

func TestLoadFSValidation(t *testing.T) {
	valid := catalogYAML("de", map[string]string{"app.title": "SpaarBot"})

	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name:    "no catalogs",
			fsys:    fstest.MapFS{},
			wantErr: "no locale catalogs",
		},
		{
			name: "code filename mismatch",
			fsys: fstest.MapFS{
				"locales/de.yaml": {Data: valid},
				"locales/en.yaml": {Data: catalogYAML("fr", map[string]string{"app.title": "SpaarBot"})},
			},
			wantErr: "must match filename",
		},
		{
			name: "invalid language code",
			fsys: fstest.MapFS{
				"locales/de.yaml":   {Data: valid},
				"locales/!!!!.yaml": {Data: catalogYAML("!!!!", map[string]string{"app.title": "x"})},
			},
			wantErr: "invalid language code",
		},
		{
			name: "empty messages",
			fsys: fstest.MapFS{
				"locales/de.yaml": {Data: []byte("code: de\nmessages: {}\n")},
			},
			wantErr: "messages map is required",
		},
		{
			name: "missing default language",
			fsys: fstest.MapFS{
				"locales/en.yaml": {Data: catalogYAML("en", map[string]string{"app.title": "SpaarBot"})},
			},
			wantErr: "default language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys)
			if err == nil {
				t.Fatal("LoadFS succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFS error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFSValid(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/de.yaml": {Data: catalogYAML("de", map[string]string{"app.title": "SpaarBot"})},
		"locales/uk.yaml": {Data: catalogYAML("uk", map[string]string{"app.title": "SpaarBot"})},
	}
	b, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if got := b.Codes(); !reflect.DeepEqual(got, []string{"de", "uk"}) {
		t.Errorf("Codes() = %v, want [de uk]", got)
	}
}

func TestTablesReturnsCopies(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tables := b.Tables()
	tables[DefaultCode]["app.title"] = "mutated"

	fresh := b.Tables()
	if fresh[DefaultCode]["app.title"] == "mutated" {
		t.Error("Tables() exposes internal state; mutation leaked through")
	}
}
