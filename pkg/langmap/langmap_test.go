package langmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_OverrideBeatsCountryDefault(t *testing.T) {
	table := New(
		map[string]Override{"IN-TN": {Language: "Tamil"}},
		map[string]string{"IN": "Hindi"},
	)

	lang, source := table.Resolve("IN-TN", "IN")
	if lang != "Tamil" {
		t.Errorf("Resolve(IN-TN) = %q, want Tamil (override must beat country default)", lang)
	}
	if source != SourceAdminOverride {
		t.Errorf("Resolve(IN-TN) source = %v, want SourceAdminOverride", source)
	}
}

func TestResolve_CountryDefault(t *testing.T) {
	table := New(
		map[string]Override{"IN-TN": {Language: "Tamil"}},
		map[string]string{"IN": "Hindi", "FR": "French"},
	)

	tests := []struct {
		key, country string
		wantLang     string
		wantSource   Source
	}{
		{"IN-UP2", "IN", "Hindi", SourceCountryDefault}, // no override for this key
		{"", "FR", "French", SourceCountryDefault},      // synthesized keys never match overrides
		{"FR-IDF", "FR", "French", SourceCountryDefault},
	}

	for _, tt := range tests {
		lang, source := table.Resolve(tt.key, tt.country)
		if lang != tt.wantLang || source != tt.wantSource {
			t.Errorf("Resolve(%q, %q) = (%q, %v), want (%q, %v)",
				tt.key, tt.country, lang, source, tt.wantLang, tt.wantSource)
		}
	}
}

func TestResolve_NoData(t *testing.T) {
	table := New(nil, map[string]string{"FR": "French"})

	lang, source := table.Resolve("AQ-01", "AQ")
	if lang != "" {
		t.Errorf("Resolve(AQ-01) = %q, want empty", lang)
	}
	if source != SourceNone {
		t.Errorf("Resolve(AQ-01) source = %v, want SourceNone", source)
	}
}

func TestResolve_EmptyInputs(t *testing.T) {
	table := New(
		map[string]Override{"": {Language: "should-never-match"}},
		map[string]string{},
	)

	// An empty region key must not match anything, even a pathological
	// empty-string table entry.
	if lang, _ := table.Resolve("", ""); lang != "" {
		t.Errorf("Resolve(\"\", \"\") = %q, want empty", lang)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	admin1Path := filepath.Join(dir, "admin1.json")
	countryPath := filepath.Join(dir, "country.json")

	admin1JSON := `{
		"SN-ZG": {"language": "Jola", "note": "Ziguinchor/Casamance"},
		"IN-TN": {"language": "Tamil"}
	}`
	countryJSON := `{"SN": "Wolof", "IN": "Hindi"}`

	if err := os.WriteFile(admin1Path, []byte(admin1JSON), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(countryPath, []byte(countryJSON), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(admin1Path, countryPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if table.AdminOverrides() != 2 || table.CountryDefaults() != 2 {
		t.Errorf("table sizes = (%d, %d), want (2, 2)",
			table.AdminOverrides(), table.CountryDefaults())
	}

	if lang, _ := table.Resolve("SN-ZG", "SN"); lang != "Jola" {
		t.Errorf("Resolve(SN-ZG) = %q, want Jola", lang)
	}
	if note := table.Note("SN-ZG"); note != "Ziguinchor/Casamance" {
		t.Errorf("Note(SN-ZG) = %q", note)
	}
	if note := table.Note("IN-TN"); note != "" {
		t.Errorf("Note(IN-TN) = %q, want empty", note)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Load() with missing files should fail")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(bad, good); err == nil {
		t.Error("Load() with malformed admin1 table should fail")
	}
	if _, err := Load(good, bad); err == nil {
		t.Error("Load() with malformed country table should fail")
	}
}
