// Package langmap resolves an admin1 region to its primary spoken language.
//
// The mapping is a two-layer lookup: a curated admin1-level override table
// covering the linguistically heterogeneous countries (India, Nigeria, China,
// Russia, Indonesia, the Philippines and similar), and a country-level default
// table for everywhere else. Both layers assign the primary HOME language —
// not the official language, not the national lingua franca.
package langmap

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source identifies which table resolved a region's language.
type Source int

const (
	SourceNone Source = iota
	SourceAdminOverride
	SourceCountryDefault
)

func (s Source) String() string {
	switch s {
	case SourceAdminOverride:
		return "admin1_override"
	case SourceCountryDefault:
		return "country_default"
	default:
		return "none"
	}
}

// Override is one curated admin1 entry. Note carries the census/plurality
// rationale from the curation pass (speaker shares, "NOT in LB" markers) and
// is documentation only — the pipeline never interprets it.
type Override struct {
	Language string `json:"language"`
	Note     string `json:"note,omitempty"`
}

// Table is the loaded knowledge base. It is immutable after construction;
// lookups are pure functions with no I/O.
type Table struct {
	admin1  map[string]Override
	country map[string]string
}

// New builds a Table from in-memory maps. Nil maps are treated as empty.
func New(admin1 map[string]Override, country map[string]string) *Table {
	if admin1 == nil {
		admin1 = map[string]Override{}
	}
	if country == nil {
		country = map[string]string{}
	}
	return &Table{admin1: admin1, country: country}
}

// Load reads the two JSON tables from disk. The tables are the configuration
// artifact: editing them changes the knowledge base without touching code.
func Load(admin1Path, countryPath string) (*Table, error) {
	admin1 := map[string]Override{}
	if err := readJSON(admin1Path, &admin1); err != nil {
		return nil, fmt.Errorf("failed to load admin1 table: %w", err)
	}

	country := map[string]string{}
	if err := readJSON(countryPath, &country); err != nil {
		return nil, fmt.Errorf("failed to load country table: %w", err)
	}

	return New(admin1, country), nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Resolve returns the primary spoken language for a region, trying the
// admin1 override table first and the country default table second.
// An admin1 override always wins, even when the country default would
// resolve to a different language — the override exists precisely to
// correct the coarse default. Absence of data is a valid result, not an
// error: the language is empty and the source is SourceNone.
func (t *Table) Resolve(regionKey, countryCode string) (string, Source) {
	if regionKey != "" {
		if o, ok := t.admin1[regionKey]; ok {
			return o.Language, SourceAdminOverride
		}
	}
	if countryCode != "" {
		if lang, ok := t.country[countryCode]; ok {
			return lang, SourceCountryDefault
		}
	}
	return "", SourceNone
}

// Note returns the curation rationale for an admin1 override, if any.
func (t *Table) Note(regionKey string) string {
	return t.admin1[regionKey].Note
}

// AdminOverrides returns the number of admin1-level entries.
func (t *Table) AdminOverrides() int { return len(t.admin1) }

// CountryDefaults returns the number of country-level entries.
func (t *Table) CountryDefaults() int { return len(t.country) }
