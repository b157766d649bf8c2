// Package models defines the shared data structures for the classification pipeline.
package models

// Region is one first-level administrative subdivision read from the
// geometry source. The polygon itself stays in pkg/geodata; the classifier
// only sees these identity fields.
type Region struct {
	// Key is the ISO 3166-2 code when the source carries one, otherwise
	// the synthesized fallback "<country code>-<name>".
	Key         string
	Name        string
	CountryCode string // 2-letter ISO 3166-1 alpha-2
	Country     string // country display name, falls back to the country code
}
