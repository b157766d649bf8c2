// Package benchmark builds the language-name → score lookup from a
// LanguageBench results dump.
package benchmark

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// Record is one row of the benchmark dump. Average is the pre-computed
// normalized score in [0,1]; null means the language appears in the
// benchmark metadata but was never scored.
type Record struct {
	BCP47        string   `json:"bcp_47"`
	LanguageName string   `json:"language_name"`
	Average      *float64 `json:"average"`
}

// Table answers "what score did this language get" for the colloquial
// language names used by the knowledge base.
type Table struct {
	nameToBCP map[string]string  // curated common name → BCP-47, case-sensitive
	scores    map[string]float64 // BCP-47 → average score
	records   []Record           // full dump, for the fallback name scan
}

// New builds a Table from in-memory data.
func New(records []Record, nameToBCP map[string]string) *Table {
	if nameToBCP == nil {
		nameToBCP = map[string]string{}
	}
	scores := make(map[string]float64, len(records))
	for _, r := range records {
		if r.Average != nil {
			scores[r.BCP47] = *r.Average
		}
	}
	return &Table{nameToBCP: nameToBCP, scores: scores, records: records}
}

// Load reads the benchmark dump and the curated name table from disk.
func Load(dumpPath, namePath string) (*Table, error) {
	dumpData, err := os.ReadFile(dumpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark dump %s: %w", dumpPath, err)
	}
	var records []Record
	if err := json.Unmarshal(dumpData, &records); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark dump %s: %w", dumpPath, err)
	}

	nameData, err := os.ReadFile(namePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read name table %s: %w", namePath, err)
	}
	nameToBCP := map[string]string{}
	if err := json.Unmarshal(nameData, &nameToBCP); err != nil {
		return nil, fmt.Errorf("failed to parse name table %s: %w", namePath, err)
	}

	return New(records, nameToBCP), nil
}

// ScoreFor returns the benchmark score for a language by its common name.
// The curated name table is tried first (it maps colloquial names like
// "Mandarin" onto the benchmark's codes); failing that, the dump metadata is
// scanned for a case-insensitive exact match on the display name. The second
// return is false when the language is not in the benchmark at all.
// A score of 0.0 is a real score — zero-scored languages ARE poorly served.
func (t *Table) ScoreFor(languageName string) (float64, bool) {
	if bcp, ok := t.nameToBCP[languageName]; ok {
		if score, ok := t.scores[bcp]; ok {
			return round3(score), true
		}
	}
	for _, r := range t.records {
		if strings.EqualFold(r.LanguageName, languageName) {
			if score, ok := t.scores[r.BCP47]; ok {
				return round3(score), true
			}
		}
	}
	return 0, false
}

// NamesByCode returns the BCP-47 → display name mapping from the dump
// metadata, including languages with no score.
func (t *Table) NamesByCode() map[string]string {
	names := make(map[string]string, len(t.records))
	for _, r := range t.records {
		if r.LanguageName != "" {
			names[r.BCP47] = r.LanguageName
		}
	}
	return names
}

// Scored returns the number of languages with a real score.
func (t *Table) Scored() int { return len(t.scores) }

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
