// Package artifact serializes the classification results: the flat JSON
// score map, the augmented geometry collection, a YAML run summary, and the
// printed QA report.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/home-economics/language-atlas/models"
	"github.com/home-economics/language-atlas/pkg/geodata"
)

// entry is the flat JSON shape consumed by downstream rendering.
type entry struct {
	Name     string   `json:"name"`
	Country  string   `json:"country"`
	Language string   `json:"language"`
	Score    *float64 `json:"score"`
	Tier     *int     `json:"tier"`
}

func toEntry(cl models.Classification) entry {
	language := cl.Language
	if language == "" {
		language = "Unknown"
	}
	return entry{
		Name:     cl.Name,
		Country:  cl.Country,
		Language: language,
		Score:    cl.Score,
		Tier:     cl.Tier,
	}
}

// MarshalScores renders the canonical flat JSON document keyed by region.
// Map keys marshal sorted, so identical inputs give byte-identical output.
func MarshalScores(result map[string]models.Classification) ([]byte, error) {
	out := make(map[string]entry, len(result))
	for key, cl := range result {
		out[key] = toEntry(cl)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scores: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteScores writes the flat JSON score map to path.
func WriteScores(result map[string]models.Classification, path string) error {
	data, err := MarshalScores(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scores: %w", err)
	}
	return nil
}

// WriteGeometry writes the augmented geometry collection to path and
// returns the file size in bytes.
func WriteGeometry(col *geodata.Collection, path string) (int64, error) {
	data, err := col.Marshal()
	if err != nil {
		return 0, fmt.Errorf("failed to marshal geometry: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write geometry: %w", err)
	}
	return int64(len(data)), nil
}
