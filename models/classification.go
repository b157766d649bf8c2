package models

// Tier buckets for how well LLMs serve a region's home language.
const (
	TierWellServed      = 1
	TierPartiallyServed = 2
	TierPoorlyServed    = 3
)

// Classification is the pipeline's output for a single region.
//
// Three data-quality states are kept distinguishable and never collapse
// into one another:
//   - language known and benchmarked: Score and Tier set from the benchmark
//   - language known but never benchmarked: Score = 0.0, Tier = 3
//   - no language data at all: Language empty, Score and Tier nil
type Classification struct {
	Key      string
	Name     string
	Country  string
	Language string   // empty when no language data exists for the region
	Score    *float64 // nil only when Language is empty
	Tier     *int     // nil only when Language is empty
}

// HasLanguage reports whether any language data exists for the region.
func (c Classification) HasLanguage() bool {
	return c.Language != ""
}
