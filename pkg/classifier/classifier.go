// Package classifier assigns each admin1 region a discrete tier describing
// how well LLMs serve the region's primary spoken language.
package classifier

import (
	"github.com/home-economics/language-atlas/models"
	"github.com/home-economics/language-atlas/pkg/benchmark"
	"github.com/home-economics/language-atlas/pkg/langmap"
)

// Default tier cutoffs on the benchmark's normalized average scores.
const (
	DefaultTier1Cutoff = 0.65 // well served
	DefaultTier2Cutoff = 0.50 // partially served; below is poorly served
)

// Stats counts how each region's language was resolved and scored across
// one pass. The counters are observational: they are printed at the end of
// a run so a human can sanity-check the knowledge base, and nothing in the
// pipeline reads them back.
type Stats struct {
	AdminOverride  int `yaml:"admin1_override"`
	CountryDefault int `yaml:"country_default"`
	NotInBenchmark int `yaml:"not_in_benchmark"`
	ZeroScore      int `yaml:"zero_score"`
	NoLanguage     int `yaml:"no_language"`
}

// Classifier maps regions to classifications. It holds no cross-region
// state beyond the stats counters.
type Classifier struct {
	languages *langmap.Table
	scores    *benchmark.Table
	tier1     float64
	tier2     float64
	stats     Stats
}

// New builds a Classifier with the default cutoffs.
func New(languages *langmap.Table, scores *benchmark.Table) *Classifier {
	return &Classifier{
		languages: languages,
		scores:    scores,
		tier1:     DefaultTier1Cutoff,
		tier2:     DefaultTier2Cutoff,
	}
}

// SetCutoffs overrides the tier boundaries.
func (c *Classifier) SetCutoffs(tier1, tier2 float64) {
	c.tier1 = tier1
	c.tier2 = tier2
}

// Classify produces exactly one Classification for a region.
func (c *Classifier) Classify(r models.Region) models.Classification {
	cl := models.Classification{Key: r.Key, Name: r.Name, Country: r.Country}

	language, source := c.languages.Resolve(r.Key, r.CountryCode)
	if language == "" {
		// No language data at all. Distinct from "known but unscored":
		// score and tier stay nil so the region renders as no-data.
		c.stats.NoLanguage++
		return cl
	}
	cl.Language = language

	switch source {
	case langmap.SourceAdminOverride:
		c.stats.AdminOverride++
	case langmap.SourceCountryDefault:
		c.stats.CountryDefault++
	}

	score, ok := c.scores.ScoreFor(language)
	if !ok {
		// The language was never benchmarked. That IS the data point: this
		// region's home language is maximally poorly served. Re-scoring it
		// with the country's dominant language would systematically
		// understate how many people LLMs leave behind.
		cl.Score = ptrFloat(0.0)
		cl.Tier = ptrInt(models.TierPoorlyServed)
		c.stats.NotInBenchmark++
		return cl
	}

	if score == 0 {
		c.stats.ZeroScore++
	}

	tier := models.TierPoorlyServed
	switch {
	case score >= c.tier1:
		tier = models.TierWellServed
	case score >= c.tier2:
		tier = models.TierPartiallyServed
	}
	cl.Score = ptrFloat(score)
	cl.Tier = ptrInt(tier)
	return cl
}

// ClassifyAll classifies every region exactly once and returns the result
// keyed by region key.
func (c *Classifier) ClassifyAll(regions []models.Region) map[string]models.Classification {
	result := make(map[string]models.Classification, len(regions))
	for _, r := range regions {
		result[r.Key] = c.Classify(r)
	}
	return result
}

// Stats returns the counters accumulated so far.
func (c *Classifier) Stats() Stats {
	return c.stats
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
