package artifact

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/home-economics/language-atlas/models"
	"github.com/home-economics/language-atlas/pkg/classifier"
)

// TierCounts is the tier distribution across one run.
type TierCounts struct {
	Tier1  int `yaml:"tier1"`
	Tier2  int `yaml:"tier2"`
	Tier3  int `yaml:"tier3"`
	NoTier int `yaml:"no_tier"`
}

// CountTiers tallies the tier distribution of a result set.
func CountTiers(result map[string]models.Classification) TierCounts {
	var counts TierCounts
	for _, cl := range result {
		switch {
		case cl.Tier == nil:
			counts.NoTier++
		case *cl.Tier == models.TierWellServed:
			counts.Tier1++
		case *cl.Tier == models.TierPartiallyServed:
			counts.Tier2++
		default:
			counts.Tier3++
		}
	}
	return counts
}

// MultiTierCountries returns, sorted, the countries whose regions span more
// than one tier. These are the places where the admin1 overrides actually
// change the picture, so they are the first thing to eyeball after a run.
func MultiTierCountries(result map[string]models.Classification) []string {
	tiersByCountry := map[string]map[int]bool{}
	for _, cl := range result {
		if cl.Tier == nil {
			continue
		}
		if tiersByCountry[cl.Country] == nil {
			tiersByCountry[cl.Country] = map[int]bool{}
		}
		tiersByCountry[cl.Country][*cl.Tier] = true
	}

	var multi []string
	for country, tiers := range tiersByCountry {
		if len(tiers) > 1 {
			multi = append(multi, country)
		}
	}
	sort.Strings(multi)
	return multi
}

// scoreDistribution summarizes the real (positive) scores of a result set.
func scoreDistribution(result map[string]models.Classification) (min, max, median float64, n int) {
	var scores []float64
	for _, cl := range result {
		if cl.Score != nil && *cl.Score > 0 {
			scores = append(scores, *cl.Score)
		}
	}
	if len(scores) == 0 {
		return 0, 0, 0, 0
	}
	sort.Float64s(scores)
	return scores[0], scores[len(scores)-1], scores[len(scores)/2], len(scores)
}

// PrintSummary prints the human-readable QA report for a run: region and
// counter totals, the tier distribution, the countries with internal tier
// variation, and the score distribution.
func PrintSummary(result map[string]models.Classification, stats classifier.Stats) {
	fmt.Printf("\n=== STATS ===\n")
	fmt.Printf("  Admin-1 overrides:       %d\n", stats.AdminOverride)
	fmt.Printf("  Country language:        %d\n", stats.CountryDefault)
	fmt.Printf("  Not in benchmark:        %d (→ Tier 3)\n", stats.NotInBenchmark)
	fmt.Printf("  Zero score:              %d (→ Tier 3)\n", stats.ZeroScore)
	fmt.Printf("  No language data:        %d (→ grey)\n", stats.NoLanguage)

	counts := CountTiers(result)
	total := len(result)
	if total > 0 {
		fmt.Printf("  Tier 1: %d (%.0f%%)\n", counts.Tier1, float64(counts.Tier1)/float64(total)*100)
		fmt.Printf("  Tier 2: %d (%.0f%%)\n", counts.Tier2, float64(counts.Tier2)/float64(total)*100)
		fmt.Printf("  Tier 3: %d (%.0f%%)\n", counts.Tier3, float64(counts.Tier3)/float64(total)*100)
		fmt.Printf("  No tier: %d\n", counts.NoTier)
	}

	multi := MultiTierCountries(result)
	fmt.Printf("\nCountries with internal tier variation: %d\n", len(multi))
	for _, country := range multi {
		fmt.Printf("  %s\n", country)
	}

	if min, max, median, n := scoreDistribution(result); n > 0 {
		fmt.Printf("\nScore distribution (%d regions with real scores):\n", n)
		fmt.Printf("  Min:    %.3f\n", min)
		fmt.Printf("  Max:    %.3f\n", max)
		fmt.Printf("  Median: %.3f\n", median)
	}
}

// RunSummary is the YAML artifact mirroring the printed report, written per
// run so QA numbers can be diffed between knowledge-base edits.
type RunSummary struct {
	Regions            int              `yaml:"regions"`
	Tiers              TierCounts       `yaml:"tiers"`
	Stats              classifier.Stats `yaml:"stats"`
	MultiTierCountries []string         `yaml:"multi_tier_countries"`
}

// BuildRunSummary assembles the YAML summary for a result set.
func BuildRunSummary(result map[string]models.Classification, stats classifier.Stats) RunSummary {
	return RunSummary{
		Regions:            len(result),
		Tiers:              CountTiers(result),
		Stats:              stats,
		MultiTierCountries: MultiTierCountries(result),
	}
}

// WriteRunSummary writes the YAML summary to path.
func WriteRunSummary(summary RunSummary, path string) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}
	return nil
}
