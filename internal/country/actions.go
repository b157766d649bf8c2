// Package country builds the speaker-weighted country-level scores.
package country

import (
	"fmt"
	"log"

	"github.com/urfave/cli/v2"

	"github.com/home-economics/language-atlas/models"
	"github.com/home-economics/language-atlas/pkg/benchmark"
	"github.com/home-economics/language-atlas/pkg/countryscore"
)

// Action computes country scores from the raw results dump and the
// language-speaking-population table and writes country_scores.json.
func Action(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	results, err := countryscore.LoadResults(cfg.Results)
	if err != nil {
		return err
	}
	population, err := countryscore.LoadPopulation(cfg.Population)
	if err != nil {
		return err
	}

	// Display names for the per-country language detail come from the
	// benchmark dump when one is available; the codes work without it.
	nameByCode := map[string]string{}
	if table, err := benchmark.Load(cfg.Benchmark, cfg.NameTable); err == nil {
		nameByCode = table.NamesByCode()
	} else {
		log.Printf("benchmark table unavailable, using codes as names: %v", err)
	}

	scores := countryscore.Build(results, population, nameByCode)
	if err := countryscore.Write(scores, cfg.CountryScoresOut); err != nil {
		return err
	}

	log.Printf("Country scores computed for %d countries", len(scores))

	// Spot checks, same set a human reviews after every refresh.
	for _, cc := range []string{"KZ", "IN", "NG", "US", "FR", "ET"} {
		if cs, ok := scores[cc]; ok {
			fmt.Printf("  %s: score=%.3f coverage=%.1f%%\n", cc, cs.Score, cs.CoveragePct)
		}
	}

	log.Printf("Saved to %s", cfg.CountryScoresOut)
	return nil
}
