// Package classify wires the classification pipeline to the CLI.
package classify

import (
	"fmt"
	"log"

	"github.com/urfave/cli/v2"

	"github.com/home-economics/language-atlas/models"
	"github.com/home-economics/language-atlas/pkg/artifact"
	"github.com/home-economics/language-atlas/pkg/benchmark"
	"github.com/home-economics/language-atlas/pkg/classifier"
	"github.com/home-economics/language-atlas/pkg/db"
	"github.com/home-economics/language-atlas/pkg/geodata"
	"github.com/home-economics/language-atlas/pkg/langmap"
)

// Action runs the full classification pass: load the three sources, classify
// every region, write both artifacts, print the QA summary, and record the
// run. Any unreadable input aborts the run; there is no partial output.
func Action(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	fmt.Println("--- Loading inputs ---")

	languages, err := langmap.Load(cfg.Admin1Table, cfg.CountryTable)
	if err != nil {
		return err
	}
	log.Printf("Admin1 language overrides: %d", languages.AdminOverrides())
	log.Printf("Country-level defaults: %d", languages.CountryDefaults())

	scores, err := benchmark.Load(cfg.Benchmark, cfg.NameTable)
	if err != nil {
		return err
	}
	log.Printf("Benchmark scores for %d languages", scores.Scored())

	collection, err := geodata.Load(cfg.Geometry)
	if err != nil {
		return err
	}
	regions := collection.Regions()
	log.Printf("%d admin-1 regions", len(regions))

	fmt.Println("--- Classifying ---")

	cls := classifier.New(languages, scores)
	cls.SetCutoffs(cfg.Tier1Cutoff, cfg.Tier2Cutoff)
	result := cls.ClassifyAll(regions)
	stats := cls.Stats()

	fmt.Println("--- Writing artifacts ---")

	if err := artifact.WriteScores(result, cfg.ScoresOut); err != nil {
		return err
	}
	log.Printf("Saved %d region mappings to %s", len(result), cfg.ScoresOut)

	collection.Inject(result)
	size, err := artifact.WriteGeometry(collection, cfg.GeometryOut)
	if err != nil {
		return err
	}
	log.Printf("Saved %s (%.1f MB)", cfg.GeometryOut, float64(size)/1e6)

	if cfg.RunSummaryOut != "" {
		summary := artifact.BuildRunSummary(result, stats)
		if err := artifact.WriteRunSummary(summary, cfg.RunSummaryOut); err != nil {
			return err
		}
		log.Printf("Saved run summary to %s", cfg.RunSummaryOut)
	}

	artifact.PrintSummary(result, stats)

	if cfg.DB != "" {
		if err := recordRun(cfg, result, stats); err != nil {
			return err
		}
	}

	return nil
}

func recordRun(cfg *models.Config, result map[string]models.Classification, stats classifier.Stats) error {
	store, err := db.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	counts := artifact.CountTiers(result)
	runID, err := store.InsertRun(db.Run{
		RegionCount:    len(result),
		Tier1Count:     counts.Tier1,
		Tier2Count:     counts.Tier2,
		Tier3Count:     counts.Tier3,
		NoTierCount:    counts.NoTier,
		AdminOverride:  stats.AdminOverride,
		CountryDefault: stats.CountryDefault,
		NotInBenchmark: stats.NotInBenchmark,
		ZeroScore:      stats.ZeroScore,
		NoLanguage:     stats.NoLanguage,
		ScoresPath:     cfg.ScoresOut,
		GeometryPath:   cfg.GeometryOut,
	})
	if err != nil {
		return err
	}
	log.Printf("Recorded run %d in %s", runID, store.Path())
	return nil
}
