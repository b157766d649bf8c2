// Package report lists recorded classification runs.
package report

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/home-economics/language-atlas/models"
	"github.com/home-economics/language-atlas/pkg/db"
)

// RunsAction lists recent runs in a table, newest first.
func RunsAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if cfg.DB == "" {
		return fmt.Errorf("no run-history database configured")
	}

	store, err := db.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-5s %-20s %8s %6s %6s %6s %7s %9s %7s\n",
		"ID", "CREATED", "REGIONS", "T1", "T2", "T3", "NOTIER", "OVERRIDES", "NOBENCH")
	for _, run := range runs {
		fmt.Printf("%-5d %-20s %8d %6d %6d %6d %7d %9d %7d\n",
			run.RunID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.RegionCount,
			run.Tier1Count, run.Tier2Count, run.Tier3Count, run.NoTierCount,
			run.AdminOverride,
			run.NotInBenchmark,
		)
	}
	return nil
}
