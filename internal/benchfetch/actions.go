// Package benchfetch refreshes the local benchmark table from the live API.
package benchfetch

import (
	"log"

	"github.com/urfave/cli/v2"

	"github.com/home-economics/language-atlas/models"
	"github.com/home-economics/language-atlas/pkg/benchmark"
)

// Action downloads the benchmark table to the configured path. The --url
// flag overrides the configured endpoint.
func Action(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	url := cfg.BenchmarkURL
	if c.String("url") != "" {
		url = c.String("url")
	}

	count, err := benchmark.Fetch(url, cfg.Benchmark)
	if err != nil {
		return err
	}

	log.Printf("Fetched %d benchmark records to %s", count, cfg.Benchmark)
	return nil
}
