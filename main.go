package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/home-economics/language-atlas/internal/benchfetch"
	"github.com/home-economics/language-atlas/internal/classify"
	"github.com/home-economics/language-atlas/internal/country"
	"github.com/home-economics/language-atlas/internal/report"
)

func main() {
	app := &cli.App{
		Name:  "language-atlas",
		Usage: "classify admin1 regions by how well LLMs serve their home language",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "classify",
				Usage:  "run the full pipeline: geometry + knowledge base + benchmark → scores and tiers",
				Action: classify.Action,
			},
			{
				Name:   "fetch",
				Usage:  "download the benchmark table from the live API",
				Action: benchfetch.Action,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "override the configured benchmark endpoint",
					},
				},
			},
			{
				Name:   "country-scores",
				Usage:  "build speaker-weighted country-level coverage scores",
				Action: country.Action,
			},
			{
				Name:   "runs",
				Usage:  "list recorded classification runs",
				Action: report.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to show",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
