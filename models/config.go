package models

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the file paths and tier cutoffs for a pipeline run.
type Config struct {
	// Inputs
	Geometry     string `yaml:"geometry"`
	Benchmark    string `yaml:"benchmark"`
	BenchmarkURL string `yaml:"benchmark_url"`
	Admin1Table  string `yaml:"admin1_table"`
	CountryTable string `yaml:"country_table"`
	NameTable    string `yaml:"name_table"`
	Results      string `yaml:"results"`
	Population   string `yaml:"population"`

	// Outputs
	ScoresOut        string `yaml:"scores_out"`
	GeometryOut      string `yaml:"geometry_out"`
	CountryScoresOut string `yaml:"country_scores_out"`
	RunSummaryOut    string `yaml:"run_summary_out"`

	// Tier cutoffs on the benchmark's normalized average scores
	Tier1Cutoff float64 `yaml:"tier1_cutoff"`
	Tier2Cutoff float64 `yaml:"tier2_cutoff"`

	// Run-history database path. Empty disables run recording.
	DB string `yaml:"db"`
}

// LoadConfig reads the YAML config file. A .env file, if present, may set
// ATLAS_CONFIG (alternate config path) and ATLAS_DATA_DIR (prefix prepended
// to every relative path in the config).
func LoadConfig(path string) (*Config, error) {
	// Missing .env is fine; it only exists on machines that need overrides.
	_ = godotenv.Load()

	if env := os.Getenv("ATLAS_CONFIG"); env != "" {
		path = env
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := &Config{
		Tier1Cutoff: 0.65,
		Tier2Cutoff: 0.50,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if dir := os.Getenv("ATLAS_DATA_DIR"); dir != "" {
		cfg.rebase(dir)
	}

	if cfg.Tier1Cutoff <= cfg.Tier2Cutoff {
		return nil, fmt.Errorf("invalid tier cutoffs: tier1 (%.2f) must exceed tier2 (%.2f)",
			cfg.Tier1Cutoff, cfg.Tier2Cutoff)
	}

	return cfg, nil
}

// rebase prepends dir to every relative path in the config.
func (c *Config) rebase(dir string) {
	for _, p := range []*string{
		&c.Geometry, &c.Benchmark, &c.Admin1Table, &c.CountryTable, &c.NameTable,
		&c.Results, &c.Population,
		&c.ScoresOut, &c.GeometryOut, &c.CountryScoresOut, &c.RunSummaryOut,
		&c.DB,
	} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}
