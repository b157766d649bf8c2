package models

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
geometry: data/admin1.topojson
benchmark: data/bench.json
admin1_table: data/admin1_languages.json
country_table: data/country_languages.json
name_table: data/name_to_bcp.json
scores_out: out/scores.json
geometry_out: out/tiers.topojson
tier1_cutoff: 0.70
tier2_cutoff: 0.40
db: atlas.db
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Geometry != "data/admin1.topojson" {
		t.Errorf("Geometry = %q", cfg.Geometry)
	}
	if cfg.Tier1Cutoff != 0.70 || cfg.Tier2Cutoff != 0.40 {
		t.Errorf("cutoffs = (%v, %v), want (0.70, 0.40)", cfg.Tier1Cutoff, cfg.Tier2Cutoff)
	}
}

func TestLoadConfig_DefaultCutoffs(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `geometry: g.json`))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Tier1Cutoff != 0.65 || cfg.Tier2Cutoff != 0.50 {
		t.Errorf("default cutoffs = (%v, %v), want (0.65, 0.50)", cfg.Tier1Cutoff, cfg.Tier2Cutoff)
	}
}

func TestLoadConfig_InvalidCutoffs(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "tier1_cutoff: 0.4\ntier2_cutoff: 0.6\n"))
	if err == nil {
		t.Error("LoadConfig() should reject tier1 <= tier2")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() with a missing file should fail")
	}
}

func TestLoadConfig_DataDirRebase(t *testing.T) {
	t.Setenv("ATLAS_DATA_DIR", "/srv/atlas")
	cfg, err := LoadConfig(writeConfig(t, "geometry: data/g.json\nscores_out: /abs/out.json\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Geometry != filepath.Join("/srv/atlas", "data/g.json") {
		t.Errorf("Geometry = %q, want rebased under /srv/atlas", cfg.Geometry)
	}
	if cfg.ScoresOut != "/abs/out.json" {
		t.Errorf("ScoresOut = %q, absolute paths must not be rebased", cfg.ScoresOut)
	}
}

func TestLoadConfig_EnvConfigPath(t *testing.T) {
	real := writeConfig(t, "geometry: from-env.json\n")
	t.Setenv("ATLAS_CONFIG", real)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "ignored.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Geometry != "from-env.json" {
		t.Errorf("Geometry = %q, want the ATLAS_CONFIG file to win", cfg.Geometry)
	}
}
