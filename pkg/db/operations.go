package db

import (
	"fmt"
	"time"
)

// Run is one recorded classification pass.
type Run struct {
	RunID       int64
	CreatedAt   time.Time
	RegionCount int

	Tier1Count  int
	Tier2Count  int
	Tier3Count  int
	NoTierCount int

	AdminOverride  int
	CountryDefault int
	NotInBenchmark int
	ZeroScore      int
	NoLanguage     int

	ScoresPath   string
	GeometryPath string
}

// InsertRun records a completed run, returning the run_id.
func (db *DB) InsertRun(run Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (
			region_count,
			tier1_count, tier2_count, tier3_count, no_tier_count,
			admin1_override, country_default, not_in_benchmark, zero_score, no_language,
			scores_path, geometry_path
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.RegionCount,
		run.Tier1Count, run.Tier2Count, run.Tier3Count, run.NoTierCount,
		run.AdminOverride, run.CountryDefault, run.NotInBenchmark, run.ZeroScore, run.NoLanguage,
		run.ScoresPath, run.GeometryPath,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// GetRunByID fetches a single run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	run := &Run{}
	err := db.QueryRow(`
		SELECT run_id, created_at, region_count,
		       tier1_count, tier2_count, tier3_count, no_tier_count,
		       admin1_override, country_default, not_in_benchmark, zero_score, no_language,
		       scores_path, geometry_path
		FROM runs WHERE run_id = ?
	`, runID).Scan(
		&run.RunID, &run.CreatedAt, &run.RegionCount,
		&run.Tier1Count, &run.Tier2Count, &run.Tier3Count, &run.NoTierCount,
		&run.AdminOverride, &run.CountryDefault, &run.NotInBenchmark, &run.ZeroScore, &run.NoLanguage,
		&run.ScoresPath, &run.GeometryPath,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", runID, err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, created_at, region_count,
		       tier1_count, tier2_count, tier3_count, no_tier_count,
		       admin1_override, country_default, not_in_benchmark, zero_score, no_language,
		       scores_path, geometry_path
		FROM runs
		ORDER BY created_at DESC, run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.RunID, &run.CreatedAt, &run.RegionCount,
			&run.Tier1Count, &run.Tier2Count, &run.Tier3Count, &run.NoTierCount,
			&run.AdminOverride, &run.CountryDefault, &run.NotInBenchmark, &run.ZeroScore, &run.NoLanguage,
			&run.ScoresPath, &run.GeometryPath,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}
