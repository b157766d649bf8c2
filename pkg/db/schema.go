package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs: one row per classification pass
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    region_count INTEGER NOT NULL,

    -- Tier distribution
    tier1_count INTEGER NOT NULL DEFAULT 0,
    tier2_count INTEGER NOT NULL DEFAULT 0,
    tier3_count INTEGER NOT NULL DEFAULT 0,
    no_tier_count INTEGER NOT NULL DEFAULT 0,

    -- Diagnostic counters (QA of the knowledge base)
    admin1_override INTEGER NOT NULL DEFAULT 0,
    country_default INTEGER NOT NULL DEFAULT 0,
    not_in_benchmark INTEGER NOT NULL DEFAULT 0,
    zero_score INTEGER NOT NULL DEFAULT 0,
    no_language INTEGER NOT NULL DEFAULT 0,

    -- Output artifacts
    scores_path TEXT,
    geometry_path TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
`
