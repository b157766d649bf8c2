package db

import (
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func sampleRun() Run {
	return Run{
		RegionCount:    4596,
		Tier1Count:     1200,
		Tier2Count:     900,
		Tier3Count:     2300,
		NoTierCount:    196,
		AdminOverride:  680,
		CountryDefault: 3720,
		NotInBenchmark: 800,
		ZeroScore:      3,
		NoLanguage:     196,
		ScoresPath:     "data/admin1_scores.json",
		GeometryPath:   "data/admin1_with_tiers.topojson",
	}
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun(sampleRun())
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("InsertRun() returned 0 run ID")
	}

	got, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}

	want := sampleRun()
	if got.RegionCount != want.RegionCount {
		t.Errorf("RegionCount = %d, want %d", got.RegionCount, want.RegionCount)
	}
	if got.AdminOverride != want.AdminOverride || got.NotInBenchmark != want.NotInBenchmark {
		t.Errorf("counters = (%d, %d), want (%d, %d)",
			got.AdminOverride, got.NotInBenchmark, want.AdminOverride, want.NotInBenchmark)
	}
	if got.ScoresPath != want.ScoresPath {
		t.Errorf("ScoresPath = %q, want %q", got.ScoresPath, want.ScoresPath)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(999); err == nil {
		t.Error("GetRunByID(999) should fail for a missing run")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	var ids []int64
	for i := 0; i < 3; i++ {
		run := sampleRun()
		run.RegionCount = 100 + i
		id, err := db.InsertRun(run)
		if err != nil {
			t.Fatalf("InsertRun() error = %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns() returned %d runs, want 3", len(runs))
	}

	// Newest first
	if runs[0].RunID != ids[2] {
		t.Errorf("runs[0].RunID = %d, want %d (newest first)", runs[0].RunID, ids[2])
	}
	if runs[0].RegionCount != 102 {
		t.Errorf("runs[0].RegionCount = %d, want 102", runs[0].RegionCount)
	}
}

func TestListRuns_Limit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		if _, err := db.InsertRun(sampleRun()); err != nil {
			t.Fatalf("InsertRun() error = %v", err)
		}
	}

	runs, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("ListRuns(2) returned %d runs, want 2", len(runs))
	}
}

func TestListRuns_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("ListRuns() on empty store returned %d runs", len(runs))
	}
}
