package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Pattern: "random", Rows: 14, Cols: 14, Seed: 1, Steps: 100, Flashes: 321},
		{Pattern: "critical", Rows: 10, Cols: 10, Seed: 2, Steps: 1, Flashes: 100, SyncStep: 1},
		{Pattern: "random", Rows: 20, Cols: 20, Seed: 3, Steps: 50, Flashes: 87},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	entries, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(entries))
	}

	// Newest first
	if entries[0].Pattern != "random" || entries[0].Rows != 20 {
		t.Errorf("Expected newest run first, got %+v", entries[0])
	}
	if entries[2].Seed != 1 {
		t.Errorf("Expected oldest run last, got %+v", entries[2])
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Pattern: "random", Rows: 5, Cols: 5, Steps: i})
	}

	entries, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(entries))
	}
}

func TestStoreBestSync(t *testing.T) {
	store := openTestStore(t)

	// No synced runs yet
	best, err := store.BestSync("random")
	if err != nil {
		t.Fatalf("BestSync() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil for pattern with no synced runs, got %+v", best)
	}

	store.SaveRun(RunEntry{Pattern: "random", Rows: 10, Cols: 10, Steps: 300, Flashes: 900, SyncStep: 250})
	store.SaveRun(RunEntry{Pattern: "random", Rows: 10, Cols: 10, Steps: 200, Flashes: 700, SyncStep: 190})
	store.SaveRun(RunEntry{Pattern: "random", Rows: 10, Cols: 10, Steps: 100, Flashes: 400, SyncStep: 0})
	store.SaveRun(RunEntry{Pattern: "ring", Rows: 10, Cols: 10, Steps: 10, Flashes: 100, SyncStep: 5})

	best, err = store.BestSync("random")
	if err != nil {
		t.Fatalf("BestSync() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best sync entry")
	}
	if best.SyncStep != 190 {
		t.Errorf("Expected best sync at step 190, got %d", best.SyncStep)
	}
}

func TestStoreTotalFlashes(t *testing.T) {
	store := openTestStore(t)

	// Empty store sums to zero
	total, err := store.TotalFlashes()
	if err != nil {
		t.Fatalf("TotalFlashes() failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected 0 total flashes for empty store, got %d", total)
	}

	store.SaveRun(RunEntry{Pattern: "random", Rows: 5, Cols: 5, Steps: 10, Flashes: 40})
	store.SaveRun(RunEntry{Pattern: "calm", Rows: 5, Cols: 5, Steps: 10, Flashes: 2})

	total, err = store.TotalFlashes()
	if err != nil {
		t.Fatalf("TotalFlashes() failed: %v", err)
	}
	if total != 42 {
		t.Errorf("Expected 42 total flashes, got %d", total)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Pattern: "random", Rows: 5, Cols: 5, Steps: 1, Flashes: 1})
	store.SaveRun(RunEntry{Pattern: "ring", Rows: 5, Cols: 5, Steps: 1, Flashes: 1})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	entries, _ := store.RecentRuns(10)
	if len(entries) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(entries))
	}
}
