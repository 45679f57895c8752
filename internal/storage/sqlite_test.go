package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/leva-autoplay/internal/api"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "rewards.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.leva/rewards.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".leva", "rewards.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	rewards := []Reward{
		{RunID: "run-1", RecordID: 10, Name: "Coin x100"},
		{RunID: "run-1", RecordID: 11, Name: "Figure", Pic: "figure.png"},
		{RunID: "run-2", RecordID: 12, Name: "Gift Code", IsCode: true},
	}
	for _, r := range rewards {
		if _, err := store.SaveReward(r); err != nil {
			t.Fatalf("SaveReward() failed: %v", err)
		}
	}

	got, err := store.RecentRewards(10)
	if err != nil {
		t.Fatalf("RecentRewards() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 rewards, got %d", len(got))
	}

	// Newest first
	if got[0].RecordID != 12 || got[2].RecordID != 10 {
		t.Errorf("Rewards not newest-first: %+v", got)
	}
	if !got[0].IsCode || got[1].IsCode {
		t.Errorf("IsCode not round-tripped: %+v", got)
	}
	if got[1].Pic != "figure.png" || got[0].RunID != "run-2" {
		t.Errorf("Fields not round-tripped: %+v", got[:2])
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveReward(Reward{RunID: "r", RecordID: i, Name: "x"})
	}

	got, err := store.RecentRewards(3)
	if err != nil {
		t.Fatalf("RecentRewards() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 rewards with limit, got %d", len(got))
	}
	if got[0].RecordID != 4 {
		t.Errorf("Expected newest record 4 first, got %d", got[0].RecordID)
	}
}

func TestStoreRewardCount(t *testing.T) {
	store := openTestStore(t)

	n, err := store.RewardCount()
	if err != nil {
		t.Fatalf("RewardCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 rewards in a new ledger, got %d", n)
	}

	store.SaveReward(Reward{RunID: "r", RecordID: 1, Name: "a"})
	store.SaveReward(Reward{RunID: "r", RecordID: 2, Name: "b"})

	n, err = store.RewardCount()
	if err != nil {
		t.Fatalf("RewardCount() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 rewards, got %d", n)
	}
}

func TestRunRecorder(t *testing.T) {
	store := openTestStore(t)
	rec := store.Recorder("run-42")

	err := rec.RecordReward(context.Background(), api.GachaData{Name: "Code Pack", RecordID: 7, IsCode: 1, Pic: "p.png"})
	if err != nil {
		t.Fatalf("RecordReward() failed: %v", err)
	}

	got, err := store.RecentRewards(1)
	if err != nil {
		t.Fatalf("RecentRewards() failed: %v", err)
	}
	want := Reward{RunID: "run-42", RecordID: 7, Name: "Code Pack", Pic: "p.png", IsCode: true}
	got[0].ID, got[0].CreatedAt = 0, want.CreatedAt
	if got[0] != want {
		t.Errorf("recorded %+v, want %+v", got[0], want)
	}
}
