package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveReplay(Replay{Seed: 1, Config: "{}"})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	r, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if r == nil {
		t.Fatal("replay lost after reopen")
	}
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)

	in := Replay{
		Seed:     42,
		Config:   "field:\n  width: 800\n",
		Duration: 3500 * time.Millisecond,
		Events: []ReplayEvent{
			{At: 0, Kind: "start"},
			{At: 16 * time.Millisecond, Kind: "keydown", Key: "w"},
			{At: 120 * time.Millisecond, Kind: "keyup", Key: "w"},
			{At: 2 * time.Second, Kind: "expand", W: 1920, H: 1080},
		},
	}

	id, err := store.SaveReplay(in)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveReplay() id = %d, want positive", id)
	}

	out, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if out == nil {
		t.Fatal("Replay() returned nil")
	}

	if out.Seed != 42 {
		t.Errorf("Seed = %d, want 42", out.Seed)
	}
	if out.Config != in.Config {
		t.Errorf("Config = %q, want %q", out.Config, in.Config)
	}
	if out.Duration != in.Duration {
		t.Errorf("Duration = %v, want %v", out.Duration, in.Duration)
	}
	if out.EventCount != len(in.Events) {
		t.Fatalf("EventCount = %d, want %d", out.EventCount, len(in.Events))
	}

	for i, want := range in.Events {
		got := out.Events[i]
		want.Seq = i
		if got != want {
			t.Errorf("event %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestStoreReplayMissing(t *testing.T) {
	store := openTestStore(t)

	r, err := store.Replay(999)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if r != nil {
		t.Errorf("Replay(999) = %+v, want nil", r)
	}
}

func TestStoreReplaysList(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		events := make([]ReplayEvent, i)
		for j := range events {
			events[j] = ReplayEvent{At: time.Duration(j) * time.Millisecond, Kind: "tick"}
		}
		if _, err := store.SaveReplay(Replay{Seed: int64(i), Config: "{}", Events: events}); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	list, err := store.Replays(3)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 replays with limit, got %d", len(list))
	}

	// Newest first
	for i, r := range list {
		wantSeed := int64(4 - i)
		if r.Seed != wantSeed {
			t.Errorf("list[%d].Seed = %d, want %d", i, r.Seed, wantSeed)
		}
		if r.EventCount != int(wantSeed) {
			t.Errorf("list[%d].EventCount = %d, want %d", i, r.EventCount, wantSeed)
		}
		if r.Events != nil {
			t.Errorf("list[%d] should not carry events", i)
		}
		if r.CreatedAt.IsZero() {
			t.Errorf("list[%d].CreatedAt not set", i)
		}
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(Replay{
		Seed:   7,
		Config: "{}",
		Events: []ReplayEvent{{Kind: "start"}},
	})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}

	r, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if r != nil {
		t.Error("replay still present after delete")
	}

	list, err := store.Replays(10)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected no replays, got %d", len(list))
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", ts, ts},
		{"sqlite string", "2024-03-04 05:06:07", ts},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
