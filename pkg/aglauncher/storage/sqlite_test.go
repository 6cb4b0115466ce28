package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRecordLaunchAndExit(t *testing.T) {
	store := openTestStore(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	id, err := store.RecordLaunch("session-1", "Star Rider", "games/star.exe", start)
	if err != nil {
		t.Fatalf("RecordLaunch() failed: %v", err)
	}

	plays, err := store.RecentPlays(10)
	if err != nil {
		t.Fatalf("RecentPlays() failed: %v", err)
	}
	if len(plays) != 1 || !plays[0].EndedAt.IsZero() || plays[0].Duration() != 0 {
		t.Fatalf("unexpected running play: %+v", plays)
	}

	if err := store.RecordExit(id, start.Add(5*time.Minute)); err != nil {
		t.Fatalf("RecordExit() failed: %v", err)
	}

	plays, err = store.RecentPlays(10)
	if err != nil {
		t.Fatalf("RecentPlays() failed: %v", err)
	}
	p := plays[0]
	if p.SessionID != "session-1" || p.Title != "Star Rider" || p.Exec != "games/star.exe" {
		t.Errorf("unexpected play: %+v", p)
	}
	if !p.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, want %v", p.StartedAt, start)
	}
	if p.Duration() != 5*time.Minute {
		t.Errorf("Duration() = %v, want 5m", p.Duration())
	}
}

func TestRecordExitUnknownID(t *testing.T) {
	store := openTestStore(t)
	if err := store.RecordExit(42, time.Now()); err == nil {
		t.Error("RecordExit() of an unknown play succeeded")
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	plays := []struct {
		session string
		title   string
		offset  time.Duration
		length  time.Duration
	}{
		{"s1", "Blocks", 0, 2 * time.Minute},
		{"s1", "Star Rider", 5 * time.Minute, 3 * time.Minute},
		{"s2", "Blocks", 10 * time.Minute, 4 * time.Minute},
		{"s2", "Blocks", 20 * time.Minute, 0},
	}
	for _, p := range plays {
		id, err := store.RecordLaunch(p.session, p.title, "x", base.Add(p.offset))
		if err != nil {
			t.Fatalf("RecordLaunch() failed: %v", err)
		}
		if p.length > 0 {
			if err := store.RecordExit(id, base.Add(p.offset+p.length)); err != nil {
				t.Fatalf("RecordExit() failed: %v", err)
			}
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Stats() returned %d titles, want 2", len(stats))
	}

	blocks := stats[0]
	if blocks.Title != "Blocks" || blocks.Plays != 3 || blocks.TotalTime != 6*time.Minute {
		t.Errorf("Blocks stats = %+v", blocks)
	}
	if !blocks.LastPlay.Equal(base.Add(20 * time.Minute)) {
		t.Errorf("LastPlay = %v", blocks.LastPlay)
	}
	if stats[1].Title != "Star Rider" || stats[1].Plays != 1 {
		t.Errorf("Star Rider stats = %+v", stats[1])
	}

	sessions, err := store.SessionCount()
	if err != nil {
		t.Fatalf("SessionCount() failed: %v", err)
	}
	if sessions != 2 {
		t.Errorf("SessionCount() = %d, want 2", sessions)
	}

	recent, err := store.RecentPlays(2)
	if err != nil {
		t.Fatalf("RecentPlays() failed: %v", err)
	}
	if len(recent) != 2 || !recent[0].StartedAt.Equal(base.Add(20*time.Minute)) {
		t.Errorf("RecentPlays(2) = %+v", recent)
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == "" || a == b {
		t.Errorf("NewSessionID() returned %q and %q", a, b)
	}
}
