package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-matchday/internal/league"
	"github.com/vovakirdan/tui-matchday/internal/match"
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

func saveResult(t *testing.T, store *Store, season string, round int, home, away string, hg, ag int) {
	t.Helper()
	_, err := store.SaveResult(ResultRecord{
		MatchID:   uuid.NewString(),
		Season:    season,
		Round:     round,
		Home:      home,
		Away:      away,
		HomeGoals: hg,
		AwayGoals: ag,
		EndReason: string(match.EndFullTime),
		Minute:    90,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
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

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveResult(t, store, "2025/26", 1, "North", "South", 2, 1)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	results, err := store.Results("2025/26")
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result after reopen, got %d", len(results))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveResult(t, store, "2025/26", 2, "East", "West", 0, 0)
	saveResult(t, store, "2025/26", 1, "North", "South", 2, 1)
	saveResult(t, store, "2024/25", 1, "North", "East", 1, 3)

	results, err := store.Results("2025/26")
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	// Ordered by round
	if results[0].Round != 1 || results[1].Round != 2 {
		t.Errorf("Expected rounds 1, 2; got %d, %d", results[0].Round, results[1].Round)
	}
	if results[0].Score != "2 : 1" {
		t.Errorf("Expected score to be filled in, got %q", results[0].Score)
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	got := results[0].LeagueResult()
	want := league.Result{Round: 1, Home: "North", Away: "South", HomeGoals: 2, AwayGoals: 1}
	if got != want {
		t.Errorf("LeagueResult() = %+v, want %+v", got, want)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		saveResult(t, store, "2025/26", i, "North", "South", i, 0)
	}

	recent, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(recent))
	}
	// Same-second inserts fall back to insertion order, newest first
	if recent[0].Round != 5 {
		t.Errorf("Expected most recent round 5, got %d", recent[0].Round)
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)

	r := ResultRecord{MatchID: "fixed", Season: "s", Round: 1, Home: "A", Away: "B", EndReason: "full_time"}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(r); err == nil {
		t.Error("Expected duplicate match ID to be rejected")
	}
}

func TestStoreClubRecord(t *testing.T) {
	store := openTestStore(t)

	saveResult(t, store, "2025/26", 1, "North", "South", 2, 1) // win
	saveResult(t, store, "2025/26", 2, "East", "North", 1, 1)  // draw
	saveResult(t, store, "2025/26", 3, "West", "North", 3, 0)  // loss
	saveResult(t, store, "2025/26", 3, "East", "South", 4, 4)  // not involved

	rec, err := store.ClubRecord("North")
	if err != nil {
		t.Fatalf("ClubRecord() failed: %v", err)
	}
	want := ClubRecord{Club: "North", Played: 3, Wins: 1, Draws: 1, Losses: 1, GoalsFor: 3, GoalsAgainst: 5}
	if *rec != want {
		t.Errorf("ClubRecord() = %+v, want %+v", *rec, want)
	}
	if rec.Points() != 4 {
		t.Errorf("Expected 4 points, got %d", rec.Points())
	}

	empty, err := store.ClubRecord("Nobody")
	if err != nil {
		t.Fatalf("ClubRecord() failed: %v", err)
	}
	if empty.Played != 0 || empty.Losses != 0 {
		t.Errorf("Expected empty record, got %+v", *empty)
	}
}

func TestStoreClearSeason(t *testing.T) {
	store := openTestStore(t)

	saveResult(t, store, "2025/26", 1, "North", "South", 2, 1)
	saveResult(t, store, "2024/25", 1, "North", "South", 0, 1)

	if err := store.ClearSeason("2025/26"); err != nil {
		t.Fatalf("ClearSeason() failed: %v", err)
	}

	cleared, _ := store.Results("2025/26")
	if len(cleared) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(cleared))
	}
	kept, _ := store.Results("2024/25")
	if len(kept) != 1 {
		t.Errorf("Expected other season untouched, got %d", len(kept))
	}
}

func TestStoreCommitter(t *testing.T) {
	store := openTestStore(t)

	id := uuid.New()
	o := match.Outcome{
		MatchID:   id,
		Home:      "North",
		Away:      "South",
		HomeGoals: 1,
		AwayGoals: 2,
		Minute:    63,
		Reason:    match.EndQuit,
	}
	if err := store.Committer("2025/26", 4).Commit(o); err != nil {
		t.Fatalf("Commit() failed: %v", err)
	}

	rec, err := store.ResultByMatchID(id.String())
	if err != nil {
		t.Fatalf("ResultByMatchID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("Expected committed result to be found")
	}
	if rec.Round != 4 || rec.Score != "1 : 2" || rec.EndReason != "quit" || rec.Minute != 63 {
		t.Errorf("Unexpected record %+v", *rec)
	}

	missing, err := store.ResultByMatchID("nope")
	if err != nil || missing != nil {
		t.Errorf("Expected nil, nil for unknown match; got %v, %v", missing, err)
	}
}

func TestStoreRebuildsStandings(t *testing.T) {
	store := openTestStore(t)

	clubs := []*league.Club{league.NewClub("North"), league.NewClub("South")}
	l := league.New("Cup", clubs, mustDate(t, "2025-08-02"), mustDate(t, "2026-05-01"))
	f := l.Round(1)[0]
	saveResult(t, store, l.Season(), 1, f.Home.Name, f.Away.Name, 3, 0)

	results, err := store.Results(l.Season())
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	var replay []league.Result
	for _, r := range results {
		replay = append(replay, r.LeagueResult())
	}
	if err := l.ApplyResults(replay); err != nil {
		t.Fatalf("ApplyResults() failed: %v", err)
	}

	top := l.Standings()[0]
	if top != f.Home || top.Stats.Points != 3 {
		t.Errorf("Expected %s top on 3 points, got %s on %d", f.Home.Name, top.Name, top.Stats.Points)
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
