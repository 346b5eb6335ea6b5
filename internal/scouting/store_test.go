package scouting

import (
	"context"
	"testing"

	"github.com/robowhales/reefscout/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func insertTestRecord(t *testing.T, store *Store, team, match string, total int) *MatchRecord {
	t.Helper()
	rec := MatchRecord{
		MatchInfo: MatchInfo{TeamNumber: team, MatchNumber: match, Alliance: AllianceRed},
		Scores:    Scores{TotalPoints: total},
	}
	saved, err := store.Insert(context.Background(), rec)
	if err != nil {
		t.Fatalf("inserting record: %v", err)
	}
	return saved
}

func TestStoreInsertAssignsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t)

	saved := insertTestRecord(t, store, "254", "1", 42)

	if saved.ID == "" {
		t.Error("expected an assigned ID")
	}
	if saved.Timestamp == "" {
		t.Error("expected an assigned timestamp")
	}
}

func TestStoreFetchAll(t *testing.T) {
	store := newTestStore(t)
	insertTestRecord(t, store, "254", "1", 10)
	insertTestRecord(t, store, "1678", "1", 20)

	records, err := store.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
}

func TestStoreFetchByTeamSortsChronologically(t *testing.T) {
	store := newTestStore(t)
	insertTestRecord(t, store, "254", "12", 30)
	insertTestRecord(t, store, "254", "3", 10)
	insertTestRecord(t, store, "1678", "3", 99)

	records, err := store.FetchByTeam(context.Background(), "254")
	if err != nil {
		t.Fatalf("FetchByTeam: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].MatchInfo.MatchNumber != "3" || records[1].MatchInfo.MatchNumber != "12" {
		t.Errorf("order = [%s %s], want [3 12]",
			records[0].MatchInfo.MatchNumber, records[1].MatchInfo.MatchNumber)
	}
}

func TestStoreFetchByMatch(t *testing.T) {
	store := newTestStore(t)
	insertTestRecord(t, store, "254", "7", 30)
	insertTestRecord(t, store, "1678", "7", 40)
	insertTestRecord(t, store, "254", "8", 50)

	records, err := store.FetchByMatch(context.Background(), "7")
	if err != nil {
		t.Fatalf("FetchByMatch: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
}

func TestStoreSkipsMalformedRecords(t *testing.T) {
	store := newTestStore(t)
	insertTestRecord(t, store, "254", "1", 10)

	// Write a corrupt row and one with no team number directly.
	ctx := context.Background()
	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO scouting_records (id, team_number, match_number, data) VALUES ('bad', 'x', '1', 'not json')`); err != nil {
		t.Fatalf("inserting corrupt row: %v", err)
	}
	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO scouting_records (id, team_number, match_number, data) VALUES ('empty', '', '1', '{"matchInfo":{}}')`); err != nil {
		t.Fatalf("inserting teamless row: %v", err)
	}

	records, err := store.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1 (bad rows skipped)", len(records))
	}
}

func TestStoreCount(t *testing.T) {
	store := newTestStore(t)
	insertTestRecord(t, store, "254", "1", 10)
	insertTestRecord(t, store, "254", "2", 20)

	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestSortByMatchNumberNonNumeric(t *testing.T) {
	records := []MatchRecord{
		{MatchInfo: MatchInfo{MatchNumber: "5"}},
		{MatchInfo: MatchInfo{MatchNumber: "practice"}},
		{MatchInfo: MatchInfo{MatchNumber: "2"}},
	}
	SortByMatchNumber(records)

	// Non-numeric labels sort as zero and keep their relative position.
	want := []string{"practice", "2", "5"}
	for i := range want {
		if records[i].MatchInfo.MatchNumber != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, records[i].MatchInfo.MatchNumber, want[i])
		}
	}
}
