package scouting

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/robowhales/reefscout/internal/db"
)

// Store reads and writes match-observation records. Records live in SQLite as
// JSON documents with the team and match numbers mirrored into columns for
// equality filters.
type Store struct {
	db *db.DB
}

// NewStore creates a record store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Insert persists a record, assigning an ID and timestamp if missing.
func (s *Store) Insert(ctx context.Context, rec MatchRecord) (*MatchRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshalling record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scouting_records (id, team_number, match_number, data) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.MatchInfo.TeamNumber, rec.MatchInfo.MatchNumber, string(data),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting record: %w", err)
	}

	return &rec, nil
}

// FetchAll returns every record in the collection. Records missing a team
// number are skipped and logged rather than failing the whole read.
func (s *Store) FetchAll(ctx context.Context) ([]MatchRecord, error) {
	return s.fetch(ctx, `SELECT id, data FROM scouting_records`)
}

// FetchByTeam returns the records for one team, sorted chronologically by
// numeric match number.
func (s *Store) FetchByTeam(ctx context.Context, teamNumber string) ([]MatchRecord, error) {
	records, err := s.fetch(ctx,
		`SELECT id, data FROM scouting_records WHERE team_number = ?`, teamNumber)
	if err != nil {
		return nil, err
	}
	SortByMatchNumber(records)
	return records, nil
}

// FetchByMatch returns every record scouted for one match (one per observed
// team, typically up to six).
func (s *Store) FetchByMatch(ctx context.Context, matchNumber string) ([]MatchRecord, error) {
	return s.fetch(ctx,
		`SELECT id, data FROM scouting_records WHERE match_number = ?`, matchNumber)
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scouting_records`).Scan(&count)
	return count, err
}

func (s *Store) fetch(ctx context.Context, query string, args ...any) ([]MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		var rec MatchRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			log.Printf("scouting: skipping malformed record %s: %v", id, err)
			continue
		}
		if rec.MatchInfo.TeamNumber == "" {
			log.Printf("scouting: skipping record %s with no team number", id)
			continue
		}
		rec.ID = id
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SortByMatchNumber orders records chronologically by numeric match number.
// Non-numeric labels sort as zero, keeping their relative order.
func SortByMatchNumber(records []MatchRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return matchNumberValue(records[i]) < matchNumberValue(records[j])
	})
}

func matchNumberValue(rec MatchRecord) int {
	n, err := strconv.Atoi(rec.MatchInfo.MatchNumber)
	if err != nil {
		return 0
	}
	return n
}
