package db

import "testing"

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	// Schema should be in place: inserting into each table must work.
	_, err = d.Exec(`INSERT INTO scouting_records (id, team_number, match_number, data) VALUES ('r1', '9032', '12', '{}')`)
	if err != nil {
		t.Fatalf("inserting record: %v", err)
	}

	_, err = d.Exec(`INSERT INTO chat_sessions (id, user_id) VALUES ('s1', 'scout')`)
	if err != nil {
		t.Fatalf("inserting session: %v", err)
	}

	_, err = d.Exec(`INSERT INTO chat_messages (id, session_id, role, content) VALUES ('m1', 's1', 'user', 'hi')`)
	if err != nil {
		t.Fatalf("inserting message: %v", err)
	}

	var count int
	if err := d.QueryRow(`SELECT COUNT(*) FROM scouting_records`).Scan(&count); err != nil {
		t.Fatalf("counting records: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 record, got %d", count)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
