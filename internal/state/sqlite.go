package state

// #region imports
import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS session_moods (
	session_id  TEXT PRIMARY KEY,
	mood        TEXT NOT NULL,
	injected    INTEGER NOT NULL,
	vibe        TEXT,
	ts          REAL NOT NULL
);
`

// #endregion schema

// #region sqlite-store

// SQLiteStore keeps the per-session records in a single SQLite database
// instead of a directory of JSON files. Still exactly one row per
// session: an upsert replaces the previous record.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStoreWithDB wraps an existing connection. Used for testing.
func NewSQLiteStoreWithDB(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// #endregion

// #region put

// Put upserts the session's record.
func (s *SQLiteStore) Put(sessionID string, rec MoodRecord) error {
	var vibe interface{}
	if rec.Vibe != nil {
		vibe = *rec.Vibe
	}
	_, err := s.db.Exec(
		`INSERT INTO session_moods (session_id, mood, injected, vibe, ts)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
			mood = excluded.mood,
			injected = excluded.injected,
			vibe = excluded.vibe,
			ts = excluded.ts`,
		sessionID, rec.Mood, rec.Injected, vibe, rec.TS,
	)
	if err != nil {
		return fmt.Errorf("upsert session %s: %w", sessionID, err)
	}
	return nil
}

// #endregion

// #region get

// Get reads the session's record. No row means no record, not an error.
func (s *SQLiteStore) Get(sessionID string) (MoodRecord, bool, error) {
	var rec MoodRecord
	var vibe sql.NullString
	err := s.db.QueryRow(
		`SELECT mood, injected, vibe, ts FROM session_moods WHERE session_id = ?`,
		sessionID,
	).Scan(&rec.Mood, &rec.Injected, &vibe, &rec.TS)
	if err == sql.ErrNoRows {
		return MoodRecord{}, false, nil
	}
	if err != nil {
		return MoodRecord{}, false, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	if vibe.Valid {
		rec.Vibe = &vibe.String
	}
	return rec, true, nil
}

// #endregion
