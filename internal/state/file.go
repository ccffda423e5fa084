package state

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// #endregion

// #region file-store

// DefaultDir is the scratch root the status line reads from.
const DefaultDir = "/tmp/claude-vibes"

// FileStore writes one JSON file per session under a scratch directory.
// This is the default backend: the status-line reader consumes
// <dir>/<session_id>.json directly.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir (DefaultDir if empty).
// The directory is created lazily on first Put.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultDir
	}
	return &FileStore{dir: dir}
}

// #endregion

// #region put

// Put overwrites the session's record. No locking: last writer wins.
func (s *FileStore) Put(sessionID string, rec MoodRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.dir, err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	path := filepath.Join(s.dir, sessionID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// #endregion

// #region get

// Get reads the session's record. Missing file means no record, not an
// error.
func (s *FileStore) Get(sessionID string) (MoodRecord, bool, error) {
	path := filepath.Join(s.dir, sessionID+".json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return MoodRecord{}, false, nil
	}
	if err != nil {
		return MoodRecord{}, false, fmt.Errorf("read %s: %w", path, err)
	}
	var rec MoodRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return MoodRecord{}, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return rec, true, nil
}

// #endregion
