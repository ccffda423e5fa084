package state

import "sync"

// #region mem-store

// MemStore is an in-memory Store for tests and for hosts that disable
// persistence.
type MemStore struct {
	mu      sync.Mutex
	records map[string]MoodRecord
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]MoodRecord)}
}

// Put overwrites the session's record.
func (s *MemStore) Put(sessionID string, rec MoodRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = rec
	return nil
}

// Get reads the session's record.
func (s *MemStore) Get(sessionID string) (MoodRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[sessionID]
	return rec, ok, nil
}

// #endregion
