package state

// #region mood-record

// MoodRecord is the per-session classification outcome persisted for the
// status-line display. Last-writer-wins: concurrent calls for one session
// may race and the design accepts lost updates. This is a display hint,
// not a correctness-bearing record.
type MoodRecord struct {
	Mood     string  `json:"mood"`
	Injected bool    `json:"injected"`
	Vibe     *string `json:"vibe"`
	TS       float64 `json:"ts"` // seconds since epoch
}

// #endregion

// #region store

// Store persists one MoodRecord per session id, overwriting any prior
// record. Put is the hook's write path (best-effort; the caller swallows
// errors). Get exists only for the status-line consumer.
type Store interface {
	Put(sessionID string, rec MoodRecord) error
	Get(sessionID string) (MoodRecord, bool, error)
}

// #endregion
