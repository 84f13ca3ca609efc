package services

import "sync"

// AttemptTracker hands out monotonically increasing attempt tokens per user
// and tells a finishing attempt whether it is still the newest one. Results
// from superseded attempts are discarded instead of overwriting a newer
// attempt's state.
type AttemptTracker struct {
	mu     sync.Mutex
	latest map[uint]uint64
}

func NewAttemptTracker() *AttemptTracker {
	return &AttemptTracker{latest: make(map[uint]uint64)}
}

// Begin issues the next attempt token for the user and marks it as latest.
func (t *AttemptTracker) Begin(userID uint) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest[userID]++
	return t.latest[userID]
}

// IsCurrent reports whether the token still identifies the user's newest
// attempt.
func (t *AttemptTracker) IsCurrent(userID uint, token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[userID] == token
}
