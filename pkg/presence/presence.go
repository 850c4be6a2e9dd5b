package presence

import (
	"sync"
)

// Tracker maintains the set of currently-online user ids. It is
// single-writer: only the realtime wiring mutates it, everyone else reads.
// No per-user timestamps are kept; "last seen" for offline users comes from
// the profile fetch instead.
type Tracker struct {
	mu     sync.RWMutex
	online map[string]struct{}
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		online: make(map[string]struct{}),
	}
}

// SetOnline marks a user as online
func (t *Tracker) SetOnline(userID string) {
	if userID == "" {
		return
	}
	t.mu.Lock()
	t.online[userID] = struct{}{}
	t.mu.Unlock()
}

// SetOffline marks a user as offline
func (t *Tracker) SetOffline(userID string) {
	t.mu.Lock()
	delete(t.online, userID)
	t.mu.Unlock()
}

// SetRoster replaces the whole set with a snapshot. The snapshot is
// authoritative: users absent from it go offline even without an explicit
// offline event.
func (t *Tracker) SetRoster(userIDs []string) {
	next := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if id != "" {
			next[id] = struct{}{}
		}
	}
	t.mu.Lock()
	t.online = next
	t.mu.Unlock()
}

// Reset clears the set. Called on reconnect: nothing is known until a
// fresh snapshot arrives.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.online = make(map[string]struct{})
	t.mu.Unlock()
}

// IsOnline reports whether a user is currently online
func (t *Tracker) IsOnline(userID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.online[userID]
	return ok
}

// Snapshot returns the current set of online user ids
func (t *Tracker) Snapshot() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]string, 0, len(t.online))
	for id := range t.online {
		ids = append(ids, id)
	}
	return ids
}

// Count returns the number of online users
func (t *Tracker) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.online)
}
