package service

import (
	"sync"
	"time"
)

// typingTTL bounds how long a typing indicator stays live without a stop
// event, since a dropped connection never sends one.
const typingTTL = 6 * time.Second

// TypingTracker records which users are typing in which thread
type TypingTracker struct {
	mu     sync.RWMutex
	typing map[string]time.Time // "threadID/userID" -> started
	now    func() time.Time
}

// NewTypingTracker creates an empty tracker
func NewTypingTracker() *TypingTracker {
	return &TypingTracker{
		typing: make(map[string]time.Time),
		now:    time.Now,
	}
}

// SetTyping marks a user as typing in a thread
func (t *TypingTracker) SetTyping(threadID, userID string) {
	t.mu.Lock()
	t.typing[threadID+"/"+userID] = t.now()
	t.mu.Unlock()
}

// ClearTyping marks a user as no longer typing in a thread
func (t *TypingTracker) ClearTyping(threadID, userID string) {
	t.mu.Lock()
	delete(t.typing, threadID+"/"+userID)
	t.mu.Unlock()
}

// IsTyping reports whether a user is typing in a thread, expiring stale
// entries
func (t *TypingTracker) IsTyping(threadID, userID string) bool {
	t.mu.RLock()
	started, ok := t.typing[threadID+"/"+userID]
	t.mu.RUnlock()

	if !ok {
		return false
	}
	if t.now().Sub(started) > typingTTL {
		t.ClearTyping(threadID, userID)
		return false
	}
	return true
}

// Reset clears all typing state
func (t *TypingTracker) Reset() {
	t.mu.Lock()
	t.typing = make(map[string]time.Time)
	t.mu.Unlock()
}
