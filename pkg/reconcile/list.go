// Package reconcile provides the ordered-list-with-push-merge structure
// shared by every surface where a REST-fetched list meets pushed events:
// conversation summaries, notifications, and anything else keyed by id and
// ordered by recency.
package reconcile

import (
	"sync"
)

// Keyed is anything with a stable string key.
type Keyed interface {
	Key() string
}

// List holds entries ordered by recency, most recent first. Upsert mutates
// an existing entry in place and moves it to the front; a miss returns
// false so the caller can re-fetch the complete entry instead of
// fabricating a partial one.
type List[T Keyed] struct {
	mu      sync.RWMutex
	entries []T
	index   map[string]int
}

// NewList creates an empty list
func NewList[T Keyed]() *List[T] {
	return &List[T]{
		index: make(map[string]int),
	}
}

// ReplaceAll swaps in a freshly fetched baseline, preserving its order.
func (l *List[T]) ReplaceAll(entries []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]T, len(entries))
	copy(l.entries, entries)
	l.reindex()
}

// Upsert applies update to the entry with the given key and moves it to
// the front. Returns false when the key is unknown; the entry is NOT
// created, since the push payload lacks the joined data a full fetch
// carries.
func (l *List[T]) Upsert(key string, update func(*T)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[key]
	if !ok {
		return false
	}

	if update != nil {
		update(&l.entries[i])
	}
	l.moveToFront(i)
	return true
}

// Update applies update in place without changing position. Used for
// mutations that don't bump recency, like read receipts.
func (l *List[T]) Update(key string, update func(*T)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[key]
	if !ok {
		return false
	}
	if update != nil {
		update(&l.entries[i])
	}
	return true
}

// MoveToFront moves the entry with the given key to index 0
func (l *List[T]) MoveToFront(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[key]
	if !ok {
		return false
	}
	l.moveToFront(i)
	return true
}

// Remove deletes the entry with the given key
func (l *List[T]) Remove(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[key]
	if !ok {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	l.reindex()
	return true
}

// Get returns a copy of the entry with the given key
func (l *List[T]) Get(key string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var zero T
	i, ok := l.index[key]
	if !ok {
		return zero, false
	}
	return l.entries[i], true
}

// Items returns a copy of the entries in order, most recent first
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// IndexOf returns the position of the entry with the given key, or -1
func (l *List[T]) IndexOf(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[key]
	if !ok {
		return -1
	}
	return i
}

// moveToFront shifts entries[i] to position 0. Caller holds the lock.
func (l *List[T]) moveToFront(i int) {
	if i == 0 {
		return
	}
	entry := l.entries[i]
	copy(l.entries[1:i+1], l.entries[0:i])
	l.entries[0] = entry
	l.reindex()
}

// reindex rebuilds the key index. Caller holds the lock.
func (l *List[T]) reindex() {
	l.index = make(map[string]int, len(l.entries))
	for i, e := range l.entries {
		l.index[e.Key()] = i
	}
}
