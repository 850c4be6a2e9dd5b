// Package optimistic generalizes the apply-commit-rollback pattern used by
// like, save, follow, and block flows: flip local state immediately, call
// the API, and revert on failure.
package optimistic

import (
	"sync"
)

// Run applies a local change, then commits it remotely. On commit failure
// the rollback runs and the error is returned for the UI to surface.
func Run(apply func(), commit func() error, rollback func()) error {
	if apply != nil {
		apply()
	}

	if err := commit(); err != nil {
		if rollback != nil {
			rollback()
		}
		return err
	}

	return nil
}

// Toggle coordinates a boolean that can be flipped faster than its commits
// resolve. Each flip bumps a generation; a commit result belonging to a
// stale generation is discarded, so the state always reflects the latest
// user intent and is only reconciled against server-confirmed values.
type Toggle struct {
	mu         sync.Mutex
	value      bool
	generation uint64
}

// NewToggle creates a toggle with an initial server-confirmed value
func NewToggle(initial bool) *Toggle {
	return &Toggle{value: initial}
}

// Value returns the current local value
func (t *Toggle) Value() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

// Flip inverts the local value and returns the new value plus the
// generation that a matching commit must present.
func (t *Toggle) Flip() (bool, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.value = !t.value
	t.generation++
	return t.value, t.generation
}

// Commit finalizes a flip. When the commit failed and no newer flip
// happened, the value reverts to the pre-flip state. A stale generation is
// ignored either way: newer intent wins.
func (t *Toggle) Commit(generation uint64, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation != t.generation {
		return
	}
	if err != nil {
		t.value = !t.value
	}
}

// Reconcile overwrites the local value with a server-confirmed one, unless
// a flip is still in flight for a newer generation.
func (t *Toggle) Reconcile(generation uint64, confirmed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation != t.generation {
		return
	}
	t.value = confirmed
}

// Generation returns the current generation counter
func (t *Toggle) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}
