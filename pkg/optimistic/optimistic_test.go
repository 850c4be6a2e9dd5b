package optimistic

import (
	"errors"
	"testing"
)

// TestRunCommitSuccess validates that a successful commit keeps the
// applied state
func TestRunCommitSuccess(t *testing.T) {
	count := 0

	err := Run(
		func() { count++ },
		func() error { return nil },
		func() { count-- },
	)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
}

// TestRunCommitFailureRollsBack validates that a failed commit reverts the
// applied state and surfaces the error
func TestRunCommitFailureRollsBack(t *testing.T) {
	count := 0
	boom := errors.New("server error")

	err := Run(
		func() { count++ },
		func() error { return boom },
		func() { count-- },
	)

	if !errors.Is(err, boom) {
		t.Fatalf("Expected commit error, got %v", err)
	}
	if count != 0 {
		t.Errorf("Expected rollback to 0, got %d", count)
	}
}

// TestRunNilApplyAndRollback validates that the hooks are optional
func TestRunNilApplyAndRollback(t *testing.T) {
	if err := Run(nil, func() error { return nil }, nil); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	boom := errors.New("fail")
	if err := Run(nil, func() error { return boom }, nil); !errors.Is(err, boom) {
		t.Errorf("Expected commit error, got %v", err)
	}
}

// TestToggleFlip validates basic flip behavior
func TestToggleFlip(t *testing.T) {
	tg := NewToggle(false)

	v, gen := tg.Flip()
	if !v {
		t.Error("Expected flip to true")
	}
	if gen != 1 {
		t.Errorf("Expected generation 1, got %d", gen)
	}
	if !tg.Value() {
		t.Error("Expected value true")
	}
}

// TestToggleFailedCommitReverts validates that a failed commit with no
// newer intent restores the pre-flip value
func TestToggleFailedCommitReverts(t *testing.T) {
	tg := NewToggle(false)

	_, gen := tg.Flip()
	tg.Commit(gen, errors.New("500"))

	if tg.Value() {
		t.Error("Expected revert to false after failed commit")
	}
}

// TestToggleStaleCommitDiscarded validates that rapid flips win over the
// results of older commits
func TestToggleStaleCommitDiscarded(t *testing.T) {
	tg := NewToggle(false)

	// like, then unlike before the like commit resolves
	_, gen1 := tg.Flip() // true
	_, gen2 := tg.Flip() // false

	// The first commit fails late. It must not revert the newer intent.
	tg.Commit(gen1, errors.New("timeout"))
	if tg.Value() {
		t.Error("Expected stale failed commit to be ignored")
	}

	// The second commit succeeds and settles the final state.
	tg.Commit(gen2, nil)
	if tg.Value() {
		t.Error("Expected final value false")
	}
}

// TestToggleRapidFlipSequence validates that the value always reflects the
// latest flip regardless of commit arrival order
func TestToggleRapidFlipSequence(t *testing.T) {
	tg := NewToggle(false)

	gens := make([]uint64, 0, 5)
	for i := 0; i < 5; i++ {
		_, g := tg.Flip()
		gens = append(gens, g)
	}

	// Five flips from false lands on true
	if !tg.Value() {
		t.Fatal("Expected value true after odd number of flips")
	}

	// Commits resolve out of order; only the last generation matters.
	tg.Commit(gens[2], nil)
	tg.Commit(gens[0], errors.New("late failure"))
	tg.Commit(gens[4], nil)

	if !tg.Value() {
		t.Error("Expected value true after all commits resolved")
	}
}

// TestToggleReconcile validates server-confirmed overwrite semantics
func TestToggleReconcile(t *testing.T) {
	tg := NewToggle(true)

	gen := tg.Generation()
	tg.Reconcile(gen, false)
	if tg.Value() {
		t.Error("Expected reconcile to overwrite with confirmed value")
	}

	// A reconcile for a stale generation is ignored
	_, newer := tg.Flip()
	tg.Reconcile(newer-1, false)
	if !tg.Value() {
		t.Error("Expected stale reconcile to be ignored")
	}
}
