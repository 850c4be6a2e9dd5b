package presence

import (
	"sort"
	"testing"
)

// TestSetOnlineOffline validates basic set membership
func TestSetOnlineOffline(t *testing.T) {
	tr := NewTracker()

	tr.SetOnline("alice")
	tr.SetOnline("bob")

	if !tr.IsOnline("alice") {
		t.Error("Expected alice online")
	}
	if tr.Count() != 2 {
		t.Errorf("Expected 2 online, got %d", tr.Count())
	}

	tr.SetOffline("alice")
	if tr.IsOnline("alice") {
		t.Error("Expected alice offline")
	}
	if !tr.IsOnline("bob") {
		t.Error("Expected bob still online")
	}
}

// TestSetOnlineIdempotent validates that duplicate events do not inflate
// the count
func TestSetOnlineIdempotent(t *testing.T) {
	tr := NewTracker()

	tr.SetOnline("alice")
	tr.SetOnline("alice")

	if tr.Count() != 1 {
		t.Errorf("Expected 1 online, got %d", tr.Count())
	}

	tr.SetOffline("alice")
	tr.SetOffline("alice")
	if tr.Count() != 0 {
		t.Errorf("Expected 0 online, got %d", tr.Count())
	}
}

// TestRosterIsAuthoritative validates that the snapshot replaces the whole
// set: users absent from it go offline without an explicit event
func TestRosterIsAuthoritative(t *testing.T) {
	tr := NewTracker()

	tr.SetOnline("a")
	tr.SetOnline("b")

	tr.SetRoster([]string{"b", "c"})

	if tr.IsOnline("a") {
		t.Error("Expected a offline after roster replace")
	}
	if !tr.IsOnline("b") || !tr.IsOnline("c") {
		t.Error("Expected b and c online from roster")
	}

	got := tr.Snapshot()
	sort.Strings(got)
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("Expected snapshot [b c], got %v", got)
	}
}

// TestResetClearsEverything validates the reconnect behavior
func TestResetClearsEverything(t *testing.T) {
	tr := NewTracker()

	tr.SetRoster([]string{"a", "b", "c"})
	tr.Reset()

	if tr.Count() != 0 {
		t.Errorf("Expected empty tracker after reset, got %d", tr.Count())
	}
	if tr.IsOnline("a") {
		t.Error("Expected nobody online after reset")
	}
}

// TestEmptyUserIDIgnored validates that blank ids never enter the set
func TestEmptyUserIDIgnored(t *testing.T) {
	tr := NewTracker()

	tr.SetOnline("")
	tr.SetRoster([]string{"", "a", ""})

	if tr.Count() != 1 {
		t.Errorf("Expected 1 online, got %d", tr.Count())
	}
	if tr.IsOnline("") {
		t.Error("Blank id must not be tracked")
	}
}
