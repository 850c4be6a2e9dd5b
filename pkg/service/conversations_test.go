package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/bus"
	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/realtime"
)

const selfID = "self-user"

// fakeBackend serves the conversation endpoints the service hits.
type fakeBackend struct {
	srv *httptest.Server

	mu            sync.Mutex
	threads       []api.Thread
	markedCount   int
	failMarkRead  bool
	markReadCalls int
	refreshCalls  int
	onMarkRead    func()
}

func newFakeBackend(t *testing.T, threads []api.Thread) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{threads: threads, markedCount: -1}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/messages/conversations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fb.mu.Lock()
		fb.refreshCalls++
		resp := api.ThreadListResponse{Threads: fb.threads, TotalCount: len(fb.threads), Page: 1}
		fb.mu.Unlock()
		json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/api/v1/messages/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/mark-read") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fb.mu.Lock()
		fb.markReadCalls++
		fail := fb.failMarkRead
		count := fb.markedCount
		cb := fb.onMarkRead
		fb.mu.Unlock()

		if cb != nil {
			cb()
		}

		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(api.ErrorResponse{Code: "internal", Message: "boom"})
			return
		}
		json.NewEncoder(w).Encode(api.MarkReadResponse{MarkedCount: count})
	})

	fb.srv = httptest.NewServer(mux)
	t.Cleanup(fb.srv.Close)

	client.Init()
	client.GetClient().SetBaseURL(fb.srv.URL)

	return fb
}

func (fb *fakeBackend) setThreads(threads []api.Thread) {
	fb.mu.Lock()
	fb.threads = threads
	fb.mu.Unlock()
}

func (fb *fakeBackend) setMarkRead(count int, fail bool) {
	fb.mu.Lock()
	fb.markedCount = count
	fb.failMarkRead = fail
	fb.mu.Unlock()
}

func (fb *fakeBackend) setOnMarkRead(cb func()) {
	fb.mu.Lock()
	fb.onMarkRead = cb
	fb.mu.Unlock()
}

func thread(id, participant string, unread int) api.Thread {
	return api.Thread{
		ID:          id,
		Participant: api.User{ID: participant + "-id", Username: participant},
		LastMessage: &api.Message{ID: "m-" + id, Text: "hi", SenderID: participant + "-id"},
		UnreadCount: unread,
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
}

func pushMessage(t *testing.T, svc *ConversationService, threadID, senderID, text string) {
	t.Helper()
	payload, err := json.Marshal(realtime.MessagePayload{
		MessageID: fmt.Sprintf("m-%d", time.Now().UnixNano()),
		ThreadID:  threadID,
		SenderID:  senderID,
		Text:      text,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	svc.handleNewMessage(payload)
}

// TestInboundMessageIncrementsUnread validates that each pushed message
// for a background thread bumps its counter and moves it to the front
func TestInboundMessageIncrementsUnread(t *testing.T) {
	newFakeBackend(t, []api.Thread{
		thread("t1", "alice", 0),
		thread("t2", "bob", 0),
	})

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	pushMessage(t, svc, "t2", "bob-id", "first")
	pushMessage(t, svc, "t2", "bob-id", "second")

	got, ok := svc.Thread("t2")
	if !ok {
		t.Fatal("Expected thread t2")
	}
	if got.UnreadCount != 2 {
		t.Errorf("Expected unread 2, got %d", got.UnreadCount)
	}
	if got.LastMessage == nil || got.LastMessage.Text != "second" {
		t.Error("Expected preview updated to the latest message")
	}

	threads := svc.Threads()
	if threads[0].ID != "t2" {
		t.Errorf("Expected t2 at the front, got %s", threads[0].ID)
	}

	if svc.UnreadTotal() != 2 {
		t.Errorf("Expected unread total 2, got %d", svc.UnreadTotal())
	}
}

// TestOwnMessageDoesNotIncrement validates that echoes of the user's own
// sends update the preview without raising the badge
func TestOwnMessageDoesNotIncrement(t *testing.T) {
	newFakeBackend(t, []api.Thread{thread("t1", "alice", 0)})

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	pushMessage(t, svc, "t1", selfID, "my reply")

	got, _ := svc.Thread("t1")
	if got.UnreadCount != 0 {
		t.Errorf("Expected unread 0 for own message, got %d", got.UnreadCount)
	}
	if got.LastMessage == nil || got.LastMessage.Text != "my reply" {
		t.Error("Expected preview updated")
	}
}

// TestUnknownThreadTriggersRefresh validates that a push for a thread not
// in the list re-fetches instead of fabricating a partial entry
func TestUnknownThreadTriggersRefresh(t *testing.T) {
	fb := newFakeBackend(t, []api.Thread{thread("t1", "alice", 0)})

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	// The server now knows about a new conversation
	fb.setThreads([]api.Thread{
		thread("t9", "carol", 1),
		thread("t1", "alice", 0),
	})

	pushMessage(t, svc, "t9", "carol-id", "hello there")

	got, ok := svc.Thread("t9")
	if !ok {
		t.Fatal("Expected t9 after re-fetch")
	}
	if got.Participant.Username != "carol" {
		t.Errorf("Expected full participant profile, got %q", got.Participant.Username)
	}
}

// TestActiveThreadStaysZero validates that the open conversation
// mark-reads immediately while background threads accumulate
func TestActiveThreadStaysZero(t *testing.T) {
	fb := newFakeBackend(t, []api.Thread{
		thread("t1", "alice", 0),
		thread("t2", "bob", 0),
	})
	fb.setMarkRead(1, false)

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	svc.SetActiveThread("t1")

	pushMessage(t, svc, "t1", "alice-id", "to the open thread")
	pushMessage(t, svc, "t2", "bob-id", "to a background thread")

	active, _ := svc.Thread("t1")
	if active.UnreadCount != 0 {
		t.Errorf("Expected active thread badge 0, got %d", active.UnreadCount)
	}

	background, _ := svc.Thread("t2")
	if background.UnreadCount != 1 {
		t.Errorf("Expected background thread badge 1, got %d", background.UnreadCount)
	}

	fb.mu.Lock()
	calls := fb.markReadCalls
	fb.mu.Unlock()
	if calls < 2 {
		t.Errorf("Expected mark-read on open and on arrival, got %d calls", calls)
	}

	svc.ClearActiveThread()
	pushMessage(t, svc, "t1", "alice-id", "after close")
	closed, _ := svc.Thread("t1")
	if closed.UnreadCount != 1 {
		t.Errorf("Expected badge 1 after closing the thread, got %d", closed.UnreadCount)
	}
}

// TestMarkReadKeepsZeroOnFailure validates that a failed mark-read does
// not re-raise a badge the user already looked at
func TestMarkReadKeepsZeroOnFailure(t *testing.T) {
	fb := newFakeBackend(t, []api.Thread{thread("t1", "alice", 3)})
	fb.setMarkRead(-1, true)

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if _, err := svc.MarkThreadRead("t1"); err == nil {
		t.Fatal("Expected mark-read error")
	}

	got, _ := svc.Thread("t1")
	if got.UnreadCount != 0 {
		t.Errorf("Expected badge kept at 0 after failure, got %d", got.UnreadCount)
	}
}

// TestMarkReadReconcilesWithServerCount validates that the counter settles
// on the server-confirmed count, not the client guess
func TestMarkReadReconcilesWithServerCount(t *testing.T) {
	fb := newFakeBackend(t, []api.Thread{thread("t1", "alice", 5)})
	fb.setMarkRead(3, false)

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	marked, err := svc.MarkThreadRead("t1")
	if err != nil {
		t.Fatalf("MarkThreadRead failed: %v", err)
	}
	if marked != 3 {
		t.Errorf("Expected confirmed count 3, got %d", marked)
	}

	got, _ := svc.Thread("t1")
	if got.UnreadCount != 2 {
		t.Errorf("Expected 2 unread remaining, got %d", got.UnreadCount)
	}

	// Position must not change: mark-read is not activity
	if svc.Threads()[0].ID != "t1" {
		t.Error("Expected thread position unchanged")
	}
}

// TestMarkReadKeepsConcurrentIncrement validates that a message pushed
// while the mark-read confirm is in flight survives the reconcile
func TestMarkReadKeepsConcurrentIncrement(t *testing.T) {
	fb := newFakeBackend(t, []api.Thread{thread("t1", "alice", 5)})
	fb.setMarkRead(3, false)

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	fb.setOnMarkRead(func() {
		pushMessage(t, svc, "t1", "alice-id", "while in flight")
	})

	if _, err := svc.MarkThreadRead("t1"); err != nil {
		t.Fatalf("MarkThreadRead failed: %v", err)
	}

	// 5 zeroed optimistically, 1 arrived mid-flight, 2 left unread by
	// the server
	got, _ := svc.Thread("t1")
	if got.UnreadCount != 3 {
		t.Errorf("Expected unread 3, got %d", got.UnreadCount)
	}
}

// TestBadgeUpdatesPublished validates that unread changes reach bus
// subscribers
func TestBadgeUpdatesPublished(t *testing.T) {
	fb := newFakeBackend(t, []api.Thread{thread("t1", "alice", 0)})
	fb.setMarkRead(1, false)

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	b := bus.New()
	svc.PublishBadges(b)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	badges, unsub := b.Subscribe(bus.KindNotificationBadge, 4)
	defer unsub()

	pushMessage(t, svc, "t1", "alice-id", "ping")

	select {
	case cmd := <-badges:
		update, ok := cmd.Payload.(bus.BadgeUpdate)
		if !ok || update.Unread != 1 {
			t.Errorf("Expected BadgeUpdate{1}, got %v", cmd.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected a badge update for the inbound message")
	}

	if _, err := svc.MarkThreadRead("t1"); err != nil {
		t.Fatalf("MarkThreadRead failed: %v", err)
	}

	select {
	case cmd := <-badges:
		update, ok := cmd.Payload.(bus.BadgeUpdate)
		if !ok || update.Unread != 0 {
			t.Errorf("Expected BadgeUpdate{0}, got %v", cmd.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected a badge update after mark-read")
	}
}

// TestMessagesReadEvent validates the cross-device read receipt handling
func TestMessagesReadEvent(t *testing.T) {
	newFakeBackend(t, []api.Thread{thread("t1", "alice", 4)})

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	// Another participant reading their side must not touch our badge
	otherRead, _ := json.Marshal(realtime.MessagesReadPayload{
		ThreadID: "t1", ReaderID: "alice-id", MessageIDs: []string{"m-t1"},
	})
	svc.handleMessagesRead(otherRead)

	got, _ := svc.Thread("t1")
	if got.UnreadCount != 4 {
		t.Errorf("Expected badge unchanged at 4, got %d", got.UnreadCount)
	}
	if got.LastMessage == nil || !got.LastMessage.IsRead {
		t.Error("Expected last message flagged read")
	}

	// Our own read on another device zeroes the badge, idempotently
	selfRead, _ := json.Marshal(realtime.MessagesReadPayload{
		ThreadID: "t1", ReaderID: selfID,
	})
	svc.handleMessagesRead(selfRead)
	svc.handleMessagesRead(selfRead)

	got, _ = svc.Thread("t1")
	if got.UnreadCount != 0 {
		t.Errorf("Expected badge 0 after own read receipt, got %d", got.UnreadCount)
	}
}

// TestMessageDeletedRefreshesWhenPreviewStale validates that deleting the
// visible last message re-fetches the summary
func TestMessageDeletedRefreshesWhenPreviewStale(t *testing.T) {
	fb := newFakeBackend(t, []api.Thread{thread("t1", "alice", 0)})

	svc := NewConversationService(realtime.NewClient(realtime.DefaultConfig()), selfID)
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	fb.mu.Lock()
	before := fb.refreshCalls
	fb.mu.Unlock()

	// Deleting some other message leaves the preview intact: no fetch
	otherDeleted, _ := json.Marshal(realtime.MessageDeletedPayload{
		MessageID: "m-unrelated", ThreadID: "t1",
	})
	svc.handleMessageDeleted(otherDeleted)

	fb.mu.Lock()
	after := fb.refreshCalls
	fb.mu.Unlock()
	if after != before {
		t.Errorf("Expected no refresh for an invisible delete, got %d extra", after-before)
	}

	// Deleting the preview message forces one
	lastDeleted, _ := json.Marshal(realtime.MessageDeletedPayload{
		MessageID: "m-t1", ThreadID: "t1",
	})
	svc.handleMessageDeleted(lastDeleted)

	fb.mu.Lock()
	final := fb.refreshCalls
	fb.mu.Unlock()
	if final != after+1 {
		t.Errorf("Expected one refresh after preview delete, got %d", final-after)
	}
}
