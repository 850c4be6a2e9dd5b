package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/realtime"
)

type notifBackend struct {
	srv *httptest.Server

	mu            sync.Mutex
	notifications []api.Notification
	failMarkRead  bool
	refreshCalls  int
}

func newNotifBackend(t *testing.T, notifications []api.Notification) *notifBackend {
	t.Helper()
	nb := &notifBackend{notifications: notifications}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		nb.mu.Lock()
		nb.refreshCalls++
		resp := api.NotificationListResponse{
			Notifications: nb.notifications,
			TotalCount:    len(nb.notifications),
			Page:          1,
		}
		nb.mu.Unlock()
		json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/api/v1/notifications/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/read") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		nb.mu.Lock()
		fail := nb.failMarkRead
		nb.mu.Unlock()
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(api.ErrorResponse{Code: "internal", Message: "boom"})
			return
		}
		w.Write([]byte("{}"))
	})

	nb.srv = httptest.NewServer(mux)
	t.Cleanup(nb.srv.Close)

	client.Init()
	client.GetClient().SetBaseURL(nb.srv.URL)

	return nb
}

func notification(id string, read bool) api.Notification {
	return api.Notification{
		ID:        id,
		Type:      api.NotificationLike,
		Actor:     api.User{ID: "actor-id", Username: "alice"},
		Text:      "liked your post",
		IsRead:    read,
		CreatedAt: time.Now().Add(-time.Minute),
	}
}

// TestNotificationUnreadCount validates the local unread counter
func TestNotificationUnreadCount(t *testing.T) {
	newNotifBackend(t, []api.Notification{
		notification("n1", false),
		notification("n2", true),
		notification("n3", false),
	})

	svc := NewNotificationService(realtime.NewClient(realtime.DefaultConfig()))
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if svc.UnreadCount() != 2 {
		t.Errorf("Expected 2 unread, got %d", svc.UnreadCount())
	}
}

// TestMarkAsReadKeepsFlagOnFailure validates that a failed confirm does
// not flick the item back to unread
func TestMarkAsReadKeepsFlagOnFailure(t *testing.T) {
	nb := newNotifBackend(t, []api.Notification{notification("n1", false)})
	nb.mu.Lock()
	nb.failMarkRead = true
	nb.mu.Unlock()

	svc := NewNotificationService(realtime.NewClient(realtime.DefaultConfig()))
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if err := svc.MarkAsRead("n1"); err == nil {
		t.Fatal("Expected mark-read error")
	}

	items := svc.Notifications()
	if !items[0].IsRead {
		t.Error("Expected read flag kept despite failure")
	}
	if svc.UnreadCount() != 0 {
		t.Errorf("Expected 0 unread, got %d", svc.UnreadCount())
	}
}

// TestPushedNotificationKnownIsNoop validates that a re-delivered push for
// a known id does not re-fetch
func TestPushedNotificationKnownIsNoop(t *testing.T) {
	nb := newNotifBackend(t, []api.Notification{notification("n1", false)})

	svc := NewNotificationService(realtime.NewClient(realtime.DefaultConfig()))
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	nb.mu.Lock()
	before := nb.refreshCalls
	nb.mu.Unlock()

	payload, _ := json.Marshal(realtime.NotificationPayload{NotificationID: "n1"})
	svc.handleNotification(payload)

	nb.mu.Lock()
	after := nb.refreshCalls
	nb.mu.Unlock()
	if after != before {
		t.Errorf("Expected no refresh for a known notification, got %d extra", after-before)
	}
}

// TestPushedNotificationUnknownRefreshes validates that an unknown push
// pulls the joined entry from the server
func TestPushedNotificationUnknownRefreshes(t *testing.T) {
	nb := newNotifBackend(t, []api.Notification{notification("n1", false)})

	svc := NewNotificationService(realtime.NewClient(realtime.DefaultConfig()))
	if err := svc.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	nb.mu.Lock()
	nb.notifications = []api.Notification{
		notification("n2", false),
		notification("n1", false),
	}
	nb.mu.Unlock()

	payload, _ := json.Marshal(realtime.NotificationPayload{NotificationID: "n2"})
	svc.handleNotification(payload)

	items := svc.Notifications()
	if len(items) != 2 || items[0].ID != "n2" {
		t.Errorf("Expected n2 fetched to the front, got %v", items)
	}
	if items[0].Actor.Username != "alice" {
		t.Error("Expected joined actor profile from the fetch")
	}
}

// TestTypingTrackerTTL validates typing state and its expiry
func TestTypingTrackerTTL(t *testing.T) {
	tr := NewTypingTracker()

	current := time.Now()
	tr.now = func() time.Time { return current }

	tr.SetTyping("t1", "alice")
	if !tr.IsTyping("t1", "alice") {
		t.Error("Expected alice typing in t1")
	}
	if tr.IsTyping("t2", "alice") {
		t.Error("Typing state must be per-thread")
	}

	// A stop event clears immediately
	tr.ClearTyping("t1", "alice")
	if tr.IsTyping("t1", "alice") {
		t.Error("Expected cleared after stop")
	}

	// Without a stop event the indicator expires
	tr.SetTyping("t1", "bob")
	current = current.Add(typingTTL + time.Second)
	if tr.IsTyping("t1", "bob") {
		t.Error("Expected typing state expired after TTL")
	}

	// Reset wipes everything, for reconnects
	tr.SetTyping("t1", "carol")
	tr.Reset()
	if tr.IsTyping("t1", "carol") {
		t.Error("Expected empty tracker after reset")
	}
}
