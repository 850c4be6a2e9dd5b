package service

import (
	"sync"

	json "github.com/json-iterator/go"
	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/bus"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
	"github.com/lumen-hq/lumen-cli/pkg/realtime"
	"github.com/lumen-hq/lumen-cli/pkg/reconcile"
)

// ConversationService keeps the REST-fetched conversation list consistent
// with pushed message events. A pushed event for a known thread updates it
// in place and moves it to the front; an unknown thread triggers a full
// re-fetch because the push payload lacks the participant profile.
type ConversationService struct {
	rt     *realtime.Client
	selfID string

	threads *reconcile.List[api.Thread]

	mu           sync.Mutex
	activeThread string
	commands     *bus.Bus
	unsubs       []func()

	pageSize int
}

// NewConversationService creates a conversation service bound to a
// realtime client. The client is injected so tests can drive events
// directly.
func NewConversationService(rt *realtime.Client, selfID string) *ConversationService {
	return &ConversationService{
		rt:       rt,
		selfID:   selfID,
		threads:  reconcile.NewList[api.Thread](),
		pageSize: 50,
	}
}

// PublishBadges emits an unread-badge update on the given bus whenever
// the total changes, so display surfaces track it without polling.
func (s *ConversationService) PublishBadges(b *bus.Bus) {
	s.mu.Lock()
	s.commands = b
	s.mu.Unlock()
}

func (s *ConversationService) publishBadge() {
	s.mu.Lock()
	b := s.commands
	s.mu.Unlock()
	if b == nil {
		return
	}
	b.Publish(bus.Command{
		Kind:    bus.KindNotificationBadge,
		Payload: bus.BadgeUpdate{Unread: s.UnreadTotal()},
	})
}

// Start fetches the baseline and subscribes to message events. Stop must
// be called when the consumer goes away, or remounting would double-handle
// every event.
func (s *ConversationService) Start() error {
	if err := s.Refresh(); err != nil {
		return err
	}

	s.mu.Lock()
	s.unsubs = append(s.unsubs,
		s.rt.On(realtime.EventNewMessage, s.handleNewMessage),
		s.rt.On(realtime.EventMessagesRead, s.handleMessagesRead),
		s.rt.On(realtime.EventMessageDeleted, s.handleMessageDeleted),
	)
	s.mu.Unlock()

	return nil
}

// Stop unsubscribes from all events, symmetric with Start
func (s *ConversationService) Stop() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
}

// Refresh replaces the local list with a fresh REST baseline
func (s *ConversationService) Refresh() error {
	resp, err := api.GetConversations(1, s.pageSize)
	if err != nil {
		return err
	}
	s.threads.ReplaceAll(resp.Threads)
	return nil
}

// Threads returns the conversation summaries, most recent first
func (s *ConversationService) Threads() []api.Thread {
	return s.threads.Items()
}

// Thread returns a single conversation summary
func (s *ConversationService) Thread(threadID string) (api.Thread, bool) {
	return s.threads.Get(threadID)
}

// UnreadTotal sums the unread counters across all threads
func (s *ConversationService) UnreadTotal() int {
	total := 0
	for _, t := range s.threads.Items() {
		total += t.UnreadCount
	}
	return total
}

// SetActiveThread marks a thread as open. An open thread mark-reads
// immediately, and keeps doing so for messages that arrive while open, so
// its badge stays at zero while other threads still accumulate.
func (s *ConversationService) SetActiveThread(threadID string) {
	s.mu.Lock()
	s.activeThread = threadID
	s.mu.Unlock()

	if threadID != "" {
		if _, err := s.MarkThreadRead(threadID); err != nil {
			logger.Debug("Mark-read on open failed", "thread_id", threadID, "error", err)
		}
	}
}

// ClearActiveThread marks no thread as open
func (s *ConversationService) ClearActiveThread() {
	s.mu.Lock()
	s.activeThread = ""
	s.mu.Unlock()
}

func (s *ConversationService) isActive(threadID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeThread != "" && s.activeThread == threadID
}

// MarkThreadRead zeroes the unread counter optimistically and confirms
// with the server. The counter is reconciled against the server-confirmed
// count, never a client guess. On failure the zero is kept: re-raising an
// unread badge the user already looked at is worse than a briefly
// optimistic zero.
func (s *ConversationService) MarkThreadRead(threadID string) (int, error) {
	var prev int
	s.threads.Update(threadID, func(t *api.Thread) {
		prev = t.UnreadCount
		t.UnreadCount = 0
	})

	resp, err := api.MarkThreadRead(threadID)
	if err != nil {
		logger.Debug("Mark-read failed, keeping zero badge", "thread_id", threadID, "error", err)
		s.publishBadge()
		return 0, err
	}

	if resp.MarkedCount < prev {
		// Add to the current counter rather than overwrite it: a message
		// pushed between the optimistic zero and this reconcile has
		// already incremented it.
		remaining := prev - resp.MarkedCount
		s.threads.Update(threadID, func(t *api.Thread) {
			t.UnreadCount += remaining
		})
	}

	s.publishBadge()
	return resp.MarkedCount, nil
}

// Event handlers. These run on the realtime read loop and must stay
// idempotent: ordering against the REST baseline is not guaranteed.

func (s *ConversationService) handleNewMessage(payload json.RawMessage) {
	var msg realtime.MessagePayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		logger.Error("Bad new_message payload", "error", err)
		return
	}

	fromSelf := msg.SenderID == s.selfID

	known := s.threads.Upsert(msg.ThreadID, func(t *api.Thread) {
		t.LastMessage = &api.Message{
			ID:             msg.MessageID,
			SenderID:       msg.SenderID,
			RecipientID:    msg.RecipientID,
			Text:           msg.Text,
			MediaURLs:      msg.MediaURLs,
			ReplyToStoryID: msg.ReplyToStoryID,
			CreatedAt:      msg.CreatedAt,
		}
		t.UpdatedAt = msg.CreatedAt
		if !fromSelf {
			t.UnreadCount++
		}
	})

	if !known {
		// The push payload has no participant profile; fetch the full
		// entry rather than rendering a partial one.
		if err := s.Refresh(); err != nil {
			logger.Error("Conversation re-fetch failed", "error", err)
		}
		if !fromSelf {
			s.publishBadge()
		}
		return
	}

	if !fromSelf {
		if s.isActive(msg.ThreadID) {
			if _, err := s.MarkThreadRead(msg.ThreadID); err != nil {
				logger.Debug("Active-thread mark-read failed", "error", err)
			}
		} else {
			s.publishBadge()
		}
	}
}

func (s *ConversationService) handleMessagesRead(payload json.RawMessage) {
	var evt realtime.MessagesReadPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		logger.Error("Bad messages_read payload", "error", err)
		return
	}

	// Idempotent: a duplicate confirm leaves the flag read.
	s.threads.Update(evt.ThreadID, func(t *api.Thread) {
		if t.LastMessage != nil {
			for _, id := range evt.MessageIDs {
				if id == t.LastMessage.ID {
					t.LastMessage.IsRead = true
					break
				}
			}
		}
		if evt.ReaderID == s.selfID {
			t.UnreadCount = 0
		}
	})

	if evt.ReaderID == s.selfID {
		s.publishBadge()
	}
}

func (s *ConversationService) handleMessageDeleted(payload json.RawMessage) {
	var evt realtime.MessageDeletedPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		logger.Error("Bad message_deleted payload", "error", err)
		return
	}

	deletedLast := false
	s.threads.Update(evt.ThreadID, func(t *api.Thread) {
		if t.LastMessage != nil && t.LastMessage.ID == evt.MessageID {
			deletedLast = true
		}
	})

	// Deleting the visible last message leaves the summary stale; the
	// replacement preview requires a fetch.
	if deletedLast {
		if err := s.Refresh(); err != nil {
			logger.Error("Conversation re-fetch failed", "error", err)
		}
	}
}
