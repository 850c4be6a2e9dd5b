package service

import (
	"fmt"
	"sync"

	json "github.com/json-iterator/go"
	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
	"github.com/lumen-hq/lumen-cli/pkg/realtime"
	"github.com/lumen-hq/lumen-cli/pkg/reconcile"
)

// NotificationService keeps the notification list consistent with pushed
// events, same merge contract as conversations: update known entries in
// place, re-fetch for unknown ones.
type NotificationService struct {
	rt *realtime.Client

	items *reconcile.List[api.Notification]

	mu     sync.Mutex
	unsubs []func()

	pageSize int
}

// NewNotificationService creates a notification service bound to a
// realtime client
func NewNotificationService(rt *realtime.Client) *NotificationService {
	return &NotificationService{
		rt:       rt,
		items:    reconcile.NewList[api.Notification](),
		pageSize: 50,
	}
}

// Start fetches the baseline and subscribes to notification pushes
func (s *NotificationService) Start() error {
	if err := s.Refresh(); err != nil {
		return err
	}

	s.mu.Lock()
	s.unsubs = append(s.unsubs,
		s.rt.On(realtime.EventNotification, s.handleNotification),
	)
	s.mu.Unlock()

	return nil
}

// Stop unsubscribes from all events, symmetric with Start
func (s *NotificationService) Stop() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
}

// Refresh replaces the local list with a fresh REST baseline
func (s *NotificationService) Refresh() error {
	resp, err := api.GetNotifications(1, s.pageSize)
	if err != nil {
		return err
	}
	s.items.ReplaceAll(resp.Notifications)
	return nil
}

// Notifications returns the notifications, most recent first
func (s *NotificationService) Notifications() []api.Notification {
	return s.items.Items()
}

// UnreadCount counts locally held unread notifications
func (s *NotificationService) UnreadCount() int {
	count := 0
	for _, n := range s.items.Items() {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkAsRead flips the read flag optimistically and confirms with the
// server. The flag is not rolled back on failure: flicking an item back to
// unread after the user saw it would only confuse.
func (s *NotificationService) MarkAsRead(notificationID string) error {
	s.items.Update(notificationID, func(n *api.Notification) {
		n.IsRead = true
	})

	if err := api.MarkNotificationAsRead(notificationID); err != nil {
		logger.Debug("Mark notification read failed, keeping read flag", "notification_id", notificationID, "error", err)
		return err
	}
	return nil
}

// MarkAllAsRead flips every read flag optimistically and confirms
func (s *NotificationService) MarkAllAsRead() error {
	for _, n := range s.items.Items() {
		s.items.Update(n.ID, func(n *api.Notification) {
			n.IsRead = true
		})
	}

	return api.MarkAllNotificationsAsRead()
}

// ListNotifications fetches and displays a page of notifications
func (s *NotificationService) ListNotifications(page, pageSize int) error {
	logger.Debug("Listing notifications", "page", page)

	resp, err := api.GetNotifications(page, pageSize)
	if err != nil {
		return err
	}

	if len(resp.Notifications) == 0 {
		fmt.Println("No notifications")
		return nil
	}

	for _, n := range resp.Notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Printf("%s [%s] @%s %s (%s)\n",
			marker, n.Type, n.Actor.Username, n.Text,
			n.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("\nPage %d of %d total\n", resp.Page, resp.TotalCount)

	return nil
}

// ShowUnreadCount fetches and displays the server-side unread count
func (s *NotificationService) ShowUnreadCount() error {
	count, err := api.GetUnreadNotificationCount()
	if err != nil {
		return err
	}

	if count == 0 {
		formatter.PrintInfo("No unread notifications")
	} else {
		formatter.PrintInfo("%d unread notification(s)", count)
	}
	return nil
}

func (s *NotificationService) handleNotification(payload json.RawMessage) {
	var evt realtime.NotificationPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		logger.Error("Bad notification payload", "error", err)
		return
	}

	// Known id means a re-delivery; the update is a no-op either way.
	known := s.items.Upsert(evt.NotificationID, nil)
	if !known {
		// Push payloads carry actor ids, not actor profiles; fetch the
		// joined entry.
		if err := s.Refresh(); err != nil {
			logger.Error("Notification re-fetch failed", "error", err)
		}
	}
}
