package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	json "github.com/json-iterator/go"
	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/bus"
	"github.com/lumen-hq/lumen-cli/pkg/credentials"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
	"github.com/lumen-hq/lumen-cli/pkg/presence"
	"github.com/lumen-hq/lumen-cli/pkg/realtime"
)

// RealtimeService owns the realtime wiring: it connects the channel from
// the stored session, feeds the presence tracker and typing tracker, and
// runs the conversation and notification reconcilers. Only this service
// connects or disconnects the channel.
type RealtimeService struct {
	rt       *realtime.Client
	presence *presence.Tracker
	typing   *TypingTracker
	convs    *ConversationService
	notifs   *NotificationService
	commands *bus.Bus

	unsubs []func()
}

// NewRealtimeService creates the realtime wiring around an injected client
func NewRealtimeService(rt *realtime.Client) *RealtimeService {
	return &RealtimeService{
		rt:       rt,
		presence: presence.NewTracker(),
		typing:   NewTypingTracker(),
		commands: bus.New(),
	}
}

// Presence returns the presence tracker (read-only for callers)
func (s *RealtimeService) Presence() *presence.Tracker {
	return s.presence
}

// Typing returns the typing tracker
func (s *RealtimeService) Typing() *TypingTracker {
	return s.typing
}

// Conversations returns the conversation reconciler, nil before Start
func (s *RealtimeService) Conversations() *ConversationService {
	return s.convs
}

// Notifications returns the notification reconciler, nil before Start
func (s *RealtimeService) Notifications() *NotificationService {
	return s.notifs
}

// Commands returns the command bus for cross-component signaling
func (s *RealtimeService) Commands() *bus.Bus {
	return s.commands
}

// Start connects the channel from stored credentials and wires every
// consumer. Missing credentials make this a silent no-op, matching the
// connection guard.
func (s *RealtimeService) Start() error {
	creds, err := credentials.Load()
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	if !creds.CanConnect() {
		logger.Debug("No session, skipping realtime connect")
		return nil
	}

	if err := s.rt.Connect(creds.UserID, creds.AccessToken); err != nil {
		return fmt.Errorf("failed to connect realtime channel: %w", err)
	}

	// Presence: join/leave events mutate the set, the snapshot replaces
	// it, and a reconnect clears it until a fresh snapshot arrives.
	s.unsubs = append(s.unsubs,
		s.rt.On(realtime.EventUserOnline, s.handleUserOnline),
		s.rt.On(realtime.EventUserOffline, s.handleUserOffline),
		s.rt.On(realtime.EventOnlineUsers, s.handleOnlineUsers),
		s.rt.On(realtime.EventTypingStart, s.handleTypingStart),
		s.rt.On(realtime.EventTypingStop, s.handleTypingStop),
		s.rt.OnReconnect(func() {
			s.presence.Reset()
			s.typing.Reset()
		}),
	)

	s.convs = NewConversationService(s.rt, creds.UserID)
	s.convs.PublishBadges(s.commands)
	if err := s.convs.Start(); err != nil {
		logger.Error("Conversation baseline fetch failed", "error", err)
	}

	s.notifs = NewNotificationService(s.rt)
	if err := s.notifs.Start(); err != nil {
		logger.Error("Notification baseline fetch failed", "error", err)
	}

	return nil
}

// Stop tears everything down, symmetric with Start
func (s *RealtimeService) Stop() {
	for _, u := range s.unsubs {
		u()
	}
	s.unsubs = nil

	if s.convs != nil {
		s.convs.Stop()
	}
	if s.notifs != nil {
		s.notifs.Stop()
	}

	s.rt.Disconnect()
}

// Watch streams realtime activity to the terminal until interrupted
func (s *RealtimeService) Watch(ctx context.Context) error {
	logger.Debug("Starting realtime watch")

	currentUser, err := api.GetCurrentUser()
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	if err := s.Start(); err != nil {
		return err
	}
	defer s.Stop()

	if !s.rt.IsConnected() {
		return fmt.Errorf("no realtime session - log in first")
	}

	fmt.Printf("\n")
	formatter.PrintInfo("Watching live activity")
	fmt.Printf("Connected as: @%s\n", currentUser.Username)
	fmt.Printf("Press Ctrl+C to stop\n")
	fmt.Printf("%s\n\n", strings.Repeat("-", 60))

	unsubs := []func(){
		s.rt.On(realtime.EventNotification, s.printNotification),
		s.rt.On(realtime.EventNewMessage, s.printNewMessage),
		s.rt.On(realtime.EventNewPost, s.printNewPost),
		s.rt.On(realtime.EventNewLike, s.printNewLike),
		s.rt.On(realtime.EventNewComment, s.printNewComment),
		s.rt.On(realtime.EventNewFollower, s.printNewFollower),
		s.rt.On(realtime.EventScheduledPostLive, s.printScheduledPost),
		s.rt.On(realtime.EventUserOnline, s.printUserOnline),
		s.rt.On(realtime.EventUserOffline, s.printUserOffline),
	}
	defer func() {
		for _, u := range unsubs {
			u()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	cmds, unsubBus := s.commands.Subscribe("", 16)
	defer unsubBus()

	for {
		select {
		case <-sigChan:
			fmt.Printf("\n")
			formatter.PrintSuccess("Watch stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-cmds:
			switch payload := cmd.Payload.(type) {
			case bus.BadgeUpdate:
				s.printEvent("unread", fmt.Sprintf("%d unread message(s)", payload.Unread))
			case bus.ThreadActivity:
				s.printEvent("activity", fmt.Sprintf("conversation with %s updated", payload.UserID))
			}
		}
	}
}

// ShowOnline connects briefly, waits for the roster snapshot, and prints
// who is online right now
func (s *RealtimeService) ShowOnline(wait time.Duration) error {
	if err := s.Start(); err != nil {
		return err
	}
	defer s.Stop()

	if !s.rt.IsConnected() {
		return fmt.Errorf("no realtime session - log in first")
	}

	// The snapshot arrives shortly after the join announcement
	deadline := time.After(wait)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

waitLoop:
	for {
		select {
		case <-deadline:
			break waitLoop
		case <-tick.C:
			if s.presence.Count() > 0 {
				break waitLoop
			}
		}
	}

	online := s.presence.Snapshot()
	if len(online) == 0 {
		fmt.Println("Nobody else is online")
		return nil
	}

	fmt.Printf("%d user(s) online:\n", len(online))
	for _, id := range online {
		fmt.Printf("  %s\n", id)
	}
	return nil
}

// Presence and typing handlers

func (s *RealtimeService) handleUserOnline(payload json.RawMessage) {
	var evt realtime.PresencePayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.presence.SetOnline(evt.UserID)
}

func (s *RealtimeService) handleUserOffline(payload json.RawMessage) {
	var evt realtime.PresencePayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.presence.SetOffline(evt.UserID)
}

func (s *RealtimeService) handleOnlineUsers(payload json.RawMessage) {
	var evt realtime.OnlineUsersPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.presence.SetRoster(evt.UserIDs)
}

func (s *RealtimeService) handleTypingStart(payload json.RawMessage) {
	var evt realtime.TypingPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.typing.SetTyping(evt.ThreadID, evt.UserID)
}

func (s *RealtimeService) handleTypingStop(payload json.RawMessage) {
	var evt realtime.TypingPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.typing.ClearTyping(evt.ThreadID, evt.UserID)
}

// Watch-mode printers

func (s *RealtimeService) printNotification(payload json.RawMessage) {
	var evt realtime.NotificationPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.printEvent("notification", evt.Text)
}

func (s *RealtimeService) printNewMessage(payload json.RawMessage) {
	var evt realtime.MessagePayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.printEvent("message", truncate(evt.Text, 60))
	s.commands.Publish(bus.Command{
		Kind:    bus.KindThreadActivity,
		Payload: bus.ThreadActivity{ThreadID: evt.ThreadID, UserID: evt.SenderID},
	})
}

func (s *RealtimeService) printNewPost(payload json.RawMessage) {
	var evt realtime.PostPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.printEvent("new_post", fmt.Sprintf("post %s published", evt.PostID))
}

func (s *RealtimeService) printNewLike(payload json.RawMessage) {
	var evt realtime.LikePayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.printEvent("like", fmt.Sprintf("post %s now has %d likes", evt.PostID, evt.LikeCount))
}

func (s *RealtimeService) printNewComment(payload json.RawMessage) {
	var evt realtime.CommentPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.printEvent("comment", fmt.Sprintf("new comment on post %s", evt.PostID))
}

func (s *RealtimeService) printNewFollower(payload json.RawMessage) {
	var evt realtime.FollowerPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.printEvent("follower", fmt.Sprintf("user %s followed you", evt.FollowerID))
}

func (s *RealtimeService) printScheduledPost(payload json.RawMessage) {
	var evt realtime.PostPayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.printEvent("scheduled", fmt.Sprintf("scheduled post %s went live", evt.PostID))
}

func (s *RealtimeService) printUserOnline(payload json.RawMessage) {
	var evt realtime.PresencePayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.printEvent("presence", fmt.Sprintf("user %s is online", evt.UserID))
}

func (s *RealtimeService) printUserOffline(payload json.RawMessage) {
	var evt realtime.PresencePayload
	if err := json.Unmarshal(payload, &evt); err != nil {
		return
	}
	s.printEvent("presence", fmt.Sprintf("user %s went offline", evt.UserID))
}

func (s *RealtimeService) printEvent(kind, message string) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("[%s] %-12s %s\n", timestamp, kind, message)
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
