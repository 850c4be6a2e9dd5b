package realtime

import (
	"time"

	json "github.com/json-iterator/go"
)

// EventType names a server-pushed event category
type EventType string

// Server-originated events
const (
	EventNewMessage        EventType = "new_message"
	EventMessagesRead      EventType = "messages_read"
	EventMessageDeleted    EventType = "message_deleted"
	EventTypingStart       EventType = "typing_start"
	EventTypingStop        EventType = "typing_stop"
	EventNewPost           EventType = "new_post"
	EventPostUpdated       EventType = "post_updated"
	EventPostDeleted       EventType = "post_deleted"
	EventNewComment        EventType = "new_comment"
	EventCommentDeleted    EventType = "comment_deleted"
	EventNewLike           EventType = "new_like"
	EventNewFollower       EventType = "new_follower"
	EventNotification      EventType = "notification"
	EventScheduledPostLive EventType = "scheduled_post_published"
	EventUserOnline        EventType = "user_online"
	EventUserOffline       EventType = "user_offline"
	EventOnlineUsers       EventType = "online_users"
	EventPong              EventType = "pong"
	EventError             EventType = "error"
)

// Client-originated signals
const (
	SignalJoin           EventType = "join"
	SignalGetOnlineUsers EventType = "get_online_users"
	SignalTypingStart    EventType = "typing_start"
	SignalTypingStop     EventType = "typing_stop"
	SignalHeartbeat      EventType = "heartbeat"
)

// Envelope is the wire format for both directions. Payload stays raw so
// each consumer decodes its own typed view.
type Envelope struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Typed payloads for the pushed events consumers care about.

type MessagePayload struct {
	MessageID      string    `json:"message_id"`
	ThreadID       string    `json:"thread_id"`
	SenderID       string    `json:"sender_id"`
	RecipientID    string    `json:"recipient_id"`
	Text           string    `json:"text"`
	MediaURLs      []string  `json:"media_urls,omitempty"`
	ReplyToStoryID string    `json:"reply_to_story_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type MessagesReadPayload struct {
	ThreadID   string   `json:"thread_id"`
	ReaderID   string   `json:"reader_id"`
	MessageIDs []string `json:"message_ids"`
}

type MessageDeletedPayload struct {
	MessageID string `json:"message_id"`
	ThreadID  string `json:"thread_id"`
}

type TypingPayload struct {
	UserID   string `json:"user_id"`
	ThreadID string `json:"thread_id"`
}

type PresencePayload struct {
	UserID string `json:"user_id"`
}

type OnlineUsersPayload struct {
	UserIDs []string `json:"user_ids"`
}

type NotificationPayload struct {
	NotificationID string    `json:"notification_id"`
	Type           string    `json:"type"`
	ActorID        string    `json:"actor_id"`
	TargetID       string    `json:"target_id,omitempty"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

type PostPayload struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
}

type CommentPayload struct {
	CommentID string `json:"comment_id"`
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
}

type LikePayload struct {
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
	LikeCount int    `json:"like_count"`
}

type FollowerPayload struct {
	FollowerID string `json:"follower_id"`
}

type JoinPayload struct {
	UserID string `json:"user_id"`
}
