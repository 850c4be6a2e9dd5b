package api

import "time"

// Auth types

type RegisterRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type User struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	DisplayName    string     `json:"display_name"`
	Bio            string     `json:"bio"`
	AvatarURL      string     `json:"avatar_url"`
	FollowerCount  int        `json:"follower_count"`
	FollowingCount int        `json:"following_count"`
	PostCount      int        `json:"post_count"`
	IsFollowing    bool       `json:"is_following"`
	EmailVerified  bool       `json:"email_verified"`
	IsAdmin        bool       `json:"is_admin"`
	IsPrivate      bool       `json:"is_private"`
	IsSuspended    bool       `json:"is_suspended"`
	LastSeenAt     *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ProfileResponse struct {
	User User `json:"user"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Post types

type Post struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Author       User      `json:"author"`
	Text         string    `json:"text"`
	MediaURLs    []string  `json:"media_urls,omitempty"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	SaveCount    int       `json:"save_count"`
	IsLiked      bool      `json:"is_liked"`
	IsSaved      bool      `json:"is_saved"`
	IsScheduled  bool      `json:"is_scheduled"`
	PublishAt    *time.Time `json:"publish_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PostListResponse struct {
	Posts      []Post `json:"posts"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

type CreatePostRequest struct {
	Text      string     `json:"text"`
	MediaURLs []string   `json:"media_urls,omitempty"`
	PublishAt *time.Time `json:"publish_at,omitempty"`
}

// Comment types

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Author    User      `json:"author"`
	Text      string    `json:"text"`
	LikeCount int       `json:"like_count"`
	IsLiked   bool      `json:"is_liked"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Comments   []Comment `json:"comments"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

// Message types

// Message is immutable once created except for the read flag.
type Message struct {
	ID               string    `json:"id"`
	SenderID         string    `json:"sender_id"`
	RecipientID      string    `json:"recipient_id"`
	Sender           User      `json:"sender"`
	Text             string    `json:"text"`
	MediaURLs        []string  `json:"media_urls,omitempty"`
	ReplyToStoryID   string    `json:"reply_to_story_id,omitempty"`
	IsRead           bool      `json:"is_read"`
	IsDeleted        bool      `json:"is_deleted"`
	CreatedAt        time.Time `json:"created_at"`
}

// Thread is one conversation summary per counterpart user. The server
// keeps threads ordered by last activity; the client preserves that
// ordering when merging pushed events.
type Thread struct {
	ID           string    `json:"id"`
	Participant  User      `json:"participant"`
	LastMessage  *Message  `json:"last_message"`
	UnreadCount  int       `json:"unread_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Key returns the thread's reconciliation key
func (t Thread) Key() string { return t.ID }

type MessageListResponse struct {
	Messages   []Message `json:"messages"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

type ThreadListResponse struct {
	Threads    []Thread `json:"threads"`
	TotalCount int      `json:"total_count"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
}

type SendMessageRequest struct {
	RecipientID    string   `json:"recipient_id"`
	Text           string   `json:"text"`
	MediaURLs      []string `json:"media_urls,omitempty"`
	ReplyToStoryID string   `json:"reply_to_story_id,omitempty"`
}

// Notification types

type NotificationType string

const (
	NotificationLike          NotificationType = "like"
	NotificationComment       NotificationType = "comment"
	NotificationFollow        NotificationType = "follow"
	NotificationMention       NotificationType = "mention"
	NotificationMessage       NotificationType = "message"
	NotificationPostPublished NotificationType = "post_published"
	NotificationAdmin         NotificationType = "admin"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Actor     User             `json:"actor"`
	TargetID  string           `json:"target_id,omitempty"`
	Text      string           `json:"text"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// Key returns the notification's reconciliation key
func (n Notification) Key() string { return n.ID }

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	TotalCount    int            `json:"total_count"`
	Page          int            `json:"page"`
	PageSize      int            `json:"page_size"`
}

// Story types

type Story struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Author    User      `json:"author"`
	MediaURL  string    `json:"media_url"`
	ViewCount int       `json:"view_count"`
	IsViewed  bool      `json:"is_viewed"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type StoryListResponse struct {
	Stories []Story `json:"stories"`
}

// Error envelope

type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
