package service

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// MessageService handles the direct-messaging commands
type MessageService struct{}

// NewMessageService creates a new message service
func NewMessageService() *MessageService {
	return &MessageService{}
}

// ListConversations displays conversation summaries, most recent first
func (s *MessageService) ListConversations(page, pageSize int) error {
	logger.Debug("Listing conversations", "page", page, "page_size", pageSize)

	resp, err := api.GetConversations(page, pageSize)
	if err != nil {
		return err
	}

	if len(resp.Threads) == 0 {
		fmt.Println("No conversations found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WITH\tLAST MESSAGE\tUNREAD\tWHEN")
	for _, t := range resp.Threads {
		preview := ""
		if t.LastMessage != nil {
			preview = truncate(t.LastMessage.Text, 40)
			if len(t.LastMessage.MediaURLs) > 0 {
				preview = "[media] " + preview
			}
		}
		unread := ""
		if t.UnreadCount > 0 {
			unread = fmt.Sprintf("%d", t.UnreadCount)
		}
		fmt.Fprintf(w, "@%s\t%s\t%s\t%s\n",
			t.Participant.Username, preview, unread,
			t.UpdatedAt.Format("Jan 2 15:04"))
	}
	w.Flush()

	return nil
}

// SendMessage sends a direct message to a user by username
func (s *MessageService) SendMessage(username, text string) error {
	logger.Debug("Sending message", "username", username)

	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}

	msg, err := api.SendMessage(api.SendMessageRequest{
		RecipientID: user.ID,
		Text:        text,
	})
	if err != nil {
		return err
	}

	formatter.PrintSuccess("Message sent!")
	fmt.Printf("To: @%s\n", username)
	fmt.Printf("Sent at: %s\n", msg.CreatedAt.Format("2006-01-02 15:04:05"))

	return nil
}

// ViewUserThread displays the message history with a user and marks it
// read
func (s *MessageService) ViewUserThread(username string, page, pageSize int) error {
	logger.Debug("Viewing thread", "username", username)

	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}

	resp, err := api.GetUserThread(user.ID, page, pageSize)
	if err != nil {
		return err
	}

	if len(resp.Messages) == 0 {
		fmt.Println("No messages in this thread")
		return nil
	}

	// Opening a thread marks it read; the badge is zeroed by the
	// confirmed server count, not by display alone.
	if len(resp.Messages) > 0 {
		threadID := threadIDOf(resp.Messages[0])
		if threadID != "" {
			if _, err := api.MarkThreadRead(threadID); err != nil {
				logger.Debug("Mark-read failed", "error", err)
			}
		}
	}

	fmt.Printf("\nConversation with @%s\n", username)
	fmt.Println(strings.Repeat("-", 50))
	for i := len(resp.Messages) - 1; i >= 0; i-- {
		m := resp.Messages[i]
		label := m.Sender.Username
		if label == "" {
			label = m.SenderID
		}
		line := m.Text
		if m.ReplyToStoryID != "" {
			line = "[story reply] " + line
		}
		if len(m.MediaURLs) > 0 {
			line += fmt.Sprintf(" (%d attachment(s))", len(m.MediaURLs))
		}
		fmt.Printf("[%s] @%s: %s\n", m.CreatedAt.Format("15:04"), label, line)
	}

	return nil
}

// MarkAsRead marks the thread with a user as read
func (s *MessageService) MarkAsRead(username string) error {
	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}

	resp, err := api.GetUserThread(user.ID, 1, 1)
	if err != nil {
		return err
	}
	if len(resp.Messages) == 0 {
		fmt.Println("No messages to mark")
		return nil
	}

	marked, err := api.MarkThreadRead(threadIDOf(resp.Messages[0]))
	if err != nil {
		return err
	}

	formatter.PrintSuccess("Marked %d message(s) as read", marked.MarkedCount)
	return nil
}

// DeleteMessage deletes a message by id
func (s *MessageService) DeleteMessage(messageID string) error {
	if err := api.DeleteMessage(messageID); err != nil {
		return err
	}
	formatter.PrintSuccess("Message deleted")
	return nil
}

// ShowUnreadCount displays the total unread message count
func (s *MessageService) ShowUnreadCount() error {
	count, err := api.GetUnreadMessageCount()
	if err != nil {
		return err
	}

	if count == 0 {
		formatter.PrintInfo("No unread messages")
	} else {
		formatter.PrintInfo("%d unread message(s)", count)
	}
	return nil
}

// threadIDOf derives the thread key for a message. The server keys threads
// by the counterpart pair, carried on each message.
func threadIDOf(m api.Message) string {
	if m.SenderID < m.RecipientID {
		return m.SenderID + ":" + m.RecipientID
	}
	return m.RecipientID + ":" + m.SenderID
}
