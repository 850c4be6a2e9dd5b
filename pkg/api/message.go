package api

import (
	"fmt"

	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// MarkReadResponse carries the number of messages the server actually
// flipped to read. Unread counters are decremented by this confirmed count,
// never by a client-side guess.
type MarkReadResponse struct {
	MarkedCount int `json:"marked_count"`
}

// SendMessage sends a direct message to a user
func SendMessage(req SendMessageRequest) (*Message, error) {
	logger.Debug("Sending message", "recipient_id", req.RecipientID)

	var response struct {
		Message Message `json:"message"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Post("/api/v1/messages")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.Message, nil
}

// GetConversations retrieves conversation summaries ordered by last activity
func GetConversations(page, pageSize int) (*ThreadListResponse, error) {
	logger.Debug("Fetching conversations", "page", page)

	var response ThreadListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get("/api/v1/messages/conversations")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetUserThread retrieves the message history with a specific user
func GetUserThread(userID string, page, pageSize int) (*MessageListResponse, error) {
	logger.Debug("Fetching messages with user", "user_id", userID)

	var response MessageListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/messages/user/%s", userID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// DeleteMessage deletes a message
func DeleteMessage(messageID string) error {
	logger.Debug("Deleting message", "message_id", messageID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/messages/%s", messageID))

	return CheckResponse(resp, err)
}

// MarkThreadRead marks all messages in a thread as read and returns the
// server-confirmed count
func MarkThreadRead(threadID string) (*MarkReadResponse, error) {
	logger.Debug("Marking thread as read", "thread_id", threadID)

	var response MarkReadResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Post(fmt.Sprintf("/api/v1/messages/%s/mark-read", threadID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetUnreadMessageCount gets the total count of unread messages
func GetUnreadMessageCount() (int, error) {
	logger.Debug("Fetching unread message count")

	var response struct {
		UnreadCount int `json:"unread_count"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/v1/messages/unread-count")

	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}

	return response.UnreadCount, nil
}
