package api

import (
	"fmt"

	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// GetNotifications retrieves notifications with pagination
func GetNotifications(page, pageSize int) (*NotificationListResponse, error) {
	logger.Debug("Fetching notifications", "page", page)

	var response NotificationListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get("/api/v1/notifications")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetUnreadNotificationCount retrieves the count of unread notifications
func GetUnreadNotificationCount() (int, error) {
	logger.Debug("Fetching unread notification count")

	var response struct {
		UnreadCount int `json:"unread_count"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/v1/notifications/unread/count")

	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}

	return response.UnreadCount, nil
}

// MarkNotificationAsRead marks a single notification as read
func MarkNotificationAsRead(notificationID string) error {
	logger.Debug("Marking notification as read", "notification_id", notificationID)

	resp, err := client.GetClient().
		R().
		Patch(fmt.Sprintf("/api/v1/notifications/%s/read", notificationID))

	return CheckResponse(resp, err)
}

// MarkAllNotificationsAsRead marks all notifications as read
func MarkAllNotificationsAsRead() error {
	logger.Debug("Marking all notifications as read")

	resp, err := client.GetClient().
		R().
		Patch("/api/v1/notifications/read-all")

	return CheckResponse(resp, err)
}
