package api

import (
	"fmt"

	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// ReportContent reports content (post, comment, message, or user) for
// moderation review
func ReportContent(contentType, contentID, reason, description string) error {
	logger.Debug("Reporting content", "type", contentType, "id", contentID, "reason", reason)

	if reason == "" {
		return fmt.Errorf("report reason is required")
	}

	reqBody := map[string]string{
		"content_type": contentType,
		"content_id":   contentID,
		"reason":       reason,
		"description":  description,
	}

	resp, err := client.GetClient().
		R().
		SetBody(reqBody).
		Post("/api/v1/reports")

	return CheckResponse(resp, err)
}

// ReportPost reports a post
func ReportPost(postID, reason, description string) error {
	return ReportContent("post", postID, reason, description)
}

// ReportUser reports a user
func ReportUser(userID, reason, description string) error {
	return ReportContent("user", userID, reason, description)
}
