package api

import (
	"fmt"

	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// AdminStats holds platform aggregate statistics
type AdminStats struct {
	TotalUsers        int `json:"total_users"`
	ActiveUsers       int `json:"active_users"`
	TotalPosts        int `json:"total_posts"`
	TotalComments     int `json:"total_comments"`
	TotalMessages     int `json:"total_messages"`
	OpenReports       int `json:"open_reports"`
	SuspendedAccounts int `json:"suspended_accounts"`
}

// Report is a moderation report as seen by an admin
type Report struct {
	ID          string `json:"id"`
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Reporter    User   `json:"reporter"`
}

// GetAdminStats retrieves platform aggregate statistics
func GetAdminStats() (*AdminStats, error) {
	logger.Debug("Fetching admin stats")

	var response struct {
		Stats AdminStats `json:"stats"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/v1/admin/stats")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.Stats, nil
}

// GetReports retrieves open moderation reports
func GetReports(page, pageSize int) ([]Report, error) {
	logger.Debug("Fetching reports", "page", page)

	var response struct {
		Reports []Report `json:"reports"`
	}

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get("/api/v1/admin/reports")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return response.Reports, nil
}

// ResolveReport closes a moderation report with an action
func ResolveReport(reportID, action string) error {
	logger.Debug("Resolving report", "report_id", reportID, "action", action)

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"action": action}).
		Post(fmt.Sprintf("/api/v1/admin/reports/%s/resolve", reportID))

	return CheckResponse(resp, err)
}

// SuspendUser suspends a user account
func SuspendUser(userID, reason string) error {
	logger.Debug("Suspending user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"reason": reason}).
		Post(fmt.Sprintf("/api/v1/admin/users/%s/suspend", userID))

	return CheckResponse(resp, err)
}

// UnsuspendUser lifts a user suspension
func UnsuspendUser(userID string) error {
	logger.Debug("Unsuspending user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/admin/users/%s/suspend", userID))

	return CheckResponse(resp, err)
}
