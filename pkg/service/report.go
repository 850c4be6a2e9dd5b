package service

import (
	"fmt"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
)

// ReportService handles user-facing moderation reports
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// ReportPost files a report against a post
func (s *ReportService) ReportPost(postID, reason, description string) error {
	if reason == "" {
		return fmt.Errorf("a reason is required")
	}
	if err := api.ReportPost(postID, reason, description); err != nil {
		return err
	}
	formatter.PrintSuccess("Report filed. Our moderators will review it.")
	return nil
}

// ReportUser files a report against a user by username
func (s *ReportService) ReportUser(username, reason, description string) error {
	if reason == "" {
		return fmt.Errorf("a reason is required")
	}
	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}
	if err := api.ReportUser(user.ID, reason, description); err != nil {
		return err
	}
	formatter.PrintSuccess("Report filed. Our moderators will review it.")
	return nil
}
