package service

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/credentials"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// AdminService handles moderation commands. Every operation checks the
// cached admin flag before hitting the API so non-admins get a clear
// message instead of a 403.
type AdminService struct{}

// NewAdminService creates a new admin service
func NewAdminService() *AdminService {
	return &AdminService{}
}

func (s *AdminService) requireAdmin() error {
	creds, err := credentials.Load()
	if err != nil || creds == nil {
		return fmt.Errorf("not logged in")
	}
	if !creds.IsAdmin {
		return fmt.Errorf("admin privileges required")
	}
	return nil
}

// ShowStats displays platform aggregate statistics
func (s *AdminService) ShowStats() error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	stats, err := api.GetAdminStats()
	if err != nil {
		return err
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Total users":        stats.TotalUsers,
		"Active users":       stats.ActiveUsers,
		"Total posts":        stats.TotalPosts,
		"Total comments":     stats.TotalComments,
		"Total messages":     stats.TotalMessages,
		"Open reports":       stats.OpenReports,
		"Suspended accounts": stats.SuspendedAccounts,
	})

	return nil
}

// ListReports displays open moderation reports
func (s *AdminService) ListReports(page, pageSize int) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	reports, err := api.GetReports(page, pageSize)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Println("No open reports")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tCONTENT\tREASON\tREPORTER\tSTATUS")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t@%s\t%s\n",
			r.ID, r.ContentType, r.ContentID, r.Reason,
			r.Reporter.Username, r.Status)
	}
	return w.Flush()
}

// ResolveReport closes a report with an action (dismiss, remove_content,
// suspend_user)
func (s *AdminService) ResolveReport(reportID, action string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	switch action {
	case "dismiss", "remove_content", "suspend_user":
	default:
		return fmt.Errorf("unknown action %q (want dismiss, remove_content, or suspend_user)", action)
	}

	logger.Info("Resolving report", "report_id", reportID, "action", action)

	if err := api.ResolveReport(reportID, action); err != nil {
		return err
	}
	formatter.PrintSuccess("Report %s resolved (%s)", reportID, action)
	return nil
}

// SuspendUser suspends a user account by username
func (s *AdminService) SuspendUser(username, reason string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}
	if user.IsSuspended {
		formatter.PrintInfo("@%s is already suspended", username)
		return nil
	}

	if err := api.SuspendUser(user.ID, reason); err != nil {
		return err
	}
	formatter.PrintSuccess("Suspended @%s", username)
	return nil
}

// UnsuspendUser lifts a suspension by username
func (s *AdminService) UnsuspendUser(username string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}

	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}

	if err := api.UnsuspendUser(user.ID); err != nil {
		return err
	}
	formatter.PrintSuccess("Suspension lifted for @%s", username)
	return nil
}
