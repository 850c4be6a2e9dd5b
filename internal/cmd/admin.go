package cmd

import (
	"strings"

	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Platform administration commands",
	Long:  "Moderation and administration. Requires an admin account.",
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show platform statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		adminSvc := service.NewAdminService()
		return adminSvc.ShowStats()
	},
}

var adminReportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List open moderation reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		adminSvc := service.NewAdminService()
		return adminSvc.ListReports(pageFlag, pageSizeFlag)
	},
}

var adminResolveCmd = &cobra.Command{
	Use:   "resolve <report-id> <action>",
	Short: "Resolve a report (dismiss, remove_content, suspend_user)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminSvc := service.NewAdminService()
		return adminSvc.ResolveReport(args[0], args[1])
	},
}

var adminSuspendCmd = &cobra.Command{
	Use:   "suspend <username> <reason>",
	Short: "Suspend a user account",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminSvc := service.NewAdminService()
		return adminSvc.SuspendUser(args[0], strings.Join(args[1:], " "))
	},
}

var adminUnsuspendCmd = &cobra.Command{
	Use:   "unsuspend <username>",
	Short: "Lift a user suspension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminSvc := service.NewAdminService()
		return adminSvc.UnsuspendUser(args[0])
	},
}

func init() {
	adminReportsCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	adminReportsCmd.Flags().IntVar(&pageSizeFlag, "page-size", 20, "Results per page")

	adminCmd.AddCommand(adminStatsCmd)
	adminCmd.AddCommand(adminReportsCmd)
	adminCmd.AddCommand(adminResolveCmd)
	adminCmd.AddCommand(adminSuspendCmd)
	adminCmd.AddCommand(adminUnsuspendCmd)
}
