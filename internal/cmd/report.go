package cmd

import (
	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

var reportDescription string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report content or users to moderators",
}

var reportPostCmd = &cobra.Command{
	Use:   "post <post-id> <reason>",
	Short: "Report a post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reportSvc := service.NewReportService()
		return reportSvc.ReportPost(args[0], args[1], reportDescription)
	},
}

var reportUserCmd = &cobra.Command{
	Use:   "user <username> <reason>",
	Short: "Report a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reportSvc := service.NewReportService()
		return reportSvc.ReportUser(args[0], args[1], reportDescription)
	},
}

func init() {
	reportPostCmd.Flags().StringVar(&reportDescription, "description", "", "Additional context for moderators")
	reportUserCmd.Flags().StringVar(&reportDescription, "description", "", "Additional context for moderators")

	reportCmd.AddCommand(reportPostCmd)
	reportCmd.AddCommand(reportUserCmd)
}
