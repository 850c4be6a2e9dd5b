package cmd

import (
	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

// Pagination flags shared by the list-style commands. Only one command
// runs per invocation so a single pair of vars is enough.
var (
	pageFlag     int
	pageSizeFlag int
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show your home feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		feedSvc := service.NewFeedService()
		return feedSvc.ShowFeed(pageFlag, pageSizeFlag)
	},
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Show your saved posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		feedSvc := service.NewFeedService()
		return feedSvc.ShowSaved(pageFlag, pageSizeFlag)
	},
}

func init() {
	feedCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	feedCmd.Flags().IntVar(&pageSizeFlag, "page-size", 20, "Results per page")
	savedCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	savedCmd.Flags().IntVar(&pageSizeFlag, "page-size", 20, "Results per page")

	feedCmd.AddCommand(savedCmd)
}
