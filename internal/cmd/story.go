package cmd

import (
	"strings"

	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Story commands",
}

var storyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active stories from people you follow",
	RunE: func(cmd *cobra.Command, args []string) error {
		storySvc := service.NewStoryService()
		return storySvc.List()
	},
}

var storyViewCmd = &cobra.Command{
	Use:   "view <story-id>",
	Short: "Mark a story as viewed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		storySvc := service.NewStoryService()
		return storySvc.View(args[0])
	},
}

var storyReplyCmd = &cobra.Command{
	Use:   "reply <story-id> <text>",
	Short: "Reply to a story via direct message",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		storySvc := service.NewStoryService()
		return storySvc.Reply(args[0], strings.Join(args[1:], " "))
	},
}

func init() {
	storyCmd.AddCommand(storyListCmd)
	storyCmd.AddCommand(storyViewCmd)
	storyCmd.AddCommand(storyReplyCmd)
}
