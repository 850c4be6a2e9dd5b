package cmd

import (
	"strings"

	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

var messageCmd = &cobra.Command{
	Use:     "message",
	Aliases: []string{"dm"},
	Short:   "Direct message commands",
}

var messageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		msgSvc := service.NewMessageService()
		return msgSvc.ListConversations(pageFlag, pageSizeFlag)
	},
}

var messageSendCmd = &cobra.Command{
	Use:   "send <username> <text>",
	Short: "Send a direct message",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		msgSvc := service.NewMessageService()
		return msgSvc.SendMessage(args[0], strings.Join(args[1:], " "))
	},
}

var messageThreadCmd = &cobra.Command{
	Use:   "thread <username>",
	Short: "View your conversation with a user",
	Long: `View the message history with a user. Opening a thread marks
its messages as read.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msgSvc := service.NewMessageService()
		return msgSvc.ViewUserThread(args[0], pageFlag, pageSizeFlag)
	},
}

var messageReadCmd = &cobra.Command{
	Use:   "read <username>",
	Short: "Mark a conversation as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msgSvc := service.NewMessageService()
		return msgSvc.MarkAsRead(args[0])
	},
}

var messageDeleteCmd = &cobra.Command{
	Use:   "delete <message-id>",
	Short: "Delete a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msgSvc := service.NewMessageService()
		return msgSvc.DeleteMessage(args[0])
	},
}

var messageUnreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "Show your unread message count",
	RunE: func(cmd *cobra.Command, args []string) error {
		msgSvc := service.NewMessageService()
		return msgSvc.ShowUnreadCount()
	},
}

func init() {
	messageListCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	messageListCmd.Flags().IntVar(&pageSizeFlag, "page-size", 20, "Results per page")
	messageThreadCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	messageThreadCmd.Flags().IntVar(&pageSizeFlag, "page-size", 50, "Messages per page")

	messageCmd.AddCommand(messageListCmd)
	messageCmd.AddCommand(messageSendCmd)
	messageCmd.AddCommand(messageThreadCmd)
	messageCmd.AddCommand(messageReadCmd)
	messageCmd.AddCommand(messageDeleteCmd)
	messageCmd.AddCommand(messageUnreadCmd)
}
