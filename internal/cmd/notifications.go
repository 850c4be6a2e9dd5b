package cmd

import (
	"github.com/lumen-hq/lumen-cli/pkg/realtime"
	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notifs"},
	Short:   "Notification commands",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService(realtime.GetClient())
		return notifSvc.ListNotifications(pageFlag, pageSizeFlag)
	},
}

var notificationsUnreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "Show your unread notification count",
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService(realtime.GetClient())
		return notifSvc.ShowUnreadCount()
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService(realtime.GetClient())
		return notifSvc.MarkAsRead(args[0])
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark all notifications as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		notifSvc := service.NewNotificationService(realtime.GetClient())
		return notifSvc.MarkAllAsRead()
	},
}

func init() {
	notificationsListCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	notificationsListCmd.Flags().IntVar(&pageSizeFlag, "page-size", 20, "Results per page")

	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsUnreadCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)
}
