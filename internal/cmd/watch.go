package cmd

import (
	"context"

	"github.com/lumen-hq/lumen-cli/pkg/realtime"
	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream live activity to the terminal",
	Long: `Connect to the realtime channel and print notifications, messages,
likes, follows, and presence changes as they happen. The connection
retries automatically when the network drops.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewRealtimeService(realtime.GetClient())
		return svc.Watch(context.Background())
	},
}
