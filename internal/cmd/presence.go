package cmd

import (
	"time"

	"github.com/lumen-hq/lumen-cli/pkg/realtime"
	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

var presenceCmd = &cobra.Command{
	Use:   "presence",
	Short: "Online presence commands",
}

var presenceOnlineCmd = &cobra.Command{
	Use:   "online",
	Short: "Show who is online right now",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewRealtimeService(realtime.GetClient())
		return svc.ShowOnline(5 * time.Second)
	},
}

func init() {
	presenceCmd.AddCommand(presenceOnlineCmd)
}
