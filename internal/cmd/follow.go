package cmd

import (
	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Follow commands",
}

var followUserCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.Follow(args[0])
	},
}

var unfollowUserCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.Unfollow(args[0])
	},
}

var followersCmd = &cobra.Command{
	Use:   "followers <username>",
	Short: "List a user's followers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.ListFollowers(args[0], pageFlag, pageSizeFlag)
	},
}

var followingCmd = &cobra.Command{
	Use:   "following <username>",
	Short: "List who a user follows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.ListFollowing(args[0], pageFlag, pageSizeFlag)
	},
}

func init() {
	followersCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	followersCmd.Flags().IntVar(&pageSizeFlag, "page-size", 20, "Results per page")
	followingCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	followingCmd.Flags().IntVar(&pageSizeFlag, "page-size", 20, "Results per page")

	followCmd.AddCommand(followUserCmd)
	followCmd.AddCommand(unfollowUserCmd)
	followCmd.AddCommand(followersCmd)
	followCmd.AddCommand(followingCmd)
}
