package cmd

import (
	"github.com/lumen-hq/lumen-cli/pkg/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile commands",
}

var profileShowCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Display a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.Show(args[0])
	},
}

var (
	profileDisplayName string
	profileBio         string
	profileAvatarURL   string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.Update(profileDisplayName, profileBio, profileAvatarURL)
	},
}

var profilePostsCmd = &cobra.Command{
	Use:   "posts <username>",
	Short: "List a user's posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.ListUserPosts(args[0], pageFlag, pageSizeFlag)
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileDisplayName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "Profile bio")
	profileUpdateCmd.Flags().StringVar(&profileAvatarURL, "avatar", "", "Avatar image URL")

	profilePostsCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	profilePostsCmd.Flags().IntVar(&pageSizeFlag, "page-size", 20, "Results per page")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePostsCmd)
}
