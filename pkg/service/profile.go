package service

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
	"github.com/lumen-hq/lumen-cli/pkg/optimistic"
)

// ProfileService handles profile viewing and follow commands
type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Show displays a user's profile
func (s *ProfileService) Show(username string) error {
	logger.Debug("Fetching profile", "username", username)

	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}

	fmt.Printf("\n@%s", user.Username)
	if user.DisplayName != "" {
		fmt.Printf(" (%s)", user.DisplayName)
	}
	fmt.Println()
	if user.Bio != "" {
		fmt.Println(user.Bio)
	}
	fmt.Printf("%d follower(s) · %d following · %d post(s)\n",
		user.FollowerCount, user.FollowingCount, user.PostCount)
	if user.IsFollowing {
		formatter.PrintInfo("You follow this user")
	}
	if user.LastSeenAt != nil {
		fmt.Printf("Last seen: %s\n", user.LastSeenAt.Format("2006-01-02 15:04"))
	}

	return nil
}

// Update edits the caller's own profile
func (s *ProfileService) Update(displayName, bio, avatarURL string) error {
	user, err := api.UpdateProfile(api.UpdateProfileRequest{
		DisplayName: displayName,
		Bio:         bio,
		AvatarURL:   avatarURL,
	})
	if err != nil {
		return err
	}

	formatter.PrintSuccess("Profile updated")
	fmt.Printf("Display name: %s\n", user.DisplayName)
	return nil
}

// Follow follows a user by username. Local state flips immediately and
// reverts when the server rejects the request.
func (s *ProfileService) Follow(username string) error {
	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}
	if user.IsFollowing {
		formatter.PrintInfo("Already following @%s", username)
		return nil
	}

	following := user.IsFollowing
	followers := user.FollowerCount

	err = optimistic.Run(
		func() {
			following = true
			followers++
		},
		func() error { return api.FollowUser(user.ID) },
		func() {
			following = false
			followers--
		},
	)
	if err != nil {
		formatter.PrintError("Follow failed: %v", err)
		return err
	}

	if following {
		formatter.PrintSuccess("Now following @%s (%d follower(s))", username, followers)
	}
	return nil
}

// Unfollow unfollows a user by username
func (s *ProfileService) Unfollow(username string) error {
	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}
	if !user.IsFollowing {
		formatter.PrintInfo("Not following @%s", username)
		return nil
	}

	followers := user.FollowerCount

	err = optimistic.Run(
		func() { followers-- },
		func() error { return api.UnfollowUser(user.ID) },
		func() { followers++ },
	)
	if err != nil {
		formatter.PrintError("Unfollow failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Unfollowed @%s", username)
	return nil
}

// ListFollowers displays a user's followers
func (s *ProfileService) ListFollowers(username string, page, pageSize int) error {
	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}

	followers, err := api.GetFollowers(user.ID, page, pageSize)
	if err != nil {
		return err
	}

	return printUserList(followers, fmt.Sprintf("@%s has no followers", username))
}

// ListFollowing displays who a user follows
func (s *ProfileService) ListFollowing(username string, page, pageSize int) error {
	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}

	following, err := api.GetFollowing(user.ID, page, pageSize)
	if err != nil {
		return err
	}

	return printUserList(following, fmt.Sprintf("@%s follows nobody", username))
}

func printUserList(users []api.User, emptyMsg string) error {
	if len(users) == 0 {
		fmt.Println(emptyMsg)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tNAME\tFOLLOWERS")
	for _, u := range users {
		fmt.Fprintf(w, "@%s\t%s\t%d\n", u.Username, u.DisplayName, u.FollowerCount)
	}
	return w.Flush()
}
