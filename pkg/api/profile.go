package api

import (
	"fmt"

	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// GetProfile retrieves a user's profile by username
func GetProfile(username string) (*User, error) {
	logger.Debug("Fetching profile", "username", username)

	var response ProfileResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/users/%s", username))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.User, nil
}

// UpdateProfile updates the current user's profile
func UpdateProfile(req UpdateProfileRequest) (*User, error) {
	logger.Debug("Updating profile")

	var response ProfileResponse

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Put("/api/v1/users/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.User, nil
}

// FollowUser follows a user. Idempotent and safe to retry.
func FollowUser(userID string) error {
	logger.Debug("Following user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/v1/users/%s/follow", userID))

	return CheckResponse(resp, err)
}

// UnfollowUser unfollows a user
func UnfollowUser(userID string) error {
	logger.Debug("Unfollowing user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/users/%s/follow", userID))

	return CheckResponse(resp, err)
}

// GetFollowers retrieves a user's followers
func GetFollowers(userID string, page, pageSize int) ([]User, error) {
	logger.Debug("Fetching followers", "user_id", userID)

	var response struct {
		Users []User `json:"users"`
	}

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/users/%s/followers", userID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return response.Users, nil
}

// GetFollowing retrieves the users a user follows
func GetFollowing(userID string, page, pageSize int) ([]User, error) {
	logger.Debug("Fetching following", "user_id", userID)

	var response struct {
		Users []User `json:"users"`
	}

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/users/%s/following", userID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return response.Users, nil
}
