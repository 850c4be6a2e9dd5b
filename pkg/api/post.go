package api

import (
	"fmt"

	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// GetFeed retrieves the home feed with pagination
func GetFeed(page, pageSize int) (*PostListResponse, error) {
	logger.Debug("Fetching feed", "page", page)

	var response PostListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get("/api/v1/posts/feed")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetPost retrieves a single post by ID
func GetPost(postID string) (*Post, error) {
	logger.Debug("Fetching post", "post_id", postID)

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/posts/%s", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.Post, nil
}

// GetUserPosts retrieves a user's posts with pagination
func GetUserPosts(userID string, page, pageSize int) (*PostListResponse, error) {
	logger.Debug("Fetching user posts", "user_id", userID, "page", page)

	var response PostListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/users/%s/posts", userID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// CreatePost creates a new post. A future PublishAt schedules it instead of
// publishing immediately; the server pushes scheduled_post_published when it
// goes live.
func CreatePost(req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post")

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Post("/api/v1/posts")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.Post, nil
}

// UpdatePost edits a post's text
func UpdatePost(postID, text string) (*Post, error) {
	logger.Debug("Updating post", "post_id", postID)

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"text": text}).
		SetResult(&response).
		Put(fmt.Sprintf("/api/v1/posts/%s", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.Post, nil
}

// DeletePost deletes a post
func DeletePost(postID string) error {
	logger.Debug("Deleting post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/posts/%s", postID))

	return CheckResponse(resp, err)
}

// LikePost likes a post. Idempotent: liking an already-liked post succeeds.
func LikePost(postID string) error {
	logger.Debug("Liking post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/v1/posts/%s/like", postID))

	return CheckResponse(resp, err)
}

// UnlikePost removes a like from a post
func UnlikePost(postID string) error {
	logger.Debug("Unliking post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/posts/%s/like", postID))

	return CheckResponse(resp, err)
}

// SavePost saves a post to the user's collection
func SavePost(postID string) error {
	logger.Debug("Saving post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/v1/posts/%s/save", postID))

	return CheckResponse(resp, err)
}

// UnsavePost removes a post from the user's collection
func UnsavePost(postID string) error {
	logger.Debug("Unsaving post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/posts/%s/save", postID))

	return CheckResponse(resp, err)
}

// GetSavedPosts retrieves the user's saved posts
func GetSavedPosts(page, pageSize int) (*PostListResponse, error) {
	logger.Debug("Fetching saved posts", "page", page)

	var response PostListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get("/api/v1/posts/saved")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}
