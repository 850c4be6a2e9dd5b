package api

import (
	"fmt"

	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// GetComments retrieves comments on a post with pagination
func GetComments(postID string, page, pageSize int) (*CommentListResponse, error) {
	logger.Debug("Fetching comments", "post_id", postID, "page", page)

	var response CommentListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":      fmt.Sprintf("%d", page),
			"page_size": fmt.Sprintf("%d", pageSize),
		}).
		SetResult(&response).
		Get(fmt.Sprintf("/api/v1/posts/%s/comments", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// AddComment adds a comment to a post
func AddComment(postID, text string) (*Comment, error) {
	logger.Debug("Adding comment", "post_id", postID)

	var response struct {
		Comment Comment `json:"comment"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"text": text}).
		SetResult(&response).
		Post(fmt.Sprintf("/api/v1/posts/%s/comments", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.Comment, nil
}

// DeleteComment deletes a comment
func DeleteComment(commentID string) error {
	logger.Debug("Deleting comment", "comment_id", commentID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/comments/%s", commentID))

	return CheckResponse(resp, err)
}

// LikeComment likes a comment
func LikeComment(commentID string) error {
	logger.Debug("Liking comment", "comment_id", commentID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/v1/comments/%s/like", commentID))

	return CheckResponse(resp, err)
}

// UnlikeComment removes a like from a comment
func UnlikeComment(commentID string) error {
	logger.Debug("Unliking comment", "comment_id", commentID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/v1/comments/%s/like", commentID))

	return CheckResponse(resp, err)
}
