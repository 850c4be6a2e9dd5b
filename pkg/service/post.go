package service

import (
	"fmt"
	"time"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
	"github.com/lumen-hq/lumen-cli/pkg/optimistic"
)

// PostService handles post authoring and comment commands
type PostService struct{}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

// Create publishes a new post, optionally scheduled for a future time
func (s *PostService) Create(text string, mediaURLs []string, publishAt string) error {
	req := api.CreatePostRequest{
		Text:      text,
		MediaURLs: mediaURLs,
	}

	if publishAt != "" {
		t, err := time.Parse(time.RFC3339, publishAt)
		if err != nil {
			return fmt.Errorf("invalid publish time %q (want RFC3339): %w", publishAt, err)
		}
		if t.Before(time.Now()) {
			return fmt.Errorf("publish time %s is in the past", publishAt)
		}
		req.PublishAt = &t
	}

	logger.Debug("Creating post", "scheduled", req.PublishAt != nil)

	post, err := api.CreatePost(req)
	if err != nil {
		return err
	}

	if post.IsScheduled {
		formatter.PrintSuccess("Post scheduled for %s", post.PublishAt.Format("2006-01-02 15:04"))
	} else {
		formatter.PrintSuccess("Post published!")
	}
	fmt.Printf("ID: %s\n", post.ID)

	return nil
}

// Show displays a single post with its comments
func (s *PostService) Show(postID string) error {
	post, err := api.GetPost(postID)
	if err != nil {
		return err
	}

	printPost(*post)

	if post.CommentCount > 0 {
		resp, err := api.GetComments(postID, 1, 20)
		if err != nil {
			return err
		}
		fmt.Println("\nComments:")
		for _, c := range resp.Comments {
			author := c.Author.Username
			if author == "" {
				author = c.UserID
			}
			fmt.Printf("  @%s: %s (%d like(s)) [%s]\n", author, c.Text, c.LikeCount, c.ID)
		}
	}

	return nil
}

// Update edits the text of an existing post
func (s *PostService) Update(postID, text string) error {
	post, err := api.UpdatePost(postID, text)
	if err != nil {
		return err
	}
	formatter.PrintSuccess("Post updated")
	fmt.Printf("Edited at: %s\n", post.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// Delete removes a post
func (s *PostService) Delete(postID string) error {
	if err := api.DeletePost(postID); err != nil {
		return err
	}
	formatter.PrintSuccess("Post deleted")
	return nil
}

// Comment adds a comment to a post
func (s *PostService) Comment(postID, text string) error {
	comment, err := api.AddComment(postID, text)
	if err != nil {
		return err
	}
	formatter.PrintSuccess("Comment added")
	fmt.Printf("ID: %s\n", comment.ID)
	return nil
}

// DeleteComment removes a comment
func (s *PostService) DeleteComment(commentID string) error {
	if err := api.DeleteComment(commentID); err != nil {
		return err
	}
	formatter.PrintSuccess("Comment deleted")
	return nil
}

// LikeComment likes a comment with optimistic local count handling
func (s *PostService) LikeComment(commentID string) error {
	err := optimistic.Run(
		nil,
		func() error { return api.LikeComment(commentID) },
		nil,
	)
	if err != nil {
		formatter.PrintError("Like failed: %v", err)
		return err
	}
	formatter.PrintSuccess("Comment liked")
	return nil
}

// UnlikeComment removes a like from a comment
func (s *PostService) UnlikeComment(commentID string) error {
	if err := api.UnlikeComment(commentID); err != nil {
		formatter.PrintError("Unlike failed: %v", err)
		return err
	}
	formatter.PrintSuccess("Comment unliked")
	return nil
}

// ListUserPosts displays a user's posts
func (s *PostService) ListUserPosts(username string, page, pageSize int) error {
	user, err := api.GetProfile(username)
	if err != nil {
		return err
	}

	resp, err := api.GetUserPosts(user.ID, page, pageSize)
	if err != nil {
		return err
	}

	if len(resp.Posts) == 0 {
		fmt.Printf("@%s has no posts\n", username)
		return nil
	}

	for _, p := range resp.Posts {
		printPost(p)
	}
	return nil
}
