package service

import (
	"fmt"
	"strings"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
	"github.com/lumen-hq/lumen-cli/pkg/optimistic"
)

// FeedService handles the home feed and post interaction commands
type FeedService struct{}

// NewFeedService creates a new feed service
func NewFeedService() *FeedService {
	return &FeedService{}
}

// ShowFeed displays a page of the home feed
func (s *FeedService) ShowFeed(page, pageSize int) error {
	logger.Debug("Fetching feed", "page", page, "page_size", pageSize)

	resp, err := api.GetFeed(page, pageSize)
	if err != nil {
		return err
	}

	if len(resp.Posts) == 0 {
		fmt.Println("Your feed is empty. Follow some users to see their posts!")
		return nil
	}

	for _, p := range resp.Posts {
		printPost(p)
	}
	fmt.Printf("Page %d (%d post(s) total)\n", resp.Page, resp.TotalCount)

	return nil
}

// ShowSaved displays the caller's saved posts
func (s *FeedService) ShowSaved(page, pageSize int) error {
	resp, err := api.GetSavedPosts(page, pageSize)
	if err != nil {
		return err
	}

	if len(resp.Posts) == 0 {
		fmt.Println("No saved posts")
		return nil
	}

	for _, p := range resp.Posts {
		printPost(p)
	}
	return nil
}

// Like likes a post. The local state flips immediately and reverts if the
// request fails.
func (s *FeedService) Like(postID string) error {
	post, err := api.GetPost(postID)
	if err != nil {
		return err
	}
	if post.IsLiked {
		formatter.PrintInfo("Already liked")
		return nil
	}

	likes := post.LikeCount
	err = optimistic.Run(
		func() { likes++ },
		func() error { return api.LikePost(postID) },
		func() { likes-- },
	)
	if err != nil {
		formatter.PrintError("Like failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Liked (%d like(s))", likes)
	return nil
}

// Unlike removes a like from a post
func (s *FeedService) Unlike(postID string) error {
	post, err := api.GetPost(postID)
	if err != nil {
		return err
	}
	if !post.IsLiked {
		formatter.PrintInfo("Not liked")
		return nil
	}

	likes := post.LikeCount
	err = optimistic.Run(
		func() { likes-- },
		func() error { return api.UnlikePost(postID) },
		func() { likes++ },
	)
	if err != nil {
		formatter.PrintError("Unlike failed: %v", err)
		return err
	}

	formatter.PrintSuccess("Unliked (%d like(s))", likes)
	return nil
}

// ToggleLike flips the like state of a post, resolving the direction from
// the current server state. Interactive front-ends drive rapid toggles
// through an optimistic.Toggle instead; a one-shot command only needs the
// single round trip.
func (s *FeedService) ToggleLike(postID string) error {
	post, err := api.GetPost(postID)
	if err != nil {
		return err
	}

	t := optimistic.NewToggle(post.IsLiked)
	liked, gen := t.Flip()

	if liked {
		err = api.LikePost(postID)
	} else {
		err = api.UnlikePost(postID)
	}
	t.Commit(gen, err)

	if err != nil {
		formatter.PrintError("Toggle failed: %v", err)
		return err
	}
	if t.Value() {
		formatter.PrintSuccess("Liked")
	} else {
		formatter.PrintSuccess("Unliked")
	}
	return nil
}

// Save bookmarks a post
func (s *FeedService) Save(postID string) error {
	post, err := api.GetPost(postID)
	if err != nil {
		return err
	}
	if post.IsSaved {
		formatter.PrintInfo("Already saved")
		return nil
	}

	if err := api.SavePost(postID); err != nil {
		formatter.PrintError("Save failed: %v", err)
		return err
	}
	formatter.PrintSuccess("Saved")
	return nil
}

// Unsave removes a bookmark from a post
func (s *FeedService) Unsave(postID string) error {
	if err := api.UnsavePost(postID); err != nil {
		formatter.PrintError("Unsave failed: %v", err)
		return err
	}
	formatter.PrintSuccess("Removed from saved")
	return nil
}

func printPost(p api.Post) {
	fmt.Println(strings.Repeat("-", 60))
	author := p.Author.Username
	if author == "" {
		author = p.UserID
	}
	fmt.Printf("@%s · %s · %s\n", author, p.CreatedAt.Format("Jan 2 15:04"), p.ID)
	fmt.Println(p.Text)
	if len(p.MediaURLs) > 0 {
		fmt.Printf("(%d attachment(s))\n", len(p.MediaURLs))
	}
	flags := ""
	if p.IsLiked {
		flags += " ♥"
	}
	if p.IsSaved {
		flags += " ⚑"
	}
	fmt.Printf("%d like(s) · %d comment(s)%s\n", p.LikeCount, p.CommentCount, flags)
}
