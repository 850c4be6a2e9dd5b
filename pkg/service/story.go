package service

import (
	"fmt"
	"time"

	"github.com/lumen-hq/lumen-cli/pkg/api"
	"github.com/lumen-hq/lumen-cli/pkg/formatter"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// StoryService handles story commands
type StoryService struct{}

// NewStoryService creates a new story service
func NewStoryService() *StoryService {
	return &StoryService{}
}

// List displays the active stories from followed users
func (s *StoryService) List() error {
	resp, err := api.GetStories()
	if err != nil {
		return err
	}

	if len(resp.Stories) == 0 {
		fmt.Println("No active stories")
		return nil
	}

	for _, st := range resp.Stories {
		seen := " "
		if st.IsViewed {
			seen = "✓"
		}
		remaining := time.Until(st.ExpiresAt).Round(time.Minute)
		fmt.Printf("[%s] @%s · %s · expires in %s · %s\n",
			seen, st.Author.Username, st.MediaURL, remaining, st.ID)
	}

	return nil
}

// View marks a story as viewed
func (s *StoryService) View(storyID string) error {
	logger.Debug("Viewing story", "story_id", storyID)

	if err := api.ViewStory(storyID); err != nil {
		return err
	}
	formatter.PrintSuccess("Story viewed")
	return nil
}

// Reply sends a direct message in reply to a story
func (s *StoryService) Reply(storyID, text string) error {
	resp, err := api.GetStories()
	if err != nil {
		return err
	}

	var story *api.Story
	for i := range resp.Stories {
		if resp.Stories[i].ID == storyID {
			story = &resp.Stories[i]
			break
		}
	}
	if story == nil {
		return fmt.Errorf("story %s not found or expired", storyID)
	}

	msg, err := api.ReplyToStory(storyID, story.UserID, text)
	if err != nil {
		return err
	}

	formatter.PrintSuccess("Reply sent to @%s", story.Author.Username)
	fmt.Printf("Sent at: %s\n", msg.CreatedAt.Format("15:04:05"))
	return nil
}
