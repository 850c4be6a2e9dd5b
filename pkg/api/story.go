package api

import (
	"fmt"

	"github.com/lumen-hq/lumen-cli/pkg/client"
	"github.com/lumen-hq/lumen-cli/pkg/logger"
)

// GetStories retrieves active stories from followed users
func GetStories() (*StoryListResponse, error) {
	logger.Debug("Fetching stories")

	var response StoryListResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/v1/stories")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// ViewStory records a view on a story
func ViewStory(storyID string) error {
	logger.Debug("Viewing story", "story_id", storyID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/v1/stories/%s/view", storyID))

	return CheckResponse(resp, err)
}

// ReplyToStory sends a direct message carrying the story marker
func ReplyToStory(storyID, recipientID, text string) (*Message, error) {
	logger.Debug("Replying to story", "story_id", storyID)

	return SendMessage(SendMessageRequest{
		RecipientID:    recipientID,
		Text:           text,
		ReplyToStoryID: storyID,
	})
}
