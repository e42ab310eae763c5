package communication

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// Slack posts job summaries and failures to the ops channels. With no bot
// token configured posting becomes a logged no-op, which is what local dry
// runs want.
type Slack struct {
	client  *slack.Client
	infoID  string
	errorID string
}

func ConnectSlack() *Slack {
	return NewSlack(
		os.Getenv("SLACK_BOT_TOKEN"),
		os.Getenv("SLACK_INFO_CHANNEL"),
		os.Getenv("SLACK_ERROR_CHANNEL"),
	)
}

func NewSlack(token string, infoID string, errorID string) *Slack {
	s := &Slack{infoID: infoID, errorID: errorID}
	if token != "" {
		s.client = slack.New(token)
	}
	return s
}

func (s *Slack) postMessage(channelID string, message string) error {
	if s.client == nil || channelID == "" {
		fmt.Printf("[INFO] slack disabled, skipping message: %s\n", message)
		return nil
	}

	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.infoID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.errorID, message)
}
