// Package slackchat implements the channel delivery capability on top of the
// Slack Web API.
package slackchat

import (
	"fmt"
	"strconv"

	"github.com/slack-go/slack"
)

// Client wraps a Slack API client behind the contract.ChannelSender surface.
type Client struct {
	api *slack.Client
}

func New(token string) *Client {
	return &Client{
		api: slack.New(token),
	}
}

// Authenticate verifies the configured token against the platform and
// returns the bot's identity. Failure here is a startup-fatal condition for
// the caller; there is no retry.
func (c *Client) Authenticate() (string, error) {
	resp, err := c.api.AuthTest()
	if err != nil {
		return "", fmt.Errorf("failed to authenticate with Slack: %w", err)
	}
	return resp.User, nil
}

// ResolveChannel reports whether the channel id maps to a reachable channel.
// An unknown channel is a negative answer, not an error, so callers can tell
// "not found" apart from transport failures.
func (c *Client) ResolveChannel(channelID int64) (bool, error) {
	_, err := c.api.GetConversationInfo(&slack.GetConversationInfoInput{
		ChannelID: formatChannelID(channelID),
	})
	if err != nil {
		if err.Error() == "channel_not_found" {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up channel %d: %w", channelID, err)
	}
	return true, nil
}

// SendMessage posts text to the channel.
func (c *Client) SendMessage(channelID int64, text string) error {
	_, _, err := c.api.PostMessage(
		formatChannelID(channelID),
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	return nil
}

func formatChannelID(channelID int64) string {
	return strconv.FormatInt(channelID, 10)
}
