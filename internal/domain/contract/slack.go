package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
// (*slack.Client satisfies it directly)
type SlackClient interface {
	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// PostMessage sends a message to a Slack channel or DM conversation
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// UpdateMessage edits a previously posted message
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)

	// DeleteMessage removes a previously posted message
	DeleteMessage(channelID, timestamp string) (string, string, error)

	// OpenConversation opens (or resumes) a DM conversation with users
	OpenConversation(params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)

	// SetUserCustomStatus updates the bot user's custom status text and emoji
	SetUserCustomStatus(statusText, statusEmoji string, statusExpiration int64) error
}
