package contract

import (
	"context"

	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessageContext sends a message to a Slack channel or user
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Messenger is what the core needs from the chat transport
type Messenger interface {
	// Reply answers an in-flight interaction
	Reply(ctx context.Context, interaction entity.Interaction, text string, actions []entity.Action) error

	// Send pushes an unsolicited message to a user
	Send(ctx context.Context, userID string, text string, actions []entity.Action) error
}
