package slack

import (
	"context"
	"fmt"

	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

type messenger struct {
	client      contract.SlackClient
	postWebhook func(ctx context.Context, url string, msg *slack.WebhookMessage) error
}

// NewMessenger delivers core messages through the Slack Web API and response URLs
func NewMessenger(client contract.SlackClient) contract.Messenger {
	return &messenger{
		client:      client,
		postWebhook: slack.PostWebhookContext,
	}
}

// Reply answers through the interaction's response URL, falling back to
// a plain message in the interaction's channel.
func (m *messenger) Reply(ctx context.Context, interaction entity.Interaction, text string, actions []entity.Action) error {
	if interaction.ResponseURL != "" {
		msg := &slack.WebhookMessage{
			Text:            text,
			ResponseType:    slack.ResponseTypeEphemeral,
			ReplaceOriginal: false,
			Blocks:          &slack.Blocks{BlockSet: MessageBlocks(text, actions)},
		}

		if err := m.postWebhook(ctx, interaction.ResponseURL, msg); err != nil {
			return fmt.Errorf("failed to post to response url: %w", err)
		}
		return nil
	}

	return m.post(ctx, interaction.ChannelID, text, actions)
}

// Send posts to the user's direct message channel with the app
func (m *messenger) Send(ctx context.Context, userID string, text string, actions []entity.Action) error {
	return m.post(ctx, userID, text, actions)
}

func (m *messenger) post(ctx context.Context, channelID, text string, actions []entity.Action) error {
	_, _, err := m.client.PostMessageContext(ctx,
		channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionBlocks(MessageBlocks(text, actions)...),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	return nil
}
