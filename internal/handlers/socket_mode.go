package handlers

import (
	"context"
	"log"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

// RunSocketMode serves slash commands and interactions over a Socket Mode
// connection until ctx is done.
func (h *SlackHandler) RunSocketMode(ctx context.Context, client *socketmode.Client) error {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.consumeEvents(ctx, client)
	}()

	err := client.RunContext(ctx)
	cancel()
	<-done

	return err
}

func (h *SlackHandler) consumeEvents(ctx context.Context, client *socketmode.Client) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-client.Events:
			if !ok {
				return
			}
			h.handleSocketEvent(ctx, client, evt)
		}
	}
}

func (h *SlackHandler) handleSocketEvent(ctx context.Context, client *socketmode.Client, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		log.Println("Connecting to Slack with Socket Mode...")
	case socketmode.EventTypeConnected:
		log.Println("Connected to Slack with Socket Mode")
	case socketmode.EventTypeConnectionError:
		log.Println("Socket Mode connection failed, retrying...")

	case socketmode.EventTypeSlashCommand:
		cmd, ok := evt.Data.(slack.SlashCommand)
		if !ok || evt.Request == nil {
			return
		}
		client.Ack(*evt.Request, h.HandleCommand(ctx, cmd))

	case socketmode.EventTypeInteractive:
		callback, ok := evt.Data.(slack.InteractionCallback)
		if !ok || evt.Request == nil {
			return
		}

		switch callback.Type {
		case slack.InteractionTypeBlockSuggestion:
			client.Ack(*evt.Request, h.Suggest(callback))
		case slack.InteractionTypeBlockActions:
			client.Ack(*evt.Request)
			h.HandleBlockActions(callback)
		default:
			client.Ack(*evt.Request)
		}
	}
}
