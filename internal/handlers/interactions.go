package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/mensa-bot/internal/slack"
	"github.com/slack-go/slack"
)

// OptionsResponse is the body Slack expects for a block_suggestion request
type OptionsResponse struct {
	Options []*slack.OptionBlockObject `json:"options"`
}

// HandleInteraction serves both the interactivity and the options load URL
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	if !h.verify(w, r) {
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch callback.Type {
	case slack.InteractionTypeBlockSuggestion:
		writeJSON(w, h.Suggest(callback))
	case slack.InteractionTypeBlockActions:
		h.HandleBlockActions(callback)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

// Suggest answers the city typeahead
func (h *SlackHandler) Suggest(callback slack.InteractionCallback) OptionsResponse {
	if callback.ActionID != domain.ActionCitySearch {
		return OptionsResponse{Options: []*slack.OptionBlockObject{}}
	}

	cities := h.services.Directory.CitiesMatching(callback.Value)
	return OptionsResponse{Options: slackcmd.CityOptions(cities)}
}

// HandleBlockActions schedules the work of every clicked element. Slack
// expects an acknowledgement within three seconds, so the menu is delivered
// later through the response URL.
func (h *SlackHandler) HandleBlockActions(callback slack.InteractionCallback) {
	interaction := entity.Interaction{
		UserID:      callback.User.ID,
		ChannelID:   callback.Channel.ID,
		ResponseURL: callback.ResponseURL,
	}

	for _, action := range callback.ActionCallback.BlockActions {
		h.inflight.Add(1)
		h.async(func() {
			defer h.inflight.Done()
			h.handleAction(context.Background(), interaction, action)
		})
	}
}

// Wait blocks until all deferred interaction work has finished. Call it once
// no new requests can arrive.
func (h *SlackHandler) Wait() {
	h.inflight.Wait()
}

func (h *SlackHandler) handleAction(ctx context.Context, interaction entity.Interaction, action *slack.BlockAction) {
	switch action.ActionID {
	case domain.ActionCanteen, domain.ActionNextDay:
		canteenID, err := strconv.ParseInt(action.Value, 10, 64)
		if err != nil {
			log.Printf("Ignoring %s action with invalid canteen id %q", action.ActionID, action.Value)
			return
		}

		if action.ActionID == domain.ActionCanteen {
			err = h.services.Dispatcher.SelectCanteen(ctx, interaction, canteenID)
		} else {
			err = h.services.Dispatcher.NextDay(ctx, interaction, canteenID)
		}
		if err != nil {
			log.Printf("Failed to deliver menu of canteen %d to %s: %v", canteenID, interaction.UserID, err)
		}

	case domain.ActionCitySelect, domain.ActionCitySearch:
		city := action.SelectedOption.Value
		if city == "" {
			return
		}

		text, actions := h.canteenList(city)
		if err := h.services.Messenger.Reply(ctx, interaction, text, actions); err != nil {
			log.Printf("Failed to send canteens of %s to %s: %v", city, interaction.UserID, err)
		}

	default:
		log.Printf("Ignoring unknown action %q", action.ActionID)
	}
}
