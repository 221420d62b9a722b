package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/diegoclair/mensa-bot/internal/handlers"
	"github.com/diegoclair/mensa-bot/internal/handlers/test"
	"github.com/diegoclair/mensa-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const responseURL = "https://hooks.slack.com/actions/test"

func TestSlackHandler_HandleInteraction_BlockActions(t *testing.T) {
	interaction := entity.Interaction{UserID: userID, ChannelID: channelID, ResponseURL: responseURL}

	tests := []struct {
		name       string
		action     *slack.BlockAction
		buildMocks func(ctx context.Context, m test.ServiceMocks)
	}{
		{
			name:   "Should show today's menu for a selected canteen",
			action: &slack.BlockAction{ActionID: domain.ActionCanteen, Value: "42"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.DispatcherMock.EXPECT().SelectCanteen(gomock.Any(), interaction, int64(42)).Return(nil).Times(1)
			},
		},
		{
			name:   "Should advance to the next day",
			action: &slack.BlockAction{ActionID: domain.ActionNextDay, Value: "42"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.DispatcherMock.EXPECT().NextDay(gomock.Any(), interaction, int64(42)).Return(nil).Times(1)
			},
		},
		{
			name:   "Should swallow delivery failures",
			action: &slack.BlockAction{ActionID: domain.ActionNextDay, Value: "42"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.DispatcherMock.EXPECT().NextDay(gomock.Any(), interaction, int64(42)).
					Return(domain.ErrDeliveryFailure).Times(1)
			},
		},
		{
			name:   "Should ignore an invalid canteen id",
			action: &slack.BlockAction{ActionID: domain.ActionCanteen, Value: "abc"},
		},
		{
			name: "Should list canteens of the city picked in the typeahead",
			action: &slack.BlockAction{
				ActionID:       domain.ActionCitySearch,
				SelectedOption: slack.OptionBlockObject{Value: "Berlin"},
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.DirectoryMock.EXPECT().ByCity("Berlin").Return([]entity.Canteen{{ID: 99, Name: "Mensa Z", City: "Berlin"}}).Times(1)
				m.MessengerMock.EXPECT().
					Reply(gomock.Any(), interaction, "🍽 Canteens in Berlin:", []entity.Action{{ActionID: domain.ActionCanteen, Label: "Mensa Z", Value: "99"}}).
					Return(nil).Times(1)
			},
		},
		{
			name: "Should report an empty city from the static select",
			action: &slack.BlockAction{
				ActionID:       domain.ActionCitySelect,
				SelectedOption: slack.OptionBlockObject{Value: "Atlantis"},
			},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.DirectoryMock.EXPECT().ByCity("Atlantis").Return(nil).Times(1)
				m.MessengerMock.EXPECT().
					Reply(gomock.Any(), interaction, "❌ No canteens found in 'Atlantis'.", gomock.Nil()).
					Return(errors.New("expired_url")).Times(1)
			},
		},
		{
			name:   "Should ignore unknown actions",
			action: &slack.BlockAction{ActionID: "dance", Value: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m)
			}

			callback := test.BlockActionsCallback(userID, channelID, responseURL, tt.action)

			recorder := test.CreateTestRecorder()
			req := test.CreateInteractionRequest(t, callback, test.SigningSecret)

			handler.HandleInteraction(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

func TestSlackHandler_HandleInteraction_BlockSuggestion(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	m.DirectoryMock.EXPECT().CitiesMatching("ber").Return([]string{"Berlin", "Bernburg"}).Times(1)

	callback := slack.InteractionCallback{
		Type:     slack.InteractionTypeBlockSuggestion,
		ActionID: domain.ActionCitySearch,
		Value:    "ber",
		User:     slack.User{ID: userID},
	}

	recorder := test.CreateTestRecorder()
	req := test.CreateInteractionRequest(t, callback, test.SigningSecret)

	handler.HandleInteraction(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Options []struct {
			Value string `json:"value"`
			Text  struct {
				Text string `json:"text"`
			} `json:"text"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Options, 2)
	assert.Equal(t, "Berlin", body.Options[0].Value)
	assert.Equal(t, "Bernburg", body.Options[1].Text.Text)
}

func TestSlackHandler_HandleInteraction_Verification(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	callback := test.BlockActionsCallback(userID, channelID, responseURL, &slack.BlockAction{ActionID: domain.ActionCanteen, Value: "42"})

	recorder := test.CreateTestRecorder()
	req := test.CreateInteractionRequest(t, callback, "wrong-secret")

	handler.HandleInteraction(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSlackHandler_Wait_DrainsDeferredWork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mocks.NewMockDispatcher(ctrl)
	handler := handlers.New(handlers.Services{Dispatcher: dispatcher}, test.SigningSecret, test.ReminderTime)

	started := make(chan struct{})
	release := make(chan struct{})
	var delivered atomic.Bool

	dispatcher.EXPECT().SelectCanteen(gomock.Any(), gomock.Any(), int64(42)).
		DoAndReturn(func(_ context.Context, _ entity.Interaction, _ int64) error {
			close(started)
			<-release
			delivered.Store(true)
			return nil
		}).Times(1)

	callback := test.BlockActionsCallback(userID, channelID, responseURL, &slack.BlockAction{ActionID: domain.ActionCanteen, Value: "42"})

	recorder := test.CreateTestRecorder()
	handler.HandleInteraction(recorder, test.CreateInteractionRequest(t, callback, test.SigningSecret))
	assert.Equal(t, http.StatusOK, recorder.Code, "Expected the click to be acknowledged before delivery")

	<-started

	waited := make(chan bool)
	go func() {
		handler.Wait()
		waited <- delivered.Load()
	}()

	select {
	case <-waited:
		t.Fatal("Wait returned while the menu was still being delivered")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.True(t, <-waited)
}
