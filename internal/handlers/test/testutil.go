package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/mensa-bot/internal/handlers"
	"github.com/diegoclair/mensa-bot/mocks"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	ReminderTime  = "09:30"
)

type ServiceMocks struct {
	DirectoryMock  *mocks.MockDirectory
	SessionMock    *mocks.MockSessionService
	ReminderMock   *mocks.MockReminderService
	DispatcherMock *mocks.MockDispatcher
	MessengerMock  *mocks.MockMessenger
}

// GetHandlerTest builds a handler over mocks. Interaction work runs
// synchronously so expectations can be checked when the request returns.
func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		DirectoryMock:  mocks.NewMockDirectory(ctrl),
		SessionMock:    mocks.NewMockSessionService(ctrl),
		ReminderMock:   mocks.NewMockReminderService(ctrl),
		DispatcherMock: mocks.NewMockDispatcher(ctrl),
		MessengerMock:  mocks.NewMockMessenger(ctrl),
	}

	services := handlers.Services{
		Directory:  m.DirectoryMock,
		Sessions:   m.SessionMock,
		Reminders:  m.ReminderMock,
		Dispatcher: m.DispatcherMock,
		Messenger:  m.MessengerMock,
	}
	handler = handlers.New(services, SigningSecret, ReminderTime, handlers.WithRunner(func(f func()) { f() }))

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"directmessage"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	return signedFormRequest(t, "/slack/commands", form.Encode(), signingSecret)
}

// CreateInteractionRequest wraps an interaction payload the way Slack posts it
func CreateInteractionRequest(t *testing.T, callback slack.InteractionCallback, signingSecret string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(callback)
	require.NoError(t, err)

	form := url.Values{"payload": {string(payload)}}

	return signedFormRequest(t, "/slack/interactions", form.Encode(), signingSecret)
}

// BlockActionsCallback builds a block_actions payload for one clicked element
func BlockActionsCallback(userID, channelID, responseURL string, action *slack.BlockAction) slack.InteractionCallback {
	if action.BlockID == "" {
		action.BlockID = "actions"
	}

	callback := slack.InteractionCallback{
		Type:        slack.InteractionTypeBlockActions,
		ResponseURL: responseURL,
		User:        slack.User{ID: userID},
	}
	callback.Channel.ID = channelID
	callback.ActionCallback.BlockActions = []*slack.BlockAction{action}

	return callback
}

func signedFormRequest(t *testing.T, path, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
