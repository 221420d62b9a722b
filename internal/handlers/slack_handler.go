package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/mensa-bot/internal/slack"
	"github.com/slack-go/slack"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Services groups everything the Slack handler talks to
type Services struct {
	Directory  contract.Directory
	Sessions   contract.SessionService
	Reminders  contract.ReminderService
	Dispatcher contract.Dispatcher
	Messenger  contract.Messenger
}

type SlackHandler struct {
	services      Services
	signingSecret string
	reminderTime  string

	// async runs interaction work after Slack has been acknowledged
	async    func(func())
	inflight sync.WaitGroup
}

type Option func(*SlackHandler)

// WithRunner replaces the goroutine used for deferred interaction work
func WithRunner(run func(func())) Option {
	return func(h *SlackHandler) {
		h.async = run
	}
}

func New(services Services, signingSecret, reminderTime string, opts ...Option) *SlackHandler {
	h := &SlackHandler{
		services:      services,
		signingSecret: signingSecret,
		reminderTime:  reminderTime,
		async:         func(f func()) { go f() },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if !h.verify(w, r) {
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := h.HandleCommand(r.Context(), s)

	writeJSON(w, response)
}

// verify checks the Slack request signature and leaves the body readable
func (h *SlackHandler) verify(w http.ResponseWriter, r *http.Request) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	return true
}

// HandleCommand answers a /mensa slash command. It is shared by the HTTP
// endpoint and Socket Mode.
func (h *SlackHandler) HandleCommand(ctx context.Context, s slack.SlashCommand) *slack.Msg {
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	switch cmd.Type {
	case slackcmd.CmdStart, slackcmd.CmdHelp:
		return h.handleStart(ctx, s.UserID)
	case slackcmd.CmdSearch:
		return h.handleSearch(cmd)
	case slackcmd.CmdCity:
		return h.handleCity(cmd)
	case slackcmd.CmdRecent:
		return h.handleRecent(ctx, s.UserID)
	case slackcmd.CmdRemind:
		return h.handleRemind(ctx, cmd, s.UserID)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleStart(ctx context.Context, userID string) *slack.Msg {
	extra := []slack.Block{slackcmd.CitySearchBlock(domain.ActionCitySearch)}

	recent, err := h.services.Sessions.RecentList(ctx, userID)
	if err != nil {
		log.Printf("Failed to load recent canteens for %s: %v", userID, err)
	}

	if len(recent) == 0 {
		return slackcmd.NewMsg(slackcmd.GetHelpText(h.reminderTime), nil, extra...)
	}

	recentHeader := slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, recentTitle, false, false), nil, nil)
	extra = append(extra, recentHeader)

	return slackcmd.NewMsg(slackcmd.GetHelpText(h.reminderTime), recentActions(recent), extra...)
}

func (h *SlackHandler) handleSearch(cmd *slackcmd.Command) *slack.Msg {
	query := strings.Join(cmd.Args, " ")

	cities := h.services.Directory.CitiesMatching(query)
	if len(cities) == 0 {
		return h.createErrorResponse(fmt.Sprintf("No cities matching '%s'.", query))
	}

	return slackcmd.NewMsg("🔎 Select your city:", nil, slackcmd.CitySelectBlock(domain.ActionCitySelect, cities))
}

func (h *SlackHandler) handleCity(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please provide a city name. Example: `/mensa city Berlin`")
	}

	text, actions := h.canteenList(strings.Join(cmd.Args, " "))
	return slackcmd.NewMsg(text, actions)
}

// canteenList renders the canteens of a city as buttons
func (h *SlackHandler) canteenList(city string) (string, []entity.Action) {
	city = strings.TrimSpace(city)
	title := cases.Title(language.English).String(strings.ToLower(city))

	canteens := h.services.Directory.ByCity(city)
	if len(canteens) == 0 {
		return fmt.Sprintf("❌ No canteens found in '%s'.", title), nil
	}

	actions := make([]entity.Action, 0, len(canteens))
	for _, c := range canteens {
		actions = append(actions, entity.Action{
			ActionID: domain.ActionCanteen,
			Label:    c.Name,
			Value:    strconv.FormatInt(c.ID, 10),
		})
	}

	return fmt.Sprintf("🍽 Canteens in %s:", title), actions
}

func (h *SlackHandler) handleRecent(ctx context.Context, userID string) *slack.Msg {
	recent, err := h.services.Sessions.RecentList(ctx, userID)
	if err != nil {
		log.Printf("Failed to load recent canteens for %s: %v", userID, err)
		return h.createErrorResponse("Could not load your recent canteens")
	}

	if len(recent) == 0 {
		return slackcmd.NewMsg("You have not viewed any canteen yet. Use `/mensa search <city>` to find one.", nil)
	}

	return slackcmd.NewMsg(recentTitle, recentActions(recent))
}

func (h *SlackHandler) handleRemind(ctx context.Context, cmd *slackcmd.Command, userID string) *slack.Msg {
	if len(cmd.Args) == 0 {
		if err := h.services.Reminders.Clear(ctx, userID); err != nil {
			log.Printf("Failed to clear reminder for %s: %v", userID, err)
			return h.createErrorResponse("Could not disable the reminder")
		}
		return slackcmd.NewMsg("🔕 Reminder disabled.", nil)
	}

	canteenID, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse("Invalid canteen ID.")
	}

	canteen, err := h.services.Reminders.Set(ctx, userID, canteenID)
	if err != nil {
		if !errors.Is(err, domain.ErrUnknownCanteen) {
			log.Printf("Failed to set reminder for %s: %v", userID, err)
		}
		return h.createErrorResponse("Invalid canteen ID.")
	}

	return slackcmd.NewMsg(fmt.Sprintf("⏰ Daily reminder set for %s (%s) at %s (Mon–Fri).", canteen.Name, canteen.City, h.reminderTime), nil)
}

const recentTitle = "🕘 Recently viewed canteens:"

func recentActions(recent entity.RecentCanteens) []entity.Action {
	actions := make([]entity.Action, 0, len(recent))
	for _, r := range recent {
		actions = append(actions, entity.Action{
			ActionID: domain.ActionCanteen,
			Label:    r.Name,
			Value:    strconv.FormatInt(r.CanteenID, 10),
		})
	}
	return actions
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
