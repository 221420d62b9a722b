package slack

import (
	"unicode/utf8"

	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

const (
	// Slack rejects section texts longer than this
	maxSectionText = 3000

	// plain_text limit of buttons and select options
	maxOptionText = 75

	buttonsPerBlock = 5
	maxActionBlocks = 40
)

// MessageBlocks renders text followed by optional extra blocks and the actions as buttons
func MessageBlocks(text string, actions []entity.Action, extra ...slack.Block) []slack.Block {
	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, truncate(text, maxSectionText), false, false), nil, nil),
	}
	blocks = append(blocks, extra...)

	var elements []slack.BlockElement
	for _, action := range actions {
		if len(elements) == buttonsPerBlock {
			blocks = append(blocks, slack.NewActionBlock("", elements...))
			elements = nil
		}
		if len(blocks) > maxActionBlocks {
			break
		}

		button := slack.NewButtonBlockElement(
			action.ActionID,
			action.Value,
			slack.NewTextBlockObject(slack.PlainTextType, truncate(action.Label, maxOptionText), true, false),
		)
		elements = append(elements, button)
	}
	if len(elements) > 0 && len(blocks) <= maxActionBlocks {
		blocks = append(blocks, slack.NewActionBlock("", elements...))
	}

	return blocks
}

// NewMsg builds an ephemeral slash command response
func NewMsg(text string, actions []entity.Action, extra ...slack.Block) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
		Blocks:       slack.Blocks{BlockSet: MessageBlocks(text, actions, extra...)},
	}
}

// CitySelectBlock is a static select listing the given cities
func CitySelectBlock(actionID string, cities []string) slack.Block {
	placeholder := slack.NewTextBlockObject(slack.PlainTextType, "Choose a city", false, false)
	selectElement := slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, placeholder, actionID, CityOptions(cities)...)

	return slack.NewActionBlock("", selectElement)
}

// CitySearchBlock is a typeahead select whose options are loaded on demand
func CitySearchBlock(actionID string) slack.Block {
	placeholder := slack.NewTextBlockObject(slack.PlainTextType, "Type your city", false, false)
	selectElement := slack.NewOptionsSelectBlockElement(slack.OptTypeExternal, placeholder, actionID)

	minQueryLength := 0
	selectElement.MinQueryLength = &minQueryLength

	return slack.NewActionBlock("", selectElement)
}

func CityOptions(cities []string) []*slack.OptionBlockObject {
	options := make([]*slack.OptionBlockObject, 0, len(cities))
	for _, city := range cities {
		text := slack.NewTextBlockObject(slack.PlainTextType, truncate(city, maxOptionText), false, false)
		options = append(options, slack.NewOptionBlockObject(city, text, nil))
	}
	return options
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
