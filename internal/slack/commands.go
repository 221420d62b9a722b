package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdStart  CommandType = "start"
	CmdHelp   CommandType = "help"
	CmdSearch CommandType = "search"
	CmdCity   CommandType = "city"
	CmdRecent CommandType = "recent"
	CmdRemind CommandType = "remind"
)

type Command struct {
	Type CommandType
	Args []string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{}

	switch strings.ToLower(parts[0]) {
	case "start":
		cmd.Type = CmdStart
	case "help":
		cmd.Type = CmdHelp
	case "search", "cities":
		cmd.Type = CmdSearch
	case "city", "searchcity":
		cmd.Type = CmdCity
	case "recent":
		cmd.Type = CmdRecent
	case "remind", "reminder":
		cmd.Type = CmdRemind
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

// GetHelpText returns the usage text for the given reminder time
func GetHelpText(reminderTime string) string {
	return `👋 *Welcome to the Mensa bot!*

*Find a canteen:*
• Pick your city in the list below, or
• ` + "`/mensa search ber`" + ` - Search cities containing a text
• ` + "`/mensa city Berlin`" + ` - List the canteens of a city
• Choose a canteen to view today's meals, then use ➡️ *Next Day* to look ahead

*Recently viewed:*
• ` + "`/mensa recent`" + ` - Show the canteens you viewed last

*Daily reminder:*
• ` + "`/mensa remind <canteen_id>`" + ` - Get the menu every weekday at ` + reminderTime + ` (Mon–Fri)
• ` + "`/mensa remind`" + ` - Turn the reminder off`
}
