package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// DefaultActiveDays represents Monday through Friday in ISO format
var DefaultActiveDays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

const (
	// MaxRecentCanteens bounds the per-user recently viewed list
	MaxRecentCanteens = 5

	// MaxCitySuggestions bounds the city typeahead
	MaxCitySuggestions = 50

	// DefaultReminderTime is the local wall-clock time of the daily push (HH:MM)
	DefaultReminderTime = "09:30"

	// DefaultTimezone is the zone reminders and "today" are computed in
	DefaultTimezone = "Europe/Berlin"

	// DateLayout is the date format used by the menu service and in rendered text
	DateLayout = "2006-01-02"
)

// ISOWeekday converts Go's Sunday=0 weekday into ISO 8601 (Sunday=7)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return Sunday
	}
	return wd
}

// DateOf truncates t to midnight of its calendar day in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Interactive action identifiers shared by the dispatcher and the Slack handler
const (
	ActionCanteen    = "canteen"
	ActionNextDay    = "nextday"
	ActionCitySelect = "city_select"
	ActionCitySearch = "city_search"
)
