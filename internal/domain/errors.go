package domain

import "errors"

var (
	// ErrCatalogUnavailable means the canteen catalog could not be loaded at startup
	ErrCatalogUnavailable = errors.New("canteen catalog unavailable")

	// ErrUnknownCanteen means the canteen id is not in the directory
	ErrUnknownCanteen = errors.New("unknown canteen")

	// ErrFetchFailure means the menu service could not deliver a usable meal list
	ErrFetchFailure = errors.New("failed to fetch meals")

	// ErrDeliveryFailure means a message could not be delivered to the chat transport
	ErrDeliveryFailure = errors.New("failed to deliver message")

	// ErrInvalidReminderTime means the configured reminder time is not HH:MM
	ErrInvalidReminderTime = errors.New("invalid reminder time")
)
