package contract

import (
	"context"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

// Directory is the read-only canteen lookup table
type Directory interface {
	ByID(id int64) (entity.Canteen, bool)
	ByCity(city string) []entity.Canteen
	CitiesMatching(substr string) []string
}

type MenuService interface {
	Fetch(ctx context.Context, canteenID int64, date time.Time) string
}

type SessionService interface {
	RecordView(ctx context.Context, userID string, canteenID int64, date time.Time) error
	AdvanceDay(ctx context.Context, userID string) (time.Time, error)
	RecentList(ctx context.Context, userID string) (entity.RecentCanteens, error)
}

type ReminderService interface {
	Set(ctx context.Context, userID string, canteenID int64) (entity.Canteen, error)
	Clear(ctx context.Context, userID string) error
}

// Dispatcher routes rendered menus to an interaction or to a user
type Dispatcher interface {
	SelectCanteen(ctx context.Context, interaction entity.Interaction, canteenID int64) error
	NextDay(ctx context.Context, interaction entity.Interaction, canteenID int64) error
	RespondInteractive(ctx context.Context, interaction entity.Interaction, canteenID int64, date time.Time) error
	PushScheduled(ctx context.Context, userID string, canteenID int64) error
}
