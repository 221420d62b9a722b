package contract

import (
	"context"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

// MenuClient defines the calls made to the external menu service
type MenuClient interface {
	// ListCanteens returns one catalog page; an empty page marks the end
	ListCanteens(ctx context.Context, page int) ([]entity.Canteen, error)

	// GetMeals returns the meals of a canteen for the given day
	GetMeals(ctx context.Context, canteenID int64, date time.Time) ([]entity.Meal, error)
}
