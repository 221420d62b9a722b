package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

const unknownCity = "Unknown"

type menuService struct {
	directory contract.Directory
	client    contract.MenuClient
}

// NewMenu builds the fetch-and-render pipeline over a loaded directory
func NewMenu(directory contract.Directory, client contract.MenuClient) contract.MenuService {
	return newMenu(directory, client)
}

func newMenu(directory contract.Directory, client contract.MenuClient) *menuService {
	return &menuService{
		directory: directory,
		client:    client,
	}
}

// Fetch renders the meals of a canteen for a day. It never fails: service
// errors are turned into a fixed error listing.
func (s *menuService) Fetch(ctx context.Context, canteenID int64, date time.Time) string {
	canteen := describeCanteen(s.directory, canteenID)

	meals, err := s.client.GetMeals(ctx, canteenID, date)
	if err != nil {
		log.Printf("Failed to fetch meals for canteen %d on %s: %v", canteenID, date.Format(domain.DateLayout), err)
		return renderFetchError(canteen, date)
	}

	if len(meals) == 0 {
		return renderNoMeals(canteen, date)
	}

	return renderMeals(canteen, date, meals)
}

// describeCanteen falls back to a placeholder for ids missing from the directory
func describeCanteen(directory contract.Directory, canteenID int64) entity.Canteen {
	if c, ok := directory.ByID(canteenID); ok {
		return c
	}

	return entity.Canteen{
		ID:   canteenID,
		Name: fmt.Sprintf("Mensa %d", canteenID),
		City: unknownCity,
	}
}

func renderHeader(c entity.Canteen, date time.Time) string {
	return fmt.Sprintf("🍽 %s (ID: %d, %s) — %s", c.Name, c.ID, c.City, date.Format(domain.DateLayout))
}

func renderMeals(c entity.Canteen, date time.Time, meals []entity.Meal) string {
	var b strings.Builder
	b.WriteString(renderHeader(c, date))
	b.WriteString("\n")

	for _, meal := range meals {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s: %s (%s€)", meal.Category, meal.Name, formatPrice(meal.StudentPrice)))
	}

	return b.String()
}

func renderNoMeals(c entity.Canteen, date time.Time) string {
	return renderHeader(c, date) + "\nNo meals available today."
}

func renderFetchError(c entity.Canteen, date time.Time) string {
	return fmt.Sprintf("🍽 %s — %s\n\n", c.Name, date.Format(domain.DateLayout)) +
		"⚠️ Error fetching meals.\n" +
		"😐 Something went wrong!\n" +
		"Either this canteen is closed today or forgot to cook.\n" +
		"Try again tomorrow or pick another one!"
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
