package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

// directory is the immutable canteen lookup table built once at startup.
// It is read-only after construction and needs no locking.
type directory struct {
	canteens []entity.Canteen
	byID     map[int64]entity.Canteen
	cities   []string
}

// LoadDirectory pages through the catalog until an empty page is returned
func LoadDirectory(ctx context.Context, client contract.MenuClient) (contract.Directory, error) {
	log.Println("Fetching canteen catalog...")

	var all []entity.Canteen
	for page := 1; ; page++ {
		canteens, err := client.ListCanteens(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
		}
		if len(canteens) == 0 {
			break
		}
		all = append(all, canteens...)
	}

	log.Printf("Fetched %d canteens", len(all))
	return newDirectory(all), nil
}

func newDirectory(canteens []entity.Canteen) *directory {
	d := &directory{
		canteens: canteens,
		byID:     make(map[int64]entity.Canteen, len(canteens)),
	}

	seen := make(map[string]bool)
	for _, c := range canteens {
		d.byID[c.ID] = c
		if c.City != "" && !seen[c.City] {
			seen[c.City] = true
			d.cities = append(d.cities, c.City)
		}
	}
	sort.Strings(d.cities)

	return d
}

func (d *directory) ByID(id int64) (entity.Canteen, bool) {
	c, ok := d.byID[id]
	return c, ok
}

// ByCity matches the city name exactly, ignoring case, keeping catalog order
func (d *directory) ByCity(city string) []entity.Canteen {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil
	}

	var matches []entity.Canteen
	for _, c := range d.canteens {
		if strings.EqualFold(c.City, city) {
			matches = append(matches, c)
		}
	}
	return matches
}

// CitiesMatching returns sorted city names containing substr, ignoring case
func (d *directory) CitiesMatching(substr string) []string {
	needle := strings.ToLower(strings.TrimSpace(substr))

	matches := make([]string, 0, domain.MaxCitySuggestions)
	for _, city := range d.cities {
		if len(matches) == domain.MaxCitySuggestions {
			break
		}
		if needle == "" || strings.Contains(strings.ToLower(city), needle) {
			matches = append(matches, city)
		}
	}
	return matches
}
