package openmensa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
)

// DefaultBaseURL is the public OpenMensa v2 API
const DefaultBaseURL = "https://openmensa.org/api/v2"

type canteenResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type mealResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Prices   struct {
		Students  *float64 `json:"students"`
		Employees *float64 `json:"employees"`
		Pupils    *float64 `json:"pupils"`
		Others    *float64 `json:"others"`
	} `json:"prices"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a MenuClient talking to the OpenMensa API at baseURL
func New(baseURL string, timeout time.Duration) contract.MenuClient {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) contract.MenuClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *client) ListCanteens(ctx context.Context, page int) ([]entity.Canteen, error) {
	url := fmt.Sprintf("%s/canteens?page=%d", c.baseURL, page)

	var payload []canteenResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("failed to list canteens page %d: %w", page, err)
	}

	canteens := make([]entity.Canteen, 0, len(payload))
	for _, p := range payload {
		canteens = append(canteens, entity.Canteen{
			ID:   p.ID,
			Name: p.Name,
			City: p.City,
		})
	}

	return canteens, nil
}

func (c *client) GetMeals(ctx context.Context, canteenID int64, date time.Time) ([]entity.Meal, error) {
	url := fmt.Sprintf("%s/canteens/%d/days/%s/meals", c.baseURL, canteenID, date.Format(domain.DateLayout))

	var payload []mealResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailure, err)
	}

	meals := make([]entity.Meal, 0, len(payload))
	for _, p := range payload {
		if p.Prices.Students == nil {
			return nil, fmt.Errorf("%w: meal %d %q has no student price", domain.ErrFetchFailure, p.ID, p.Name)
		}

		meals = append(meals, entity.Meal{
			Category:     p.Category,
			Name:         p.Name,
			StudentPrice: *p.Prices.Students,
		})
	}

	return meals, nil
}

func (c *client) getJSON(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
