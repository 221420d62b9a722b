package openmensa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListCanteens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/canteens", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "1":
			w.Write([]byte(`[{"id":42,"name":"Mensa X","city":"Y","address":"Street 1","coordinates":[52.5,13.4]}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	c := New(server.URL, time.Second)

	page, err := c.ListCanteens(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []entity.Canteen{{ID: 42, Name: "Mensa X", City: "Y"}}, page)

	page, err = c.ListCanteens(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestClient_GetMeals(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    int
		body      string
		want      []entity.Meal
		wantFetch bool
	}{
		{
			name:   "Should decode meals in service order",
			status: http.StatusOK,
			body: `[
				{"id":1,"name":"Pasta","category":"Main","prices":{"students":2.5,"employees":4.1,"others":null}},
				{"id":2,"name":"Soup","category":"Starter","prices":{"students":1,"employees":1.5}}
			]`,
			want: []entity.Meal{
				{Category: "Main", Name: "Pasta", StudentPrice: 2.5},
				{Category: "Starter", Name: "Soup", StudentPrice: 1},
			},
		},
		{
			name:   "Should return empty list for a day without meals",
			status: http.StatusOK,
			body:   `[]`,
			want:   []entity.Meal{},
		},
		{
			name:      "Should fail when the student price is missing",
			status:    http.StatusOK,
			body:      `[{"id":1,"name":"Pasta","category":"Main","prices":{"employees":4.1}}]`,
			wantFetch: true,
		},
		{
			name:      "Should fail on non-success status",
			status:    http.StatusNotFound,
			body:      `{"error":"not found"}`,
			wantFetch: true,
		},
		{
			name:      "Should fail on malformed body",
			status:    http.StatusOK,
			body:      `{"oops"`,
			wantFetch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/canteens/42/days/2024-01-10/meals", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New(server.URL+"/", time.Second)
			meals, err := c.GetMeals(context.Background(), 42, date)

			if tt.wantFetch {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrFetchFailure)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, meals)
		})
	}
}

func TestClient_GetMeals_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New(server.URL, time.Second)
	_, err := c.GetMeals(context.Background(), 42, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailure)
}
