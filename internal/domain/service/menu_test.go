package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_menuService_Fetch(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, berlin)

	type args struct {
		canteenID int64
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(m allMocks, args args)
		want      string
	}{
		{
			name: "Should render one line per meal in service order",
			args: args{canteenID: 42},
			buildMock: func(m allMocks, args args) {
				m.mockMenuClient.EXPECT().GetMeals(gomock.Any(), args.canteenID, date).Return([]entity.Meal{
					{Category: "Main", Name: "Pasta", StudentPrice: 2.5},
					{Category: "Dessert", Name: "Pudding", StudentPrice: 0.8},
				}, nil)
			},
			want: "🍽 Mensa X (ID: 42, Y) — 2024-01-10\n\nMain: Pasta (2.50€)\nDessert: Pudding (0.80€)",
		},
		{
			name: "Should render no meals notice for an empty list",
			args: args{canteenID: 42},
			buildMock: func(m allMocks, args args) {
				m.mockMenuClient.EXPECT().GetMeals(gomock.Any(), args.canteenID, date).Return([]entity.Meal{}, nil)
			},
			want: "🍽 Mensa X (ID: 42, Y) — 2024-01-10\nNo meals available today.",
		},
		{
			name: "Should render error listing on fetch failure",
			args: args{canteenID: 42},
			buildMock: func(m allMocks, args args) {
				m.mockMenuClient.EXPECT().GetMeals(gomock.Any(), args.canteenID, date).
					Return(nil, fmt.Errorf("%w: unexpected status 500", domain.ErrFetchFailure))
			},
			want: renderFetchError(entity.Canteen{ID: 42, Name: "Mensa X", City: "Y"}, date),
		},
		{
			name: "Should use placeholders for unknown canteens and still fetch",
			args: args{canteenID: 777},
			buildMock: func(m allMocks, args args) {
				m.mockMenuClient.EXPECT().GetMeals(gomock.Any(), args.canteenID, date).Return([]entity.Meal{}, nil)
			},
			want: "🍽 Mensa 777 (ID: 777, Unknown) — 2024-01-10\nNo meals available today.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.args)

			s := newMenu(testDirectory(), m.mockMenuClient)
			got := s.Fetch(context.Background(), tt.args.canteenID, date)

			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_menuService_Fetch_EmptyAndErrorAreDistinct(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, berlin)
	gomock.InOrder(
		m.mockMenuClient.EXPECT().GetMeals(gomock.Any(), int64(42), date).Return(nil, nil),
		m.mockMenuClient.EXPECT().GetMeals(gomock.Any(), int64(42), date).Return(nil, domain.ErrFetchFailure),
	)

	s := newMenu(testDirectory(), m.mockMenuClient)
	empty := s.Fetch(context.Background(), 42, date)
	failed := s.Fetch(context.Background(), 42, date)

	assert.Contains(t, empty, "No meals available today.")
	assert.NotContains(t, empty, "Error fetching meals")

	assert.Contains(t, failed, "Error fetching meals")
	assert.NotContains(t, failed, "No meals available today.")
}
