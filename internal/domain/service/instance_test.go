package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/mensa-bot/internal/database"
	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewInstance_CatalogUnavailable(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockMenuClient.EXPECT().ListCanteens(gomock.Any(), 1).Return(nil, errors.New("no route to host"))

	instance, err := NewInstance(context.Background(), m.mockDataManager, m.mockMenuClient, m.mockMessenger, Options{})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
	assert.Nil(t, instance)
}

// End to end: select canteen 42 on 2024-01-10, press next day, then let
// a replaced reminder fire.
func TestInstance_Scenario(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	now := time.Date(2024, 1, 10, 8, 0, 0, 0, berlin)
	instance, err := newInstance(database.NewInstance(db), testDirectory(), m.mockMenuClient, m.mockMessenger, Options{
		Location: berlin,
		Now:      fixedClock(now),
	})
	require.NoError(t, err)

	ctx := context.Background()
	day1 := time.Date(2024, 1, 10, 0, 0, 0, 0, berlin)
	day2 := time.Date(2024, 1, 11, 0, 0, 0, 0, berlin)

	m.mockMenuClient.EXPECT().GetMeals(gomock.Any(), int64(42), day1).Return([]entity.Meal{}, nil)
	m.mockMenuClient.EXPECT().GetMeals(gomock.Any(), int64(42), day2).Return([]entity.Meal{{Category: "Main", Name: "Pasta", StudentPrice: 2.5}}, nil)
	m.mockMessenger.EXPECT().Reply(gomock.Any(), interaction, gomock.Any(), nextDay42).Return(nil).Times(2)

	require.NoError(t, instance.Dispatch.SelectCanteen(ctx, interaction, 42))
	recent, err := instance.Session.RecentList(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, entity.RecentCanteens{{CanteenID: 42, Name: "Mensa X"}}, recent)

	require.NoError(t, instance.Dispatch.NextDay(ctx, interaction, 42))
	recent, err = instance.Session.RecentList(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, entity.RecentCanteens{{CanteenID: 42, Name: "Mensa X"}}, recent)

	// Reminder for 42 replaced by 99: only 99 is pushed
	_, err = instance.Scheduler.Set(ctx, "U1", 42)
	require.NoError(t, err)
	_, err = instance.Scheduler.Set(ctx, "U1", 99)
	require.NoError(t, err)

	m.mockMenuClient.EXPECT().GetMeals(gomock.Any(), int64(99), day1).Return([]entity.Meal{}, nil)
	m.mockMessenger.EXPECT().Send(gomock.Any(), "U1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, text string, _ []entity.Action) error {
			assert.Contains(t, text, "Mensa Z (ID: 99, Berlin)")
			return nil
		}).Times(1)

	fired := instance.Scheduler.fireDue(time.Date(2024, 1, 10, 9, 30, 0, 0, berlin))
	instance.Scheduler.inflight.Wait()
	assert.Equal(t, 1, fired)
}
