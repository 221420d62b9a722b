package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain/contract"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/diegoclair/mensa-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockSessionRepo    *mocks.MockSessionRepo
	mockReminderRepo   *mocks.MockReminderRepo
	mockMenuClient     *mocks.MockMenuClient
	mockMessenger      *mocks.MockMessenger
	mockMenuService    *mocks.MockMenuService
	mockSessionService *mocks.MockSessionService
	mockDispatcher     *mocks.MockDispatcher
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	sessionRepo := mocks.NewMockSessionRepo(ctrl)
	dm.EXPECT().Session().Return(sessionRepo).AnyTimes()

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	// Transactions run inline against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockSessionRepo:    sessionRepo,
		mockReminderRepo:   reminderRepo,
		mockMenuClient:     mocks.NewMockMenuClient(ctrl),
		mockMessenger:      mocks.NewMockMessenger(ctrl),
		mockMenuService:    mocks.NewMockMenuService(ctrl),
		mockSessionService: mocks.NewMockSessionService(ctrl),
		mockDispatcher:     mocks.NewMockDispatcher(ctrl),
	}

	// validate service creation
	menuService := newMenu(testDirectory(), m.mockMenuClient)
	require.NotNil(t, menuService)

	return
}

var berlin = mustLoadLocation("Europe/Berlin")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// fixedClock returns a Now func pinned to t
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testDirectory() *directory {
	return newDirectory([]entity.Canteen{
		{ID: 42, Name: "Mensa X", City: "Y"},
		{ID: 99, Name: "Mensa Z", City: "Berlin"},
		{ID: 1, Name: "Mensa Nord", City: "Berlin"},
		{ID: 2, Name: "Mensa Bernburg", City: "Bernburg"},
		{ID: 3, Name: "Mensa Hamburg", City: "Hamburg"},
		{ID: 4, Name: "Mensa Ohne Ort", City: ""},
	})
}
