package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	dispatchNow = time.Date(2024, 1, 10, 7, 0, 0, 0, berlin)
	dispatchDay = time.Date(2024, 1, 10, 0, 0, 0, 0, berlin)
	interaction = entity.Interaction{UserID: "U1", ChannelID: "D1", ResponseURL: "https://hooks.slack.com/actions/1"}
	nextDay42   = []entity.Action{{ActionID: domain.ActionNextDay, Label: "➡️ Next Day", Value: "42"}}
)

func newTestDispatcher(m allMocks) *dispatcher {
	return newDispatcher(m.mockMenuService, m.mockSessionService, m.mockMessenger, berlin, fixedClock(dispatchNow))
}

func Test_dispatcher_SelectCanteen(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(m allMocks)
		wantErr   error
	}{
		{
			name: "Should render today, record the view and reply with next day action",
			buildMock: func(m allMocks) {
				gomock.InOrder(
					m.mockMenuService.EXPECT().Fetch(gomock.Any(), int64(42), dispatchDay).Return("menu"),
					m.mockSessionService.EXPECT().RecordView(gomock.Any(), "U1", int64(42), dispatchDay).Return(nil),
					m.mockMessenger.EXPECT().Reply(gomock.Any(), interaction, "menu", nextDay42).Return(nil),
				)
			},
		},
		{
			name: "Should still reply when the session cannot be saved",
			buildMock: func(m allMocks) {
				m.mockMenuService.EXPECT().Fetch(gomock.Any(), int64(42), dispatchDay).Return("menu")
				m.mockSessionService.EXPECT().RecordView(gomock.Any(), "U1", int64(42), dispatchDay).Return(errors.New("db closed"))
				m.mockMessenger.EXPECT().Reply(gomock.Any(), interaction, "menu", nextDay42).Return(nil)
			},
		},
		{
			name: "Should report delivery failure without retrying",
			buildMock: func(m allMocks) {
				m.mockMenuService.EXPECT().Fetch(gomock.Any(), int64(42), dispatchDay).Return("menu")
				m.mockSessionService.EXPECT().RecordView(gomock.Any(), "U1", int64(42), dispatchDay).Return(nil)
				m.mockMessenger.EXPECT().Reply(gomock.Any(), interaction, "menu", nextDay42).Return(errors.New("expired_url")).Times(1)
			},
			wantErr: domain.ErrDeliveryFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			err := newTestDispatcher(m).SelectCanteen(context.Background(), interaction, 42)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_dispatcher_NextDay(t *testing.T) {
	tomorrow := dispatchDay.AddDate(0, 0, 1)

	t.Run("Should render the advanced date", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		gomock.InOrder(
			m.mockSessionService.EXPECT().AdvanceDay(gomock.Any(), "U1").Return(tomorrow, nil),
			m.mockMenuService.EXPECT().Fetch(gomock.Any(), int64(42), tomorrow).Return("menu of tomorrow"),
			m.mockSessionService.EXPECT().RecordView(gomock.Any(), "U1", int64(42), tomorrow).Return(nil),
			m.mockMessenger.EXPECT().Reply(gomock.Any(), interaction, "menu of tomorrow", nextDay42).Return(nil),
		)

		require.NoError(t, newTestDispatcher(m).NextDay(context.Background(), interaction, 42))
	})

	t.Run("Should tell the user when navigation fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockSessionService.EXPECT().AdvanceDay(gomock.Any(), "U1").Return(time.Time{}, errors.New("db closed"))
		m.mockMessenger.EXPECT().Reply(gomock.Any(), interaction, navigationFailed, gomock.Nil()).Return(nil)

		require.NoError(t, newTestDispatcher(m).NextDay(context.Background(), interaction, 42))
	})
}

func Test_dispatcher_PushScheduled(t *testing.T) {
	t.Run("Should push today's menu labeled as reminder", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockMenuService.EXPECT().Fetch(gomock.Any(), int64(42), dispatchDay).Return("menu")
		m.mockMessenger.EXPECT().Send(gomock.Any(), "U1", "⏰ *Daily reminder*\n\nmenu", nextDay42).Return(nil)

		require.NoError(t, newTestDispatcher(m).PushScheduled(context.Background(), "U1", 42))
	})

	t.Run("Should not touch the session", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockMenuService.EXPECT().Fetch(gomock.Any(), int64(42), dispatchDay).Return("menu")
		m.mockMessenger.EXPECT().Send(gomock.Any(), "U1", gomock.Any(), gomock.Any()).Return(nil)
		m.mockSessionService.EXPECT().RecordView(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		require.NoError(t, newTestDispatcher(m).PushScheduled(context.Background(), "U1", 42))
	})

	t.Run("Should wrap delivery failures", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockMenuService.EXPECT().Fetch(gomock.Any(), int64(42), dispatchDay).Return("menu")
		m.mockMessenger.EXPECT().Send(gomock.Any(), "U1", gomock.Any(), gomock.Any()).Return(errors.New("channel_not_found")).Times(1)

		err := newTestDispatcher(m).PushScheduled(context.Background(), "U1", 42)
		assert.ErrorIs(t, err, domain.ErrDeliveryFailure)
	})
}
