package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/hanumanji/chalisa-bot/internal/dal"
	"github.com/hanumanji/chalisa-bot/internal/service"
	"github.com/hanumanji/chalisa-bot/internal/service/mocks"
)

const adminID = int64(777)

func newBroadcast(store service.SubscribersStore, messenger service.Messenger) *service.Broadcast {
	return service.NewBroadcast(store, messenger, rate.NewLimiter(rate.Inf, 1), adminID, slog.New(slog.DiscardHandler))
}

func TestBroadcast_Authorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := newBroadcast(mocks.NewMockSubscribersStore(ctrl), mocks.NewMockMessenger(ctrl))
	assert.True(t, b.Authorized(adminID))
	assert.False(t, b.Authorized(chatID))
}

func TestBroadcast_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("non_admin_rejected_nothing_sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockSubscribersStore(ctrl)
		messenger := mocks.NewMockMessenger(ctrl)

		_, err := newBroadcast(store, messenger).Send(ctx, chatID, "hello")
		require.ErrorIs(t, err, service.ErrNotAuthorized)
	})

	t.Run("admin_reaches_non_paused_only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockSubscribersStore(ctrl)
		store.EXPECT().ListSubscribers().Return([]dal.Subscriber{
			{ChatID: 1, Day: 0},
			{ChatID: 2, Day: dal.Paused},
			{ChatID: 3, Day: 40},
		}, nil)

		messenger := mocks.NewMockMessenger(ctrl)
		messenger.EXPECT().SendMessage(ctx, int64(1), "[Broadcast] hello").Return(nil)
		messenger.EXPECT().SendMessage(ctx, int64(3), "[Broadcast] hello").Return(nil)

		report, err := newBroadcast(store, messenger).Send(ctx, adminID, "hello")
		require.NoError(t, err)

		assert.Equal(t, 2, report.Sent)
		assert.Equal(t, 1, report.Skipped)
		assert.Empty(t, report.Failures)
	})

	t.Run("per_recipient_failure_does_not_halt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockSubscribersStore(ctrl)
		store.EXPECT().ListSubscribers().Return([]dal.Subscriber{
			{ChatID: 1, Day: 1},
			{ChatID: 2, Day: 2},
		}, nil)

		messenger := mocks.NewMockMessenger(ctrl)
		messenger.EXPECT().SendMessage(ctx, int64(1), gomock.Any()).Return(assert.AnError)
		messenger.EXPECT().SendMessage(ctx, int64(2), gomock.Any()).Return(nil)

		report, err := newBroadcast(store, messenger).Send(ctx, adminID, "hello")
		require.NoError(t, err)

		assert.Equal(t, 1, report.Sent)
		if assert.Len(t, report.Failures, 1) {
			assert.Equal(t, int64(1), report.Failures[0].ChatID)
		}
	})

	t.Run("error_list_subscribers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockSubscribersStore(ctrl)
		store.EXPECT().ListSubscribers().Return(nil, assert.AnError)

		messenger := mocks.NewMockMessenger(ctrl)

		_, err := newBroadcast(store, messenger).Send(ctx, adminID, "hello")
		require.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "list subscribers: ")
	})
}
