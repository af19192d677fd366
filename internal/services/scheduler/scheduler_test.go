package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironman-fitness/gym-manager/internal/models"
	services "github.com/ironman-fitness/gym-manager/internal/services/scheduler"
)

type ReminderSourceMock struct {
	mock.Mock
}

func (m *ReminderSourceMock) DueThisMonth(ctx context.Context, today time.Time) ([]*models.Reminder, error) {
	args := m.Called(ctx, today)
	reminders, _ := args.Get(0).([]*models.Reminder)
	return reminders, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestScan(t *testing.T) {
	t.Run("каждое напоминание публикуется с ключом expiry", func(t *testing.T) {
		source := new(ReminderSourceMock)
		reminders := []*models.Reminder{
			{MemberID: "MEM01", Email: "a@b.c"},
			{MemberID: "MEM02", Email: "d@e.f"},
		}
		source.On("DueThisMonth", mock.Anything, mock.Anything).Return(reminders, nil).Once()

		var published []*models.Reminder
		publish := func(_ *amqp.Channel, exchange, routingKey string, message any) error {
			assert.Equal(t, "notifications", exchange)
			assert.Equal(t, "expiry", routingKey)
			published = append(published, message.(*models.Reminder))
			return nil
		}

		svc := services.NewSchedulerServiceWithPublisher(source, publish, newNoopLogger())
		svc.Scan(context.Background(), nil)

		require.Len(t, published, 2)
		assert.Equal(t, "MEM01", published[0].MemberID)
		source.AssertExpectations(t)
	})

	t.Run("ошибка публикации не прерывает остальные", func(t *testing.T) {
		source := new(ReminderSourceMock)
		source.On("DueThisMonth", mock.Anything, mock.Anything).Return([]*models.Reminder{
			{MemberID: "MEM01"}, {MemberID: "MEM02"},
		}, nil).Once()

		calls := 0
		publish := func(_ *amqp.Channel, _, _ string, _ any) error {
			calls++
			return errors.New("broker unavailable")
		}

		svc := services.NewSchedulerServiceWithPublisher(source, publish, newNoopLogger())
		svc.Scan(context.Background(), nil)

		assert.Equal(t, 2, calls)
	})

	t.Run("ошибка выборки не публикует ничего", func(t *testing.T) {
		source := new(ReminderSourceMock)
		source.On("DueThisMonth", mock.Anything, mock.Anything).
			Return(nil, errors.New("db down")).Once()

		publish := func(_ *amqp.Channel, _, _ string, _ any) error {
			t.Fatal("publish must not be called")
			return nil
		}

		svc := services.NewSchedulerServiceWithPublisher(source, publish, newNoopLogger())
		svc.Scan(context.Background(), nil)
	})
}
