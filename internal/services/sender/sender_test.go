package services_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironman-fitness/gym-manager/internal/models"
	services "github.com/ironman-fitness/gym-manager/internal/services/sender"
)

type TransportMock struct {
	mock.Mock
}

func (m *TransportMock) Send(to []string, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func reminderBody(t *testing.T, r models.Reminder) []byte {
	t.Helper()
	body, err := json.Marshal(r)
	require.NoError(t, err)
	return body
}

func TestSendExpiryReminder(t *testing.T) {
	t.Run("письмо уходит на адрес участника", func(t *testing.T) {
		transport := new(TransportMock)
		transport.On("Send", []string{"alice@example.com"}, mock.Anything, mock.Anything).
			Return(nil).Once()

		svc := services.NewSenderService(transport, newNoopLogger())
		err := svc.SendExpiryReminder(reminderBody(t, models.Reminder{
			Username:      "alice",
			Email:         "alice@example.com",
			PlanName:      "Gold",
			TransactionID: "PAID03",
			ExpiryDate:    time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		}))

		require.NoError(t, err)
		body := transport.Calls[0].Arguments.String(2)
		assert.Contains(t, body, "Gold")
		assert.Contains(t, body, "PAID03")
		assert.Contains(t, body, "2024-03-10")
		transport.AssertExpectations(t)
	})

	t.Run("напоминание без почты пропускается", func(t *testing.T) {
		transport := new(TransportMock)

		svc := services.NewSenderService(transport, newNoopLogger())
		err := svc.SendExpiryReminder(reminderBody(t, models.Reminder{
			Username: "ghost",
			Email:    models.FieldMissing,
		}))

		require.NoError(t, err)
		transport.AssertNotCalled(t, "Send")
	})

	t.Run("ошибка транспорта возвращается в очередь", func(t *testing.T) {
		transport := new(TransportMock)
		transport.On("Send", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp down")).Once()

		svc := services.NewSenderService(transport, newNoopLogger())
		err := svc.SendExpiryReminder(reminderBody(t, models.Reminder{
			Username: "bob",
			Email:    "bob@example.com",
		}))

		require.Error(t, err)
	})

	t.Run("нечитаемое тело сообщения", func(t *testing.T) {
		transport := new(TransportMock)

		svc := services.NewSenderService(transport, newNoopLogger())
		err := svc.SendExpiryReminder([]byte("not json"))

		require.Error(t, err)
	})
}
