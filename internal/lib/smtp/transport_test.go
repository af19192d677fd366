package smtp

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironman-fitness/gym-manager/internal/config"
)

type ClientMock struct {
	mock.Mock
	body bytes.Buffer
}

func (m *ClientMock) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}

func (m *ClientMock) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (m *ClientMock) Data() (io.WriteCloser, error) {
	args := m.Called()
	return nopWriteCloser{&m.body}, args.Error(1)
}

func (m *ClientMock) Quit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *ClientMock) Close() error {
	return nil
}

func newTestTransport() *Transport {
	cfg := &config.Config{}
	cfg.SMTPUser = "noreply@ironman.fit"
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	return NewTransport(cfg, log)
}

func TestTransport_Deliver(t *testing.T) {
	t.Run("полный диалог с заголовками письма", func(t *testing.T) {
		client := new(ClientMock)
		client.On("Mail", "noreply@ironman.fit").Return(nil).Once()
		client.On("Rcpt", "alice@example.com").Return(nil).Once()
		client.On("Data").Return(nil, nil).Once()
		client.On("Quit").Return(nil).Once()

		transport := newTestTransport()
		err := transport.deliver(client, []string{"alice@example.com"}, "Тема", "Текст письма")

		require.NoError(t, err)
		sent := client.body.String()
		assert.Contains(t, sent, "From: noreply@ironman.fit")
		assert.Contains(t, sent, "To: alice@example.com")
		assert.Contains(t, sent, "Subject: Тема")
		assert.Contains(t, sent, "Content-Type: text/plain; charset=\"UTF-8\"")
		assert.Contains(t, sent, "\r\n\r\nТекст письма")
		client.AssertExpectations(t)
	})

	t.Run("отказ на RCPT прерывает отправку", func(t *testing.T) {
		client := new(ClientMock)
		client.On("Mail", "noreply@ironman.fit").Return(nil).Once()
		client.On("Rcpt", "bad@example.com").Return(errors.New("mailbox unavailable")).Once()

		transport := newTestTransport()
		err := transport.deliver(client, []string{"bad@example.com"}, "Тема", "Текст")

		require.Error(t, err)
		client.AssertNotCalled(t, "Data")
	})
}
