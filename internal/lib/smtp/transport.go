package smtp

import (
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/ironman-fitness/gym-manager/internal/config"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
)

// Transport реализует SMTP транспорт для отправки писем.
type Transport struct {
	cfg *config.Config
	log *slog.Logger
}

// smtpClientWrapper обертка для *smtp.Client, реализующая интерфейс Client.
type smtpClientWrapper struct {
	client *smtp.Client
}

func (w *smtpClientWrapper) Mail(from string) error {
	return w.client.Mail(from)
}

func (w *smtpClientWrapper) Rcpt(to string) error {
	return w.client.Rcpt(to)
}

func (w *smtpClientWrapper) Data() (io.WriteCloser, error) {
	return w.client.Data()
}

func (w *smtpClientWrapper) Quit() error {
	return w.client.Quit()
}

func (w *smtpClientWrapper) Close() error {
	return w.client.Close()
}

// NewTransport создает новый экземпляр Transport.
func NewTransport(cfg *config.Config, log *slog.Logger) *Transport {
	return &Transport{cfg: cfg, log: log}
}

// Send собирает письмо и отправляет его через новое SMTP соединение.
// Отправитель берётся из настроек рассылки.
func (t *Transport) Send(to []string, subject, body string) error {
	client, err := t.connect()
	if err != nil {
		t.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	return t.deliver(client, to, subject, body)
}

// deliver проводит письмо через SMTP диалог на уже открытом клиенте.
func (t *Transport) deliver(client Client, to []string, subject, body string) error {
	from := t.cfg.SMTPUser
	msg := composeMessage(from, to, subject, body)

	if err := client.Mail(from); err != nil {
		t.log.Error("failed to set MAIL FROM", "from", from, "error", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			t.log.Error("failed to set RCPT TO", "recipient", addr, "error", sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		t.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		t.log.Error("failed to write email body", sl.Err(err))
		return err
	}
	if err = wc.Close(); err != nil {
		t.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}
	if err = client.Quit(); err != nil {
		t.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	t.log.Info("email sent", "to", to)
	return nil
}

// composeMessage собирает заголовки и тело в текст письма.
func composeMessage(from string, to []string, subject, body string) string {
	return strings.Join([]string{
		"From: " + from,
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")
}

// connect устанавливает соединение с SMTP сервером через STARTTLS.
func (t *Transport) connect() (Client, error) {
	addr := net.JoinHostPort(t.cfg.SMTPHost, strconv.Itoa(t.cfg.SMTPPort))

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.log.Error("failed to dial SMTP server", sl.Err(err))
		return nil, fmt.Errorf("failed to dial SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, t.cfg.SMTPHost)
	if err != nil {
		t.log.Error("failed to create SMTP client", sl.Err(err))
		if closeErr := conn.Close(); closeErr != nil {
			t.log.Error("failed to close connection", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	tlsConfig := &tls.Config{
		ServerName: t.cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	ok, _ := client.Extension("STARTTLS")
	if !ok {
		t.log.Error("SMTP server does not support STARTTLS")
		if closeErr := client.Close(); closeErr != nil {
			t.log.Error("failed to close client", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("smtp server does not support STARTTLS")
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		t.log.Error("failed to start TLS", sl.Err(err))
		if closeErr := client.Close(); closeErr != nil {
			t.log.Error("failed to close client", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", t.cfg.SMTPUser, t.cfg.SMTPPass, t.cfg.SMTPHost)
	if err = client.Auth(auth); err != nil {
		t.log.Error("smtp auth failed", sl.Err(err))
		if closeErr := client.Close(); closeErr != nil {
			t.log.Error("failed to close client", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("smtp auth failed: %w", err)
	}

	return &smtpClientWrapper{client: client}, nil
}
