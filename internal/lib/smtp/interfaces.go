// Package smtp предоставляет транспорт для отправки писем-напоминаний.
package smtp

import "io"

// Client интерфейс для SMTP клиента.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface интерфейс для SMTP транспорта. Транспорт сам собирает
// конверт письма: отправителем всегда выступает учётная запись рассылки.
type TransportInterface interface {
	Send(to []string, subject, body string) error
}
