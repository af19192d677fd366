package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/ironman-fitness/gym-manager/internal/config"
	"github.com/ironman-fitness/gym-manager/internal/lib/smtp"
	"github.com/ironman-fitness/gym-manager/internal/rabbitmq"
	senderservice "github.com/ironman-fitness/gym-manager/internal/services/sender"
)

type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	queues := rabbitmq.GetNotificationQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("failed to close connection", slog.Any("err", closeErr))
		}
		return nil, err
	}

	newTransport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(newTransport, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, "notifications.expiry", a.senderService.SendExpiryReminder)
	if err != nil {
		a.logger.Error("failed to start notifications.expiry consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
