// Package services содержит планировщик рассылки напоминаний: периодический
// поиск абонементов, истекающих в текущем месяце, и публикацию напоминаний
// в RabbitMQ.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	"github.com/ironman-fitness/gym-manager/internal/models"
	"github.com/ironman-fitness/gym-manager/internal/rabbitmq"
)

// ReminderSource выдаёт напоминания по платежам, истекающим в месяце today.
type ReminderSource interface {
	DueThisMonth(ctx context.Context, today time.Time) ([]*models.Reminder, error)
}

// Publisher публикует сообщение в exchange с ключом маршрутизации.
// Сигнатура совпадает с rabbitmq.PublishMessage.
type Publisher func(ch *amqp.Channel, exchange, routingKey string, message any) error

// SchedulerService периодически сканирует платежи и публикует напоминания.
type SchedulerService struct {
	source  ReminderSource
	publish Publisher
	log     *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(source ReminderSource, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		source:  source,
		publish: rabbitmq.PublishMessage,
		log:     log,
	}
}

// NewSchedulerServiceWithPublisher создает SchedulerService с заменённым
// публикатором. Используется в тестах.
func NewSchedulerServiceWithPublisher(source ReminderSource, publish Publisher, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		source:  source,
		publish: publish,
		log:     log,
	}
}

// Run выполняет сканирование сразу и далее с периодом interval,
// пока не отменён контекст.
func (s *SchedulerService) Run(ctx context.Context, channel *amqp.Channel, interval time.Duration) {
	s.scan(ctx, channel)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.scan(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

// Scan публикует напоминание по каждому платежу, истекающему в текущем
// месяце. Ошибка публикации одного напоминания не прерывает остальные.
func (s *SchedulerService) Scan(ctx context.Context, channel *amqp.Channel) {
	s.scan(ctx, channel)
}

func (s *SchedulerService) scan(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("scanning for memberships expiring this month")
	reminders, err := s.source.DueThisMonth(ctx, time.Now())
	if err != nil {
		s.log.Error("failed to find expiring memberships", sl.Err(err))
		return
	}
	if len(reminders) == 0 {
		s.log.Info("no expiring memberships found")
		return
	}
	s.log.Info("found expiring memberships", "count", len(reminders))
	for _, reminder := range reminders {
		if err := s.publish(channel, rabbitmq.NotificationsExchange, "expiry", reminder); err != nil {
			s.log.Error("failed to publish reminder", sl.Err(err))
		}
	}
}
