// Package services выводит напоминания об абонементах, срок которых
// истекает в текущем календарном месяце.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ironman-fitness/gym-manager/internal/lib/expiry"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// ReminderRepository выбирает платежи с датой окончания в заданных границах.
type ReminderRepository interface {
	FindPaymentsExpiringBetween(ctx context.Context, first, last time.Time) ([]*models.Reminder, error)
}

// NotificationService пересчитывает список напоминаний при каждом вызове,
// ничего не сохраняя между вызовами.
type NotificationService struct {
	repo ReminderRepository
}

// NewNotificationService создает новый экземпляр NotificationService.
func NewNotificationService(repo ReminderRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// DueThisMonth возвращает напоминания по платежам, срок которых истекает
// в календарном месяце, содержащем today. Обе границы месяца включительны,
// результат отсортирован по дате окончания по возрастанию.
func (s *NotificationService) DueThisMonth(ctx context.Context, today time.Time) ([]*models.Reminder, error) {
	const op = "notification.DueThisMonth"
	first, last := expiry.MonthBounds(today)
	reminders, err := s.repo.FindPaymentsExpiringBetween(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reminders, nil
}
