// Package services отправляет письма-напоминания об истекающих абонементах.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	"github.com/ironman-fitness/gym-manager/internal/lib/smtp"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// SenderService получает напоминания из очереди и рассылает письма по SMTP.
type SenderService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(transport smtp.TransportInterface, log *slog.Logger) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendExpiryReminder разбирает напоминание из тела сообщения очереди
// и отправляет письмо участнику. Напоминание без адреса (почта N/A —
// платёж ссылается на удалённого пользователя) пропускается без ошибки,
// чтобы сообщение не возвращалось в очередь бесконечно.
func (s *SenderService) SendExpiryReminder(body []byte) error {
	var reminder models.Reminder
	if err := json.Unmarshal(body, &reminder); err != nil {
		s.log.Error("failed to unmarshal reminder", sl.Err(err))
		return fmt.Errorf("error unmarshalling reminder: %w", err)
	}

	if reminder.Email == "" || reminder.Email == models.FieldMissing {
		s.log.Warn("reminder has no email, skipping",
			slog.String("member_id", reminder.MemberID),
			slog.String("transaction_id", reminder.TransactionID))
		return nil
	}

	subject := "Напоминание об окончании абонемента"
	bodyText := fmt.Sprintf(
		"Здравствуйте, %s!\n\nВаш абонемент по тарифу %s (платёж %s) заканчивается %s.\n\nПожалуйста, продлите его заранее.",
		reminder.Username, reminder.PlanName, reminder.TransactionID,
		reminder.ExpiryDate.Format("2006-01-02"))

	if err := s.transport.Send([]string{reminder.Email}, subject, bodyText); err != nil {
		s.log.Error("failed to send reminder email", sl.Err(err))
		return err
	}

	s.log.Info("reminder email sent",
		slog.String("member_id", reminder.MemberID),
		slog.String("transaction_id", reminder.TransactionID))
	return nil
}
