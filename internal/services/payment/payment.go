// Package services содержит бизнес-логику платежей за абонементы:
// вычисление даты окончания, выдачу идентификаторов транзакций
// и денормализованную историю платежей участника.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ironman-fitness/gym-manager/internal/lib/expiry"
	"github.com/ironman-fitness/gym-manager/internal/lib/sequence"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// dateLayout — формат дат платежей в запросах и ответах.
const dateLayout = "2006-01-02"

// PaymentRepository определяет методы для работы с платежами в хранилище.
type PaymentRepository interface {
	// CreatePayment добавляет запись об оплате и возвращает её ID.
	CreatePayment(ctx context.Context, payment models.Payment) (int, error)
	// ListPayments возвращает все платежи, свежие первыми.
	ListPayments(ctx context.Context) ([]*models.Payment, error)
	// ListPaymentsByUser возвращает платежи пользователя, свежие первыми.
	ListPaymentsByUser(ctx context.Context, userID int) ([]*models.Payment, error)
	// LastTransactionID возвращает идентификатор самой свежей транзакции.
	LastTransactionID(ctx context.Context) (string, error)
}

// PlanReader возвращает план по внутреннему ID или models.ErrNotFound.
type PlanReader interface {
	GetPlan(ctx context.Context, id int) (*models.Plan, error)
}

// PaymentService реализует жизненный цикл платежа. Платёж неизменяем
// после создания.
type PaymentService struct {
	repo  PaymentRepository
	plans PlanReader
}

// NewPaymentService создает новый экземпляр PaymentService.
func NewPaymentService(repo PaymentRepository, plans PlanReader) *PaymentService {
	return &PaymentService{repo: repo, plans: plans}
}

// Create регистрирует оплату: разрешает план, считает дату окончания
// по сроку плана, выделяет идентификатор PAID## и вставляет запись.
// Возвращает идентификатор транзакции.
func (s *PaymentService) Create(ctx context.Context, req models.DummyPayment) (string, error) {
	const op = "payment.Create"

	if req.Date == "" {
		return "", fmt.Errorf("%s: %w", op, models.ErrMissingDate)
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return "", fmt.Errorf("%s: %q: %w", op, req.Date, models.ErrMissingDate)
	}

	plan, err := s.plans.GetPlan(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, models.ErrMissingPlan)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	last, err := s.repo.LastTransactionID(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	transactionID, err := sequence.Next(sequence.PrefixTransaction, last)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	payment := models.Payment{
		TransactionID: transactionID,
		UserID:        req.UserID,
		PlanID:        req.PlanID,
		Amount:        req.Amount,
		Date:          date,
		ExpiryDate:    expiry.Add(date, plan.Duration),
	}
	if _, err := s.repo.CreatePayment(ctx, payment); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return transactionID, nil
}

// List возвращает все платежи, свежие первыми.
func (s *PaymentService) List(ctx context.Context) ([]*models.Payment, error) {
	const op = "payment.List"
	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return payments, nil
}

// HistoryByUser собирает историю платежей участника с названиями планов.
// Висящая ссылка на удалённый план даёт "No plan" и N/A вместо ошибки.
// Вторым значением возвращается дата окончания действующего абонемента
// (последний платёж) или N/A при пустой истории.
func (s *PaymentService) HistoryByUser(ctx context.Context, userID int) ([]models.PaymentInfo, string, error) {
	const op = "payment.HistoryByUser"

	payments, err := s.repo.ListPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	planNames := make(map[int]*models.Plan)
	history := make([]models.PaymentInfo, 0, len(payments))
	for _, p := range payments {
		info := models.PaymentInfo{
			TransactionID: p.TransactionID,
			Amount:        p.Amount,
			Date:          p.Date,
			ExpiryDate:    p.ExpiryDate,
			PlanName:      "No plan",
			PlanID:        models.FieldMissing,
		}
		plan, ok := planNames[p.PlanID]
		if !ok {
			plan, err = s.plans.GetPlan(ctx, p.PlanID)
			if err != nil && !errors.Is(err, models.ErrNotFound) {
				return nil, "", fmt.Errorf("%s: %w", op, err)
			}
			planNames[p.PlanID] = plan
		}
		if plan != nil {
			info.PlanName = plan.Name
			info.PlanID = plan.PlanID
		}
		history = append(history, info)
	}

	currentExpiry := models.FieldMissing
	if len(history) > 0 {
		currentExpiry = history[0].ExpiryDate.Format(dateLayout)
	}
	return history, currentExpiry, nil
}
