package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ironman-fitness/gym-manager/internal/models"
)

// CreatePayment вставляет новую запись об оплате и возвращает её ID.
func (s *Storage) CreatePayment(ctx context.Context, payment models.Payment) (int, error) {
	const op = "storage.CreatePayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (transaction_id, user_id, plan_id, amount, date, expiry_date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		payment.TransactionID, payment.UserID, payment.PlanID, payment.Amount,
		payment.Date, payment.ExpiryDate).Scan(&newID)
	if err != nil {
		return 0, wrapRowError(op, err)
	}
	return newID, nil
}

// ListPayments возвращает все платежи, свежие первыми.
func (s *Storage) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	const op = "storage.ListPayments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, transaction_id, user_id, plan_id, amount, date, expiry_date
			  FROM payments
			  ORDER BY id DESC`
	return s.queryPayments(ctx, op, query)
}

// ListPaymentsByUser возвращает платежи пользователя, свежие первыми.
// Вторичный ключ сортировки id делает порядок детерминированным
// при совпадающих датах.
func (s *Storage) ListPaymentsByUser(ctx context.Context, userID int) ([]*models.Payment, error) {
	const op = "storage.ListPaymentsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, transaction_id, user_id, plan_id, amount, date, expiry_date
			  FROM payments
			  WHERE user_id = $1
			  ORDER BY date DESC, id DESC`
	return s.queryPayments(ctx, op, query, userID)
}

func (s *Storage) queryPayments(ctx context.Context, op, query string, args ...any) ([]*models.Payment, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.TransactionID, &p.UserID, &p.PlanID,
			&p.Amount, &p.Date, &p.ExpiryDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// LastTransactionID возвращает идентификатор самой свежей транзакции
// или пустую строку, если платежей нет.
func (s *Storage) LastTransactionID(ctx context.Context) (string, error) {
	const op = "storage.LastTransactionID"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT transaction_id FROM payments ORDER BY id DESC LIMIT 1`
	var transactionID string
	err := s.DB.QueryRowContext(ctx, query).Scan(&transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return transactionID, nil
}

// FindPaymentsExpiringBetween находит платежи с датой окончания в границах
// [first, last] включительно и собирает денормализованные напоминания.
// Пользователь и план присоединяются через LEFT JOIN: платёж с висящей
// ссылкой остаётся в выборке, отсутствующие поля заполняются N/A.
func (s *Storage) FindPaymentsExpiringBetween(ctx context.Context, first, last time.Time) ([]*models.Reminder, error) {
	const op = "storage.FindPaymentsExpiringBetween"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
			      u.member_id,
			      u.name,
			      u.email,
			      pl.name,
			      p.amount,
			      p.date,
			      p.transaction_id,
			      p.expiry_date
			  FROM payments p
			  LEFT JOIN users u ON u.id = p.user_id
			  LEFT JOIN plans pl ON pl.id = p.plan_id
			  WHERE p.expiry_date >= $1 AND p.expiry_date <= $2
			  ORDER BY p.expiry_date ASC`
	rows, err := s.DB.QueryContext(ctx, query, first, last)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Reminder
	for rows.Next() {
		var r models.Reminder
		var memberID, username, email, planName sql.NullString
		if err := rows.Scan(&memberID, &username, &email, &planName,
			&r.Amount, &r.PaymentDate, &r.TransactionID, &r.ExpiryDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		r.MemberID = nullOr(memberID)
		r.Username = nullOr(username)
		r.Email = nullOr(email)
		r.PlanName = nullOr(planName)
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func nullOr(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return models.FieldMissing
}
