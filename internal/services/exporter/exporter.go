// Package services реализует выгрузку таблиц в csv-файлы.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ironman-fitness/gym-manager/internal/lib/tabular"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

const dateLayout = "2006-01-02"

// ExportRepository определяет методы чтения всех таблиц.
type ExportRepository interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListPlans(ctx context.Context) ([]*models.Plan, error)
	ListEquipment(ctx context.Context) ([]*models.Equipment, error)
	ListPayments(ctx context.Context) ([]*models.Payment, error)
}

// ExportService сериализует содержимое таблицы в csv. Пароли не выгружаются.
type ExportService struct {
	repo ExportRepository
}

// NewExportService создает новый экземпляр ExportService.
func NewExportService(repo ExportRepository) *ExportService {
	return &ExportService{repo: repo}
}

// Export выгружает таблицу целиком. Возвращает имя файла вида <table>.csv
// и содержимое; пустая таблица даёт пустую строку. Неизвестное имя таблицы
// даёт models.ErrNotFound.
func (s *ExportService) Export(ctx context.Context, table string) (filename, content string, err error) {
	const op = "exporter.Export"

	var headers []string
	var rows [][]any

	switch table {
	case "users":
		users, lerr := s.repo.ListUsers(ctx)
		if lerr != nil {
			return "", "", fmt.Errorf("%s: %w", op, lerr)
		}
		headers = []string{"member_id", "name", "email", "mobile_number", "role", "status", "address"}
		for _, u := range users {
			rows = append(rows, []any{u.MemberID, u.Name, u.Email, u.MobileNumber, u.Role, u.Status, u.Address})
		}
	case "plans":
		plans, lerr := s.repo.ListPlans(ctx)
		if lerr != nil {
			return "", "", fmt.Errorf("%s: %w", op, lerr)
		}
		headers = []string{"plan_id", "name", "duration", "price", "status"}
		for _, p := range plans {
			rows = append(rows, []any{p.PlanID, p.Name, p.Duration, p.Price, p.Status})
		}
	case "equipment":
		items, lerr := s.repo.ListEquipment(ctx)
		if lerr != nil {
			return "", "", fmt.Errorf("%s: %w", op, lerr)
		}
		headers = []string{"name", "type", "quantity", "status"}
		for _, eq := range items {
			rows = append(rows, []any{eq.Name, eq.Type, eq.Quantity, eq.Status})
		}
	case "payments":
		payments, lerr := s.repo.ListPayments(ctx)
		if lerr != nil {
			return "", "", fmt.Errorf("%s: %w", op, lerr)
		}
		headers = []string{"transaction_id", "user_id", "plan_id", "amount", "date", "expiry_date"}
		for _, p := range payments {
			rows = append(rows, []any{
				p.TransactionID, p.UserID, p.PlanID, p.Amount,
				formatDate(p.Date), formatDate(p.ExpiryDate),
			})
		}
	default:
		return "", "", fmt.Errorf("%s: table %q: %w", op, table, models.ErrNotFound)
	}

	if len(rows) == 0 {
		return table + ".csv", "", nil
	}
	return table + ".csv", tabular.Encode(headers, rows), nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
