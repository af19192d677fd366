// Package services реализует массовый импорт участников из табличных файлов.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ironman-fitness/gym-manager/internal/lib/password"
	"github.com/ironman-fitness/gym-manager/internal/lib/sequence"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	"github.com/ironman-fitness/gym-manager/internal/lib/tabular"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// defaultImportPassword — пароль-заполнитель для импортированных учётных
// записей. Хэшируется один раз за прогон, участникам предлагается сменить
// его при первом входе.
const defaultImportPassword = "defaultPassword123"

// UserRepository определяет методы хранилища, нужные импорту.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)
	// FindUserConflict сообщает, занято ли имя, почта или номер телефона.
	FindUserConflict(ctx context.Context, name, email, mobileNumber string) (bool, error)
	// LastMemberID возвращает членский номер самой свежей записи.
	LastMemberID(ctx context.Context) (string, error)
}

// Result — итог прогона импорта.
type Result struct {
	Success int `json:"success"` // Вставленные строки
	Failed  int `json:"failed"`  // Отклонённые строки
}

// ImportService построчно вставляет участников из csv/xlsx файла.
// Ошибка одной строки не прерывает прогон: строка считается отклонённой,
// импорт продолжается.
type ImportService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewImportService создает новый экземпляр ImportService.
func NewImportService(repo UserRepository, log *slog.Logger) *ImportService {
	return &ImportService{repo: repo, log: log}
}

// ImportUsers разбирает файл по расширению (.xlsx или csv) и вставляет
// участников. Колонка name обязательна; role по умолчанию customer,
// status — active. Членские номера выделяются последовательно по строкам.
func (s *ImportService) ImportUsers(ctx context.Context, filename string, r io.Reader) (Result, error) {
	const op = "importer.ImportUsers"

	var rows []map[string]string
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		rows, err = tabular.DecodeXLSX(r)
	} else {
		rows, err = tabular.DecodeCSV(r)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(defaultImportPassword)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	var res Result
	for i, row := range rows {
		if err := s.importRow(ctx, row, hashed); err != nil {
			s.log.Warn("import row rejected", slog.Int("row", i+1), sl.Err(err))
			res.Failed++
			continue
		}
		res.Success++
	}
	return res, nil
}

func (s *ImportService) importRow(ctx context.Context, row map[string]string, passwordHash string) error {
	name := strings.ToLower(strings.TrimSpace(row["name"]))
	if name == "" {
		return fmt.Errorf("missing name")
	}
	email := strings.TrimSpace(row["email"])
	mobile := strings.TrimSpace(row["mobile_number"])

	taken, err := s.repo.FindUserConflict(ctx, name, email, mobile)
	if err != nil {
		return err
	}
	if taken {
		return models.ErrDuplicate
	}

	last, err := s.repo.LastMemberID(ctx)
	if err != nil {
		return err
	}
	memberID, err := sequence.Next(sequence.PrefixMember, last)
	if err != nil {
		return err
	}

	role := strings.TrimSpace(row["role"])
	if role == "" {
		role = models.RoleCustomer
	}
	status := strings.TrimSpace(row["status"])
	if status == "" {
		status = models.StatusActive
	}

	_, err = s.repo.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		MobileNumber: mobile,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       status,
		MemberID:     memberID,
		Address:      strings.TrimSpace(row["address"]),
	})
	return err
}
