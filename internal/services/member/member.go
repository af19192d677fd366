// Package services содержит бизнес-логику управления участниками клуба.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ironman-fitness/gym-manager/internal/lib/password"
	"github.com/ironman-fitness/gym-manager/internal/lib/sequence"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)
	// GetUser возвращает пользователя по ID или models.ErrNotFound.
	GetUser(ctx context.Context, id int) (*models.User, error)
	// ListUsers возвращает всех пользователей в порядке создания.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// UpdateUser обновляет пользователя и возвращает число изменённых строк.
	UpdateUser(ctx context.Context, id int, user models.User) (int, error)
	// DeleteUser удаляет пользователя и возвращает число удалённых строк.
	DeleteUser(ctx context.Context, id int) (int, error)
	// FindUserConflict сообщает, занято ли имя, почта или номер телефона.
	FindUserConflict(ctx context.Context, name, email, mobileNumber string) (bool, error)
	// LastMemberID возвращает членский номер самой свежей записи.
	LastMemberID(ctx context.Context) (string, error)
}

// MemberService реализует операции администратора над участниками.
type MemberService struct {
	repo UserRepository
}

// NewMemberService создает новый экземпляр MemberService.
func NewMemberService(repo UserRepository) *MemberService {
	return &MemberService{repo: repo}
}

// Create добавляет участника. Проверка занятости имени, почты и телефона
// выполняется до вставки; гонку закрывают уникальные ограничения базы.
// Возвращает членский номер.
func (s *MemberService) Create(ctx context.Context, req models.DummyUser) (string, error) {
	const op = "member.Create"

	name := strings.ToLower(req.Name)
	taken, err := s.repo.FindUserConflict(ctx, name, req.Email, req.MobileNumber)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return "", fmt.Errorf("%s: %w", op, models.ErrDuplicate)
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	last, err := s.repo.LastMemberID(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	memberID, err := sequence.Next(sequence.PrefixMember, last)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Name:         name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		PasswordHash: hashed,
		Role:         req.Role,
		Status:       req.Status,
		MemberID:     memberID,
		Address:      req.Address,
	}
	if _, err := s.repo.CreateUser(ctx, user); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return memberID, nil
}

// Get возвращает участника по ID.
func (s *MemberService) Get(ctx context.Context, id int) (*models.User, error) {
	const op = "member.Get"
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// List возвращает всех участников.
func (s *MemberService) List(ctx context.Context) ([]*models.User, error) {
	const op = "member.List"
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// Update изменяет данные участника. Пустой пароль оставляет прежний хэш,
// членский номер не меняется.
func (s *MemberService) Update(ctx context.Context, id int, req models.DummyUser) error {
	const op = "member.Update"

	var hashed string
	if req.Password != "" {
		var err error
		hashed, err = password.GetHash(req.Password)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	user := models.User{
		Name:         strings.ToLower(req.Name),
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		PasswordHash: hashed,
		Role:         req.Role,
		Status:       req.Status,
		Address:      req.Address,
	}
	rows, err := s.repo.UpdateUser(ctx, id, user)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}

// Delete удаляет участника. Платежи не каскадируются: висящие ссылки
// допустимы и обрабатываются при чтении.
func (s *MemberService) Delete(ctx context.Context, id int) error {
	const op = "member.Delete"
	rows, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}
