// Package services содержит логику бизнес-уровня для регистрации и входа.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ironman-fitness/gym-manager/internal/lib/jwt"
	"github.com/ironman-fitness/gym-manager/internal/lib/password"
	"github.com/ironman-fitness/gym-manager/internal/lib/sequence"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)

	// GetUserByName возвращает пользователя по имени без учёта регистра
	// или models.ErrNotFound.
	GetUserByName(ctx context.Context, name string) (*models.User, error)

	// LastMemberID возвращает членский номер самой свежей записи
	// или пустую строку.
	LastMemberID(ctx context.Context) (string, error)
}

// AuthService отвечает за регистрацию, авторизацию и выпуск JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с ролью customer и статусом active.
// Имя приводится к нижнему регистру, пароль хэшируется, членский номер
// выделяется последовательно. Возвращает членский номер.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "auth.Register"

	name := strings.ToLower(username)
	if _, err := s.users.GetUserByName(ctx, name); err == nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrDuplicate)
	} else if !errors.Is(err, models.ErrNotFound) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	last, err := s.users.LastMemberID(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	memberID, err := sequence.Next(sequence.PrefixMember, last)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Name:         name,
		PasswordHash: hashed,
		Role:         models.RoleCustomer,
		Status:       models.StatusActive,
		MemberID:     memberID,
	}
	if _, err := s.users.CreateUser(ctx, user); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return memberID, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
//
// Неизвестное имя и неверный пароль дают одинаковую ошибку
// models.ErrInvalidCredentials, чтобы не раскрывать существование имени.
// Статус учётной записи проверяется только после совпадения пароля.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (token, role string, err error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	if user.Status != models.StatusActive {
		return "", "", fmt.Errorf("%s: %w", op, models.ErrAccountInactive)
	}

	token, err = s.jwtMaker.GenerateToken(user.Name, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return token, user.Role, nil
}

// LandingRoute возвращает стартовый маршрут клиента для роли.
func LandingRoute(role string) string {
	return "/dashboard/" + role
}
