package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ironman-fitness/gym-manager/internal/models"
)

// CreateUser вставляет нового пользователя и возвращает его ID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (name, email, mobile_number, password, role, status,
			      member_id, address)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		user.Name, user.Email, user.MobileNumber, user.PasswordHash, user.Role,
		user.Status, user.MemberID, user.Address).Scan(&newID)
	if err != nil {
		return 0, wrapRowError(op, err)
	}
	return newID, nil
}

// GetUserByName возвращает пользователя по имени без учёта регистра.
func (s *Storage) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	const op = "storage.GetUserByName"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, mobile_number, password, role, status,
			      member_id, address
			  FROM users
			  WHERE lower(name) = lower($1)`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, name)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.MobileNumber, &u.PasswordHash,
		&u.Role, &u.Status, &u.MemberID, &u.Address); err != nil {
		return nil, wrapRowError(op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, mobile_number, password, role, status,
			      member_id, address
			  FROM users
			  WHERE id = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.MobileNumber, &u.PasswordHash,
		&u.Role, &u.Status, &u.MemberID, &u.Address); err != nil {
		return nil, wrapRowError(op, err)
	}
	return u, nil
}

// ListUsers возвращает список всех пользователей в порядке создания.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, mobile_number, password, role, status,
			      member_id, address
			  FROM users
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.MobileNumber, &u.PasswordHash,
			&u.Role, &u.Status, &u.MemberID, &u.Address); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateUser обновляет данные пользователя по ID и возвращает количество
// изменённых строк. Пустой PasswordHash оставляет пароль прежним.
func (s *Storage) UpdateUser(ctx context.Context, id int, user models.User) (int, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET name = $1, email = $2, mobile_number = $3, role = $4, status = $5,
			      address = $6,
			      password = CASE WHEN $7 = '' THEN password ELSE $7 END
			  WHERE id = $8`
	result, err := s.DB.ExecContext(ctx, query,
		user.Name, user.Email, user.MobileNumber, user.Role, user.Status,
		user.Address, user.PasswordHash, id)
	if err != nil {
		return 0, wrapRowError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteUser удаляет пользователя по ID и возвращает количество удалённых строк.
func (s *Storage) DeleteUser(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM users WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// FindUserConflict проверяет, занято ли имя, почта или номер телефона.
// Фильтр объединяется через OR, имя сравнивается без учёта регистра.
// Пустые почта и телефон из сравнения исключаются.
func (s *Storage) FindUserConflict(ctx context.Context, name, email, mobileNumber string) (bool, error) {
	const op = "storage.FindUserConflict"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
			      SELECT 1 FROM users
			      WHERE lower(name) = lower($1)
			         OR ($2 <> '' AND lower(email) = lower($2))
			         OR ($3 <> '' AND mobile_number = $3)
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, name, email, mobileNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// LastMemberID возвращает членский номер самой свежей записи
// или пустую строку, если записей нет.
func (s *Storage) LastMemberID(ctx context.Context) (string, error) {
	const op = "storage.LastMemberID"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT member_id FROM users ORDER BY id DESC LIMIT 1`
	var memberID string
	err := s.DB.QueryRowContext(ctx, query).Scan(&memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return memberID, nil
}
