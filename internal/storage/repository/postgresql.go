// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями, тарифными планами, инвентарём и платежами.
// Предоставляет методы создания, чтения, обновления и удаления записей,
// а также выборки последних выданных идентификаторов.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ironman-fitness/gym-manager/internal/models"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с доменными таблицами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}

// wrapRowError переводит ошибки уровня базы в классификацию приложения:
// отсутствие строк — models.ErrNotFound, нарушение уникальности —
// models.ErrDuplicate. Остальные ошибки оборачиваются как есть.
func wrapRowError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, models.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
