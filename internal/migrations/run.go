// Package migrations применяет SQL-миграции схемы при старте приложения.
package migrations

import (
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Run применяет все миграции из каталога path к базе db.
// Отсутствие новых миграций не считается ошибкой.
func Run(db *sql.DB, path string) error {
	driver, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(
		"file://"+path,
		"pgx_v5",
		driver,
	)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}
