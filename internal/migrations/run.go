// Package migrations применяет встроенные SQL-миграции к базе данных.
package migrations

import (
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	schema "github.com/krotovalex/inventory-keeper/migrations"
)

// Run накатывает все недостающие миграции. Повторный запуск без
// изменений не считается ошибкой.
func Run(db *sql.DB) error {
	driver, err := pgxv5.WithInstance(db, &pgxv5.Config{})
	if err != nil {
		return err
	}
	source, err := iofs.New(schema.FS, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance(
		"iofs",
		source,
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
