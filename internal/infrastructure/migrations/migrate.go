package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pasteleria/internal/config"
)

//go:embed mysql/*.sql sqlite/*.sql
var files embed.FS

// Up applies every pending migration for the given dialect.
//
// The MySQL driver pins one connection of db until the migrator is closed,
// and closing the migrator closes db. Callers running MySQL migrations should
// pass a dedicated handle and discard it afterwards.
func Up(db *sql.DB, dialect string) error {
	var (
		driver database.Driver
		err    error
	)
	switch dialect {
	case config.DriverMySQL:
		driver, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	case config.DriverSQLite:
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		return fmt.Errorf("unsupported migration dialect %q", dialect)
	}
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	src, err := iofs.New(files, dialect)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	if dialect == config.DriverMySQL {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			return fmt.Errorf("closing migrator: %v", errors.Join(srcErr, dbErr))
		}
	}
	return nil
}
