package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"pasteleria/internal/infrastructure/migrations"
	"pasteleria/internal/infrastructure/sqlite"
)

// SetupTestDB returns an empty, migrated SQLite database living in the test's
// temp dir. It is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.NewConnection(filepath.Join(t.TempDir(), "pasteleria_test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := migrations.Up(db, "sqlite"); err != nil {
		db.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// SetupConcurrentTestDB is SetupTestDB with a pool of maxOpenConns
// connections, so transactions from different goroutines contend for the
// file lock instead of queueing for a single connection.
func SetupConcurrentTestDB(t *testing.T, maxOpenConns int) *sql.DB {
	t.Helper()

	db := SetupTestDB(t)
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)
	return db
}

// SetupMySQLTestDB connects to the database named by TEST_MYSQL_DSN, migrates
// it and empties every table. The DSN must set parseTime=true and
// clientFoundRows=true, as the server does. The test is skipped when the variable is unset
// or the server is unreachable.
func SetupMySQLTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set")
	}

	migrationDB, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		t.Skipf("test database not available: %v", err)
	}
	if err := migrations.Up(migrationDB, "mysql"); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	CleanupTestDB(t, db)

	t.Cleanup(func() { db.Close() })
	return db
}

// CleanupTestDB empties all tables, children first.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []string{"order_items", "orders", "custom_inquiries", "products"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
