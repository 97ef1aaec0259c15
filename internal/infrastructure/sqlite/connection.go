package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// NewConnection opens an embedded database file. Writers are serialized over
// a single connection; busy_timeout covers other processes holding the file.
func NewConnection(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}
