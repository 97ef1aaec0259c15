package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "tx.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE counters (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE, value INTEGER NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM counters`).Scan(&n))
	return n
}

func TestRunInTx_Commits(t *testing.T) {
	db := openDB(t)

	err := RunInTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO counters (name, value) VALUES ('a', 1)`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db))
}

func TestRunInTx_RollsBackOnError(t *testing.T) {
	db := openDB(t)
	boom := errors.New("boom")

	err := RunInTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO counters (name, value) VALUES ('a', 1)`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countRows(t, db))
}

func TestRunInTx_RollsBackOnPanic(t *testing.T) {
	db := openDB(t)

	assert.Panics(t, func() {
		_ = RunInTx(context.Background(), db, func(tx *sql.Tx) error {
			_, _ = tx.Exec(`INSERT INTO counters (name, value) VALUES ('a', 1)`)
			panic("boom")
		})
	})
	assert.Equal(t, 0, countRows(t, db))
}

type failingBeginner struct{}

func (failingBeginner) BeginTx(context.Context, *sql.TxOptions) (*sql.Tx, error) {
	return nil, errors.New("no connection")
}

func TestRunInTx_BeginFails(t *testing.T) {
	called := false
	err := RunInTx(context.Background(), failingBeginner{}, func(*sql.Tx) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
