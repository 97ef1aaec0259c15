package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	apperrors "pasteleria/internal/errors"
)

func TestIsRetryable_MySQL(t *testing.T) {
	assert.True(t, IsRetryable(&mysql.MySQLError{Number: 1213}))
	assert.True(t, IsRetryable(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1205})))
	assert.False(t, IsRetryable(&mysql.MySQLError{Number: 1062}))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestIsConstraintViolation_MySQL(t *testing.T) {
	assert.True(t, IsConstraintViolation(&mysql.MySQLError{Number: 1062}))
	assert.True(t, IsConstraintViolation(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsConstraintViolation(&mysql.MySQLError{Number: 1213}))
}

func TestIsConstraintViolation_SQLite(t *testing.T) {
	db := openDB(t)

	_, err := db.Exec(`INSERT INTO counters (name, value) VALUES ('a', 1)`)
	assert.NoError(t, err)
	_, err = db.Exec(`INSERT INTO counters (name, value) VALUES ('a', 2)`)
	assert.True(t, IsConstraintViolation(err))
	assert.False(t, IsRetryable(err))
}

func TestClassify(t *testing.T) {
	assert.Nil(t, Classify(nil, "x"))

	nf := apperrors.NewNotFoundError("order not found")
	assert.Same(t, nf, Classify(nf, "loading order"))

	err := Classify(&mysql.MySQLError{Number: 1062}, "duplicate order code")
	ce, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "duplicate order code", ce.Message)

	deadlock := &mysql.MySQLError{Number: 1213}
	err = Classify(deadlock, "adding item")
	var internal *apperrors.InternalError
	assert.ErrorAs(t, err, &internal)
	assert.True(t, IsRetryable(err))
}

func TestClassify_OutOfRangeIsValidation(t *testing.T) {
	err := Classify(fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1264}), "updating order total")

	ve, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "updating order total: value out of range", ve.Message)
	assert.False(t, IsOutOfRange(&mysql.MySQLError{Number: 1062}))
}
