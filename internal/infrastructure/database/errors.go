package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	apperrors "pasteleria/internal/errors"
)

const (
	mysqlDuplicateEntry   = 1062
	mysqlRowIsReferenced  = 1451
	mysqlNoReferencedRow  = 1452
	mysqlLockWaitTimeout  = 1205
	mysqlDeadlockDetected = 1213
	mysqlOutOfRange       = 1264
	mysqlDataTooLong      = 1406
)

// IsRetryable reports whether err is a lock conflict that a fresh transaction
// may not hit again.
func IsRetryable(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDeadlockDetected || myErr.Number == mysqlLockWaitTimeout
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code() & 0xff
		return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
	}
	return false
}

// IsConstraintViolation reports uniqueness and foreign key violations.
func IsConstraintViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlRowIsReferenced, mysqlNoReferencedRow:
			return true
		}
		return false
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

// IsOutOfRange reports values rejected by strict mode for not fitting their column.
func IsOutOfRange(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlOutOfRange || myErr.Number == mysqlDataTooLong
	}
	return false
}

// Classify maps a driver error onto the application error taxonomy.
// Application errors pass through unchanged. Everything else becomes an
// InternalError that still unwraps to the driver error, so IsRetryable keeps
// working on the result.
func Classify(err error, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		return err
	}
	if _, ok := apperrors.IsValidationError(err); ok {
		return err
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		return err
	}
	if IsOutOfRange(err) {
		return apperrors.NewValidationError(message + ": value out of range")
	}
	if IsConstraintViolation(err) {
		return apperrors.NewConflictErrorWithCause(message, err)
	}
	return apperrors.NewInternalError(message, err)
}
