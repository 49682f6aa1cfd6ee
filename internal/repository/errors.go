package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

// ErrStoreUnavailable marks failures where the database could not be reached
// or did not answer within the query timeout.
var ErrStoreUnavailable = errors.New("store unavailable")

// MySQL server error numbers for constraint violations.
const (
	mysqlDuplicateEntry        = 1062
	mysqlRowIsReferenced       = 1451
	mysqlNoReferencedRow       = 1452
	mysqlNoReferencedRowLegacy = 1216
)

// StoreError wraps any failure returned by the database driver.
type StoreError struct {
	Op          string
	Err         error
	unavailable bool
}

func (e *StoreError) Error() string {
	if e.unavailable {
		return e.Op + ": " + ErrStoreUnavailable.Error() + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable && e.unavailable
}

// Unavailable reports whether the error is a connectivity or timeout failure.
func (e *StoreError) Unavailable() bool { return e.unavailable }

func wrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err, unavailable: isUnavailable(err)}
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsConstraintViolation reports whether err is a unique or foreign key violation.
func IsConstraintViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	switch mysqlErr.Number {
	case mysqlDuplicateEntry, mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlNoReferencedRowLegacy:
		return true
	}
	return false
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
