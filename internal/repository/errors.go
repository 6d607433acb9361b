// Package repository wraps every storage failure in one of a small set of
// sentinel kinds so handlers can branch with errors.Is instead of inspecting
// driver errors.
package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation covers integrity and data errors: foreign keys,
	// not-null columns, values too long for their column, unparseable input.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrConnection means the store could not be reached or dropped the
	// connection mid-statement.
	ErrConnection = errors.New("database connection failure")

	// ErrUnknown is everything else.
	ErrUnknown = errors.New("unknown storage error")
)

// Kind labels for log fields.
const (
	KindNotFound            = "not_found"
	KindConstraintViolation = "constraint_violation"
	KindConnection          = "connection_failure"
	KindUnknown             = "unknown"
)

// Kind returns the label of the sentinel err wraps, or "" for nil.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConstraintViolation):
		return KindConstraintViolation
	case errors.Is(err, ErrConnection):
		return KindConnection
	default:
		return KindUnknown
	}
}

// classify wraps a raw gorm/driver error with its sentinel. Errors that
// already carry a sentinel are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if Kind(err) != KindUnknown || errors.Is(err, ErrUnknown) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"), strings.HasPrefix(pgErr.Code, "22"):
			return fmt.Errorf("%w: %s (%s)", ErrConstraintViolation, pgErr.Message, pgErr.Code)
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "53"),
			strings.HasPrefix(pgErr.Code, "57P"):
			return fmt.Errorf("%w: %s (%s)", ErrConnection, pgErr.Message, pgErr.Code)
		}
		return fmt.Errorf("%w: %s (%s)", ErrUnknown, pgErr.Message, pgErr.Code)
	}

	if errors.Is(err, gorm.ErrInvalidData) || errors.Is(err, gorm.ErrInvalidValue) ||
		errors.Is(err, gorm.ErrPrimaryKeyRequired) {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return fmt.Errorf("%w: %v", ErrUnknown, err)
}
