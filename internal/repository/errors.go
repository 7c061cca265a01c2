package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrUnavailable means the underlying storage could not be reached or
	// the query failed for reasons other than the data itself.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrConflict means a uniqueness invariant would be broken outside the
	// intended find-or-create path.
	ErrConflict = errors.New("uniqueness conflict")
)

// classify maps a gorm error onto the repository error taxonomy.
// gorm.ErrRecordNotFound passes through untouched so callers can branch on it.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return err
	case isConflict(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
}

// isConflict detects unique-constraint violations. The string check covers
// SQLite drivers that do not translate into gorm.ErrDuplicatedKey.
func isConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
