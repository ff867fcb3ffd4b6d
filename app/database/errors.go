package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors surfaced by the persistence layer. Handlers translate these
// into user-facing responses; nothing below this package inspects raw
// driver errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrConflict      = errors.New("duplicate record")
	ErrClassFull     = errors.New("class is at maximum capacity")
	ErrClassHasStudents = errors.New("class still has students")
	ErrTeacherAssigned  = errors.New("teacher already assigned to a class")
	ErrClassTaken       = errors.New("class already has a teacher")
	ErrInvoiceLocked = errors.New("invoice already settled")
	ErrMealsLocked   = errors.New("meal logs locked by settled invoice")
	ErrAlreadyPaid   = errors.New("invoice already paid")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapError normalizes driver errors into the sentinel taxonomy. Exported so
// transactions living outside this package surface the same sentinels.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return ErrConflict
		case pgForeignKeyViolation:
			return ErrClassHasStudents
		}
	}
	return err
}
