package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound marks a write that matched no row.
var ErrNotFound = errors.New("record not found")

// SQLSTATE codes surfaced to callers.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
)

// ValidationError is returned before any statement is sent to the store.
type ValidationError struct {
	Kind    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Message)
}

// FetchError wraps a failed read.
type FetchError struct {
	Kind string
	Op   string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PersistError wraps a rejected write. Message is the store's own message.
type PersistError struct {
	Kind    string
	Op      string
	Message string
	Code    string
	Err     error
}

func (e *PersistError) Error() string {
	return e.Message
}

func (e *PersistError) Unwrap() error { return e.Err }

// NotFound reports whether the write targeted a missing row.
func (e *PersistError) NotFound() bool {
	return errors.Is(e.Err, ErrNotFound)
}

// Conflict reports a uniqueness violation.
func (e *PersistError) Conflict() bool {
	return e.Code == CodeUniqueViolation
}

func newPersistError(kind, op string, err error) *PersistError {
	pe := &PersistError{Kind: kind, Op: op, Message: err.Error(), Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		pe.Message = pgErr.Message
		pe.Code = pgErr.Code
	}
	return pe
}

func notFound(kind, op string) *PersistError {
	return &PersistError{Kind: kind, Op: op, Message: kind + " not found", Err: ErrNotFound}
}
