package Services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// NotFoundError carries the entity name and the identifier that missed so
// the API layer can tell the client exactly what was not found.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.Key)
}

// ConflictError is returned on uniqueness violations (duplicate invoice
// number, order number, email, vehicle number, setting key).
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %s already exists", e.Entity, e.Field, e.Value)
}

type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	return e.Reason
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsUnauthorized(err error) bool {
	var u *UnauthorizedError
	return errors.As(err, &u)
}

func notFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, Key: fmt.Sprint(id)}
}

func conflict(entity, field, value string) error {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

// isUniqueViolation recognizes unique-index failures from the drivers we
// run on. The application-level existence checks are only there for nicer
// messages; the constraint is what actually enforces uniqueness under
// concurrent inserts.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") || // postgres
		strings.Contains(msg, "SQLSTATE 23505")
}
