// Package apperror classifies catalog write failures so the HTTP layer can
// report them without inspecting driver errors.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrValidation           = errors.New("validation error")
	ErrUniqueness           = errors.New("uniqueness violation")
	ErrReferentialIntegrity = errors.New("referential integrity error")
	ErrNotFound             = errors.New("record not found")
)

// Error carries the operation and entity a failure happened on.
type Error struct {
	Op         string
	Entity     string
	Field      string
	Constraint string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Entity != "" {
		parts = append(parts, "entity="+e.Entity)
	}
	if e.Field != "" {
		parts = append(parts, "field="+e.Field)
	}
	if e.Constraint != "" {
		parts = append(parts, "constraint="+e.Constraint)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(op, entity, field, message string) error {
	return &Error{Op: op, Entity: entity, Field: field, Message: message, Err: ErrValidation}
}

func Uniqueness(op, entity, constraint string) error {
	return &Error{
		Op:         op,
		Entity:     entity,
		Constraint: constraint,
		Message:    fmt.Sprintf("%s already exists", entity),
		Err:        ErrUniqueness,
	}
}

func MissingReference(op, entity, field string) error {
	return &Error{
		Op:      op,
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf("referenced %s does not exist", strings.TrimSuffix(field, "_id")),
		Err:     ErrReferentialIntegrity,
	}
}

func NotFound(op, entity string) error {
	return &Error{Op: op, Entity: entity, Message: entity + " not found", Err: ErrNotFound}
}

// FromDB maps translated gorm errors onto the catalog taxonomy, falling back to
// the driver message when a dialect does not translate. Anything unrecognised
// is wrapped as is.
func FromDB(err error, op, entity string) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	msg := err.Error()

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(op, entity)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "duplicate key value violates unique constraint"):
		return &Error{Op: op, Entity: entity, Message: fmt.Sprintf("%s already exists", entity), Err: fmt.Errorf("%w: %v", ErrUniqueness, err)}
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		return &Error{Op: op, Entity: entity, Message: "referenced record does not exist", Err: fmt.Errorf("%w: %v", ErrReferentialIntegrity, err)}
	case errors.Is(err, gorm.ErrCheckConstraintViolated),
		strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "violates check constraint"):
		return &Error{Op: op, Entity: entity, Message: "value violates a check constraint", Err: fmt.Errorf("%w: %v", ErrValidation, err)}
	}

	return fmt.Errorf("%s %s: %w", op, entity, err)
}

// HTTPStatus picks the response status for an error returned by the service layer.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUniqueness):
		return http.StatusConflict
	case errors.Is(err, ErrReferentialIntegrity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client facing text for err. Internal failures are not echoed.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
