package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField indicates a required task field is blank.
	ErrMissingField = errors.New("required field missing")

	// ErrDuplicateTaskID indicates another task already has the ID.
	ErrDuplicateTaskID = errors.New("task ID must be unique")

	// ErrInvalidDeadline indicates a non-positive hour budget.
	ErrInvalidDeadline = errors.New("deadline hours must be greater than 0")

	// ErrDeadlineTooLarge indicates an hour budget above workday.MaxHours.
	ErrDeadlineTooLarge = errors.New("deadline hours too large")

	// ErrTaskNotFound indicates no task has the ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnknownName indicates a category or status that is not in its collection.
	ErrUnknownName = errors.New("unknown name")

	// ErrNoCategories indicates a task cannot be added before a category exists.
	ErrNoCategories = errors.New("no categories defined")

	// ErrNoStatuses indicates a task cannot be added before a status exists.
	ErrNoStatuses = errors.New("no statuses defined")

	// ErrPersist indicates the store rejected a save; the in-memory change stays applied.
	ErrPersist = errors.New("failed to save")
)

// ValidationError reports a rejected task or item mutation.
type ValidationError struct {
	Kind  error
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func invalid(kind error, field, format string, args ...any) error {
	return &ValidationError{Kind: kind, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// NotFound reports that no task has the given ID.
func NotFound(id string) error {
	return invalid(ErrTaskNotFound, "id", "%s", id)
}
