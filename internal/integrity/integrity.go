// Package integrity decides whether categories and statuses may be added
// to or removed from their collections.
package integrity

import (
	"errors"
	"fmt"
	"strings"

	"worktrack/internal/service"
)

var (
	// ErrEmptyName indicates a blank or whitespace-only name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrDuplicateName indicates the name exists, ignoring case.
	ErrDuplicateName = errors.New("already exists")

	// ErrInUse indicates at least one task references the name.
	ErrInUse = errors.New("in use by one or more tasks")
)

// Error reports a refused add or delete.
type Error struct {
	Kind   service.Kind
	Name   string
	Reason error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if errors.Is(e.Reason, ErrEmptyName) {
		return fmt.Sprintf("%s %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s %q %s", e.Kind, e.Name, e.Reason)
}

func (e *Error) Unwrap() error { return e.Reason }

// CanAdd reports whether name may join existing.
// Blank names and case-insensitive duplicates are refused.
func CanAdd(name string, existing []string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, e := range existing {
		if strings.EqualFold(e, name) {
			return false
		}
	}
	return true
}

// InUse counts the tasks whose kind field equals name exactly.
func InUse(name string, kind service.Kind, tasks []service.Task) int {
	n := 0
	for _, t := range tasks {
		if kind.Field(t) == name {
			n++
		}
	}
	return n
}

// CanDelete reports whether no task references name through its kind field.
// The match is exact and case-sensitive.
func CanDelete(name string, kind service.Kind, tasks []service.Task) bool {
	for _, t := range tasks {
		if kind.Field(t) == name {
			return false
		}
	}
	return true
}

// CheckAdd is CanAdd with the refusal reason.
func CheckAdd(kind service.Kind, name string, existing []string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &Error{Kind: kind, Name: name, Reason: ErrEmptyName}
	}
	if !CanAdd(trimmed, existing) {
		return &Error{Kind: kind, Name: trimmed, Reason: ErrDuplicateName}
	}
	return nil
}

// CheckDelete is CanDelete with the refusal reason.
func CheckDelete(kind service.Kind, name string, tasks []service.Task) error {
	if !CanDelete(name, kind, tasks) {
		return &Error{Kind: kind, Name: name, Reason: ErrInUse}
	}
	return nil
}
