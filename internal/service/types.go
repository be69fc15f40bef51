// Package service defines the backend-agnostic types and interfaces for task operations.
package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the on-disk and command-line date format.
const DateLayout = "2006-01-02"

// Date is a calendar date held at local midnight.
type Date struct {
	time.Time
}

// NewDate returns the date y-m-d at local midnight.
func NewDate(y int, m time.Month, d int) Date {
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

// DateOf returns the calendar date of t, interpreted in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses "YYYY-MM-DD". A full RFC 3339 timestamp is also
// accepted and resolves to its local calendar date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return Date{t}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOf(t.In(time.Local)), nil
	}
	return Date{}, fmt.Errorf("invalid date: %q (want YYYY-MM-DD)", s)
}

// String formats the date as YYYY-MM-DD, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON implements the json.Marshaler interface for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Task represents a single tracked task.
type Task struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Status         string  `json:"status"`
	IsUrgent       bool    `json:"isUrgent"`
	IsImportant    bool    `json:"isImportant"`
	DeadlineHours  float64 `json:"deadlineHours"`
	StartDate      Date    `json:"startDate"`
	CompletionDate *Date   `json:"completionDate"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Task.
// deadlineHours may be stored either as a number or as a numeric string.
func (t *Task) UnmarshalJSON(b []byte) error {
	type plain Task
	aux := struct {
		*plain
		DeadlineHours json.RawMessage `json:"deadlineHours"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.DeadlineHours)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		t.DeadlineHours = 0
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(strings.TrimSpace(s))
	}
	h, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid deadlineHours %s: %w", aux.DeadlineHours, err)
	}
	t.DeadlineHours = h
	return nil
}

// TaskView is a task together with its derived deadline fields.
type TaskView struct {
	Task
	EndDate           Date
	RemainingWorkdays int
}

// Kind selects between the category and status collections.
type Kind int

const (
	KindCategory Kind = iota
	KindStatus
)

func (k Kind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindStatus:
		return "status"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field returns the value of t's field selected by k.
func (k Kind) Field(t Task) string {
	if k == KindStatus {
		return t.Status
	}
	return t.Category
}

// ExportResult summarizes an export run.
type ExportResult struct {
	ListTitle string
	Created   int
	Updated   int
	Unchanged int
}
