package commands

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"worktrack/internal/service"
	"worktrack/internal/workday"
)

// ErrTaskIDRequired indicates no task ID was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ErrNameRequired indicates no category or status name was provided.
var ErrNameRequired = errors.New("name required")

// now is the clock used when --today is not given.
var now = time.Now

// ParseTaskID returns the single task ID in args.
func ParseTaskID(args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", ErrTaskIDRequired
	}
	if len(args) > 1 {
		return "", fmt.Errorf("unexpected argument: %s", args[1])
	}
	return strings.TrimSpace(args[0]), nil
}

// ParseName joins args into a single category or status name.
func ParseName(args []string) (string, error) {
	name := strings.TrimSpace(joinArgs(args))
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// ParseHours parses an hour budget. Non-positive values are accepted;
// task validation rejects them.
func ParseHours(s string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, fmt.Errorf("invalid hours: %s", s)
	}
	if h > workday.MaxHours {
		return 0, fmt.Errorf("hours too large: %s (max %d)", s, workday.MaxHours)
	}
	return h, nil
}

// ParseToday returns the date given by s, or the current local date when s is empty.
func ParseToday(s string) (service.Date, error) {
	if strings.TrimSpace(s) == "" {
		return service.DateOf(now()), nil
	}
	return service.ParseDate(s)
}

// noArgs rejects stray positional arguments.
func noArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	return nil
}

// optString is a string flag that remembers whether it was given.
type optString struct {
	value string
	set   bool
}

func (o *optString) String() string { return o.value }

func (o *optString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

// optBool is a boolean flag that remembers whether it was given.
type optBool struct {
	value bool
	set   bool
}

func (o *optBool) String() string { return strconv.FormatBool(o.value) }

func (o *optBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean: %s", s)
	}
	o.value = v
	o.set = true
	return nil
}

func (o *optBool) IsBoolFlag() bool { return true }

func errConflict(a, b string) error {
	return fmt.Errorf("cannot use both %s and %s", a, b)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
