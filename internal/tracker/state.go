// Package tracker holds the application state: the task collection and
// the ordered category and status collections, with every mutation
// validated and persisted through a service.Store.
package tracker

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"worktrack/internal/integrity"
	"worktrack/internal/service"
	"worktrack/internal/workday"
)

// State is the in-memory application state. It is authoritative: a failed
// save leaves the mutation applied and reports ErrPersist.
type State struct {
	Tasks      []service.Task
	Categories []string
	Statuses   []string

	store  service.Store
	logger *log.Logger
}

// Load reads all three collections from store.
func Load(ctx context.Context, store service.Store, logger *log.Logger) (*State, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	tasks, err := store.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	categories, err := store.LoadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	statuses, err := store.LoadStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load statuses: %w", err)
	}
	logger.Printf("loaded %d tasks, %d categories, %d statuses", len(tasks), len(categories), len(statuses))
	return &State{
		Tasks:      tasks,
		Categories: categories,
		Statuses:   statuses,
		store:      store,
		logger:     logger,
	}, nil
}

// Task returns the task with the given ID.
func (s *State) Task(id string) (service.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return service.Task{}, false
	}
	return s.Tasks[i], true
}

func (s *State) indexOf(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// CanAddTask reports why a task cannot be created right now, if at all.
func (s *State) CanAddTask() error {
	if len(s.Categories) == 0 {
		return invalid(ErrNoCategories, "category", "add a category first")
	}
	if len(s.Statuses) == 0 {
		return invalid(ErrNoStatuses, "status", "add a status first")
	}
	return nil
}

// AddTask validates and appends t. Blank category or status fall back
// to the first entry of the collection.
func (s *State) AddTask(ctx context.Context, t service.Task) error {
	if err := s.CanAddTask(); err != nil {
		return err
	}
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return invalid(ErrMissingField, "id", "id")
	}
	if s.indexOf(t.ID) >= 0 {
		return invalid(ErrDuplicateTaskID, "id", "%s", t.ID)
	}
	if t.Category == "" {
		t.Category = s.Categories[0]
	}
	if t.Status == "" {
		t.Status = s.Statuses[0]
	}
	if err := s.validate(t); err != nil {
		return err
	}

	s.Tasks = append(s.Tasks, t)
	s.logger.Printf("added task %s", t.ID)
	return s.saveTasks(ctx)
}

// UpdateTask replaces the stored task with the same ID.
func (s *State) UpdateTask(ctx context.Context, t service.Task) error {
	i := s.indexOf(t.ID)
	if i < 0 {
		return NotFound(t.ID)
	}
	if err := s.validate(t); err != nil {
		return err
	}

	s.Tasks[i] = t
	s.logger.Printf("updated task %s", t.ID)
	return s.saveTasks(ctx)
}

// DeleteTask removes the task with the given ID.
func (s *State) DeleteTask(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return NotFound(id)
	}

	s.Tasks = append(s.Tasks[:i:i], s.Tasks[i+1:]...)
	s.logger.Printf("deleted task %s", id)
	return s.saveTasks(ctx)
}

func (s *State) validate(t service.Task) error {
	if strings.TrimSpace(t.Description) == "" {
		return invalid(ErrMissingField, "description", "description")
	}
	if !(t.DeadlineHours > 0) {
		return invalid(ErrInvalidDeadline, "deadlineHours", "")
	}
	if t.DeadlineHours > workday.MaxHours {
		return invalid(ErrDeadlineTooLarge, "deadlineHours", "%g > %d", t.DeadlineHours, workday.MaxHours)
	}
	if t.StartDate.IsZero() {
		return invalid(ErrMissingField, "startDate", "start date")
	}
	if t.Category == "" {
		return invalid(ErrMissingField, "category", "category")
	}
	if !contains(s.Categories, t.Category) {
		return invalid(ErrUnknownName, "category", "category %q", t.Category)
	}
	if t.Status == "" {
		return invalid(ErrMissingField, "status", "status")
	}
	if !contains(s.Statuses, t.Status) {
		return invalid(ErrUnknownName, "status", "status %q", t.Status)
	}
	return nil
}

// Items returns the collection selected by kind.
func (s *State) Items(kind service.Kind) []string {
	if kind == service.KindStatus {
		return s.Statuses
	}
	return s.Categories
}

func (s *State) setItems(kind service.Kind, items []string) {
	if kind == service.KindStatus {
		s.Statuses = items
	} else {
		s.Categories = items
	}
}

// AddItem appends a category or status after the integrity check.
func (s *State) AddItem(ctx context.Context, kind service.Kind, name string) error {
	items := s.Items(kind)
	if err := integrity.CheckAdd(kind, name, items); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	s.setItems(kind, append(items[:len(items):len(items)], name))
	s.logger.Printf("added %s %q", kind, name)
	return s.saveItems(ctx, kind)
}

// DeleteItem removes a category or status that no task references.
func (s *State) DeleteItem(ctx context.Context, kind service.Kind, name string) error {
	items := s.Items(kind)
	i := -1
	for j, item := range items {
		if item == name {
			i = j
			break
		}
	}
	if i < 0 {
		return invalid(ErrUnknownName, kind.String(), "%s %q", kind, name)
	}
	if err := integrity.CheckDelete(kind, name, s.Tasks); err != nil {
		return err
	}

	s.setItems(kind, append(items[:i:i], items[i+1:]...))
	s.logger.Printf("deleted %s %q", kind, name)
	return s.saveItems(ctx, kind)
}

// Views returns every task with its derived end date and remaining
// workdays relative to today, ordered by start date.
func (s *State) Views(today time.Time) []service.TaskView {
	views := make([]service.TaskView, len(s.Tasks))
	for i, t := range s.Tasks {
		views[i] = View(t, today)
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].StartDate.Before(views[j].StartDate.Time)
	})
	return views
}

// View derives the deadline fields of t.
func View(t service.Task, today time.Time) service.TaskView {
	end := workday.EndDate(t.StartDate.Time, t.DeadlineHours)
	return service.TaskView{
		Task:              t,
		EndDate:           service.DateOf(end),
		RemainingWorkdays: workday.Remaining(end, today),
	}
}

func (s *State) saveTasks(ctx context.Context) error {
	if err := s.store.SaveTasks(ctx, s.Tasks); err != nil {
		s.logger.Printf("save tasks: %v", err)
		return fmt.Errorf("%w tasks: %w", ErrPersist, err)
	}
	return nil
}

func (s *State) saveItems(ctx context.Context, kind service.Kind) error {
	var err error
	if kind == service.KindStatus {
		err = s.store.SaveStatuses(ctx, s.Statuses)
	} else {
		err = s.store.SaveCategories(ctx, s.Categories)
	}
	if err != nil {
		s.logger.Printf("save %s collection: %v", kind, err)
		return fmt.Errorf("%w %s collection: %w", ErrPersist, kind, err)
	}
	return nil
}

func contains(items []string, name string) bool {
	for _, item := range items {
		if item == name {
			return true
		}
	}
	return false
}
