// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"worktrack/internal/service"
)

// FakeStore is an in-memory implementation of service.Store for testing.
type FakeStore struct {
	mu         sync.RWMutex
	tasks      []service.Task
	categories []string
	statuses   []string

	// Saves counts successful saves per slot.
	Saves map[string]int

	// Error injection for testing
	LoadTasksErr      error
	LoadCategoriesErr error
	LoadStatusesErr   error
	SaveTasksErr      error
	SaveCategoriesErr error
	SaveStatusesErr   error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{Saves: make(map[string]int)}
}

// SetCategories seeds the category slot.
func (f *FakeStore) SetCategories(names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append([]string(nil), names...)
}

// SetStatuses seeds the status slot.
func (f *FakeStore) SetStatuses(names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append([]string(nil), names...)
}

// AddTask seeds a task.
func (f *FakeStore) AddTask(t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, t)
}

// Tasks returns a copy of the stored tasks.
func (f *FakeStore) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.Task(nil), f.tasks...)
}

// Categories returns a copy of the stored categories.
func (f *FakeStore) Categories() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.categories...)
}

// Statuses returns a copy of the stored statuses.
func (f *FakeStore) Statuses() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]string(nil), f.statuses...)
}

// LoadTasks implements service.Store.
func (f *FakeStore) LoadTasks(ctx context.Context) ([]service.Task, error) {
	if f.LoadTasksErr != nil {
		return nil, f.LoadTasksErr
	}
	return f.Tasks(), nil
}

// SaveTasks implements service.Store.
func (f *FakeStore) SaveTasks(ctx context.Context, tasks []service.Task) error {
	if f.SaveTasksErr != nil {
		return f.SaveTasksErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]service.Task(nil), tasks...)
	f.Saves["tasks"]++
	return nil
}

// LoadCategories implements service.Store.
func (f *FakeStore) LoadCategories(ctx context.Context) ([]string, error) {
	if f.LoadCategoriesErr != nil {
		return nil, f.LoadCategoriesErr
	}
	return f.Categories(), nil
}

// SaveCategories implements service.Store.
func (f *FakeStore) SaveCategories(ctx context.Context, names []string) error {
	if f.SaveCategoriesErr != nil {
		return f.SaveCategoriesErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append([]string(nil), names...)
	f.Saves["task_categories"]++
	return nil
}

// LoadStatuses implements service.Store.
func (f *FakeStore) LoadStatuses(ctx context.Context) ([]string, error) {
	if f.LoadStatusesErr != nil {
		return nil, f.LoadStatusesErr
	}
	return f.Statuses(), nil
}

// SaveStatuses implements service.Store.
func (f *FakeStore) SaveStatuses(ctx context.Context, names []string) error {
	if f.SaveStatusesErr != nil {
		return f.SaveStatusesErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append([]string(nil), names...)
	f.Saves["task_statuses"]++
	return nil
}

// FakeExporter records exported views instead of calling a remote API.
type FakeExporter struct {
	ListTitle string
	Views     []service.TaskView
	Err       error
}

// Export implements service.Exporter.
func (f *FakeExporter) Export(ctx context.Context, listTitle string, views []service.TaskView) (service.ExportResult, error) {
	if f.Err != nil {
		return service.ExportResult{}, f.Err
	}
	f.ListTitle = listTitle
	f.Views = append([]service.TaskView(nil), views...)
	return service.ExportResult{ListTitle: listTitle, Created: len(views)}, nil
}
