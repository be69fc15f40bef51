// Package service defines the backend-agnostic types and interfaces for task operations.
package service

import (
	"context"
	"errors"
)

// Errors reported by Exporter implementations.
var (
	// ErrAuth means the remote service rejected the stored credentials.
	ErrAuth = errors.New("token expired or revoked (run: worktrack login)")

	// ErrTimeout means a remote call did not finish within its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrNotFound means the remote resource does not exist.
	ErrNotFound = errors.New("not found")
)

// Store is the persistence collaborator.
// It holds three independent slots: tasks, categories and statuses.
// Loads of an absent or malformed slot return an empty collection.
// Saves always write the whole slot.
type Store interface {
	// LoadTasks returns the stored task collection.
	LoadTasks(ctx context.Context) ([]Task, error)

	// SaveTasks replaces the stored task collection.
	SaveTasks(ctx context.Context, tasks []Task) error

	// LoadCategories returns category names in insertion order.
	LoadCategories(ctx context.Context) ([]string, error)

	// SaveCategories replaces the stored category names.
	SaveCategories(ctx context.Context, names []string) error

	// LoadStatuses returns status names in insertion order.
	LoadStatuses(ctx context.Context) ([]string, error)

	// SaveStatuses replaces the stored status names.
	SaveStatuses(ctx context.Context, names []string) error
}

// Exporter publishes computed deadlines to an external task list.
// Commands never import a backend SDK directly.
type Exporter interface {
	// Export creates or updates one remote item per view in the list
	// titled listTitle, creating the list if needed.
	Export(ctx context.Context, listTitle string, views []TaskView) (ExportResult, error)
}
