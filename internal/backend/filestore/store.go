// Package filestore implements service.Store as string-keyed JSON slots
// in a local directory.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"worktrack/internal/service"
)

// Slot keys.
const (
	TasksKey      = "tasks"
	CategoriesKey = "task_categories"
	StatusesKey   = "task_statuses"
)

// Store persists each slot as <dir>/<key>.json.
// All writes are atomic and durable (file sync + atomic rename + dir sync).
type Store struct {
	dir    string
	logger *log.Logger
}

// New creates a Store rooted at dir. The directory is created on first write.
func New(dir string, logger *log.Logger) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data dir is required")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the raw slot contents, or nil if the slot is absent.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the slot contents.
func (s *Store) Set(key string, data []byte) error {
	if err := writeFileAtomicDurable(s.path(key), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

var errMalformed = errors.New("malformed slot")

// load decodes a slot into dst. Absent and empty slots leave dst untouched;
// a malformed slot returns errMalformed and dst must be discarded.
func (s *Store) load(ctx context.Context, key string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := s.Get(key)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Printf("ignoring malformed %s slot: %v", key, err)
		return errMalformed
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	data = append(data, '\n')
	return s.Set(key, data)
}

// LoadTasks implements service.Store.
func (s *Store) LoadTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := s.load(ctx, TasksKey, &tasks); err != nil {
		if errors.Is(err, errMalformed) {
			return []service.Task{}, nil
		}
		return nil, err
	}
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.CompletionDate != nil && t.CompletionDate.IsZero() {
			t.CompletionDate = nil
		}
		out = append(out, t)
	}
	return out, nil
}

// SaveTasks implements service.Store.
func (s *Store) SaveTasks(ctx context.Context, tasks []service.Task) error {
	if tasks == nil {
		tasks = []service.Task{}
	}
	return s.save(ctx, TasksKey, tasks)
}

// LoadCategories implements service.Store.
func (s *Store) LoadCategories(ctx context.Context) ([]string, error) {
	return s.loadNames(ctx, CategoriesKey)
}

// SaveCategories implements service.Store.
func (s *Store) SaveCategories(ctx context.Context, names []string) error {
	return s.saveNames(ctx, CategoriesKey, names)
}

// LoadStatuses implements service.Store.
func (s *Store) LoadStatuses(ctx context.Context) ([]string, error) {
	return s.loadNames(ctx, StatusesKey)
}

// SaveStatuses implements service.Store.
func (s *Store) SaveStatuses(ctx context.Context, names []string) error {
	return s.saveNames(ctx, StatusesKey, names)
}

func (s *Store) loadNames(ctx context.Context, key string) ([]string, error) {
	var names []string
	if err := s.load(ctx, key, &names); err != nil {
		if errors.Is(err, errMalformed) {
			return []string{}, nil
		}
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *Store) saveNames(ctx context.Context, key string, names []string) error {
	if names == nil {
		names = []string{}
	}
	return s.save(ctx, key, names)
}

func writeFileAtomicDurable(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
