// Package googletasks implements the service.Exporter interface using Google Tasks API.
package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"worktrack/internal/config"
	"worktrack/internal/service"
)

const (
	// PageSize is the number of items requested per page.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	// Item statuses understood by the API.
	StatusCompleted   = "completed"
	StatusNeedsAction = "needsAction"

	// OAuth scope for Google Tasks
	tasksScope = tasks.TasksScope
)

// Client implements service.Exporter using Google Tasks API.
type Client struct {
	svc     *tasks.Service
	limiter *rate.Limiter
	logger  *log.Logger
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Client, error) {
	// Load OAuth client config
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	// Load token
	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Token source refreshes automatically
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))

	limiter := rate.NewLimiter(rate.Limit(cfg.SyncRate), 1)
	return NewWithHTTPClient(ctx, httpClient, limiter, logger)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
// A nil limiter disables pacing; a nil logger discards output.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, limiter *rate.Limiter, logger *log.Logger, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{svc: svc, limiter: limiter, logger: logger}, nil
}

// Export creates or updates one item per view in the list titled listTitle.
// The list is matched case-insensitively and created when missing.
// Items are matched to tasks by their "[<task id>]" title prefix; items
// with no matching task are left alone.
func (c *Client) Export(ctx context.Context, listTitle string, views []service.TaskView) (service.ExportResult, error) {
	listTitle = strings.TrimSpace(listTitle)
	if listTitle == "" {
		return service.ExportResult{}, fmt.Errorf("list name required")
	}

	listID, err := c.resolveList(ctx, listTitle)
	if err != nil {
		return service.ExportResult{}, err
	}

	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	existing, err := c.listItems(ctx, listID, ids)
	if err != nil {
		return service.ExportResult{}, err
	}

	result := service.ExportResult{ListTitle: listTitle}
	for _, v := range views {
		want := itemFor(v)
		have, ok := existing[v.ID]
		switch {
		case !ok:
			if err := c.insertItem(ctx, listID, want); err != nil {
				return result, fmt.Errorf("task %s: %w", v.ID, err)
			}
			result.Created++
		case sameItem(have, want):
			result.Unchanged++
		default:
			if have.Status == StatusCompleted && want.Status == StatusNeedsAction {
				want.NullFields = append(want.NullFields, "Completed")
			}
			if err := c.patchItem(ctx, listID, have.Id, want); err != nil {
				return result, fmt.Errorf("task %s: %w", v.ID, err)
			}
			result.Updated++
		}
	}

	c.logger.Printf("export to %q: %d created, %d updated, %d unchanged",
		listTitle, result.Created, result.Updated, result.Unchanged)
	return result, nil
}

// resolveList returns the ID of the list titled title, creating it if needed.
func (c *Client) resolveList(ctx context.Context, title string) (string, error) {
	if err := c.wait(ctx); err != nil {
		return "", err
	}
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var matches []*tasks.TaskList
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(callCtx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			if strings.EqualFold(strings.TrimSpace(list.Title), title) {
				matches = append(matches, list)
			}
		}
		return nil
	})
	if err != nil {
		return "", wrapError(err)
	}

	switch len(matches) {
	case 0:
		return c.createList(ctx, title)
	case 1:
		return matches[0].Id, nil
	default:
		return "", fmt.Errorf("ambiguous list name: %s", title)
	}
}

func (c *Client) createList(ctx context.Context, title string) (string, error) {
	if err := c.wait(ctx); err != nil {
		return "", err
	}
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Insert(&tasks.TaskList{Title: title}).Context(callCtx).Do()
	if err != nil {
		return "", wrapError(err)
	}
	c.logger.Printf("created list %q", title)
	return list.Id, nil
}

// listItems indexes the list's items by the task ID in their title prefix.
// Only the given IDs are recognised.
// Completed and hidden items are included so finished tasks are not duplicated.
func (c *Client) listItems(ctx context.Context, listID string, ids []string) (map[string]*tasks.Task, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	items := make(map[string]*tasks.Task)
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(callCtx, func(resp *tasks.Tasks) error {
			for _, item := range resp.Items {
				id, ok := matchTaskID(item.Title, ids)
				if !ok {
					continue
				}
				if _, dup := items[id]; dup {
					c.logger.Printf("duplicate item for task %s ignored", id)
					continue
				}
				items[id] = item
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return items, nil
}

func (c *Client) insertItem(ctx context.Context, listID string, item *tasks.Task) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if _, err := c.svc.Tasks.Insert(listID, item).Context(callCtx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

func (c *Client) patchItem(ctx context.Context, listID, itemID string, item *tasks.Task) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	callCtx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if _, err := c.svc.Tasks.Patch(listID, itemID, item).Context(callCtx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// wait blocks until the limiter admits one more request.
func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", service.ErrTimeout, err)
	}
	return nil
}

// itemFor builds the remote item for v.
func itemFor(v service.TaskView) *tasks.Task {
	status := StatusNeedsAction
	if v.CompletionDate != nil && !v.CompletionDate.IsZero() {
		status = StatusCompleted
	}
	return &tasks.Task{
		Title:  itemTitle(v.ID, v.Description),
		Notes:  itemNotes(v),
		Due:    dueDate(v.EndDate),
		Status: status,
	}
}

func itemTitle(id, description string) string {
	description = strings.Join(strings.Fields(description), " ")
	return fmt.Sprintf("[%s] %s", id, description)
}

func itemNotes(v service.TaskView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "category: %s\n", v.Category)
	fmt.Fprintf(&b, "status: %s\n", v.Status)
	fmt.Fprintf(&b, "urgent: %t\n", v.IsUrgent)
	fmt.Fprintf(&b, "important: %t\n", v.IsImportant)
	fmt.Fprintf(&b, "hours: %g\n", v.DeadlineHours)
	fmt.Fprintf(&b, "start: %s\n", v.StartDate)
	fmt.Fprintf(&b, "remaining workdays: %d", v.RemainingWorkdays)
	return b.String()
}

// dueDate formats a calendar date the way the API stores due dates:
// midnight UTC, the time part being ignored by the service.
func dueDate(d service.Date) string {
	if d.IsZero() {
		return ""
	}
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
}

// matchTaskID returns the ID among ids whose "[<id>]" prefix opens title.
// IDs may contain "]", so the longest matching prefix wins.
func matchTaskID(title string, ids []string) (string, bool) {
	best, found := "", false
	for _, id := range ids {
		if id == "" || !strings.HasPrefix(title, "["+id+"]") {
			continue
		}
		if !found || len(id) > len(best) {
			best, found = id, true
		}
	}
	return best, found
}

func sameItem(have, want *tasks.Task) bool {
	return have.Title == want.Title &&
		have.Notes == want.Notes &&
		have.Status == want.Status &&
		sameDay(have.Due, want.Due)
}

// sameDay compares the date part of two RFC 3339 timestamps.
func sameDay(a, b string) bool {
	if len(a) < len(time.DateOnly) || len(b) < len(time.DateOnly) {
		return a == b
	}
	return a[:len(time.DateOnly)] == b[:len(time.DateOnly)]
}

// wrapError maps API errors onto the service sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", service.ErrTimeout, err)
	}

	errStr := err.Error()

	// Check for timeout
	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("%w: %v", service.ErrTimeout, err)
	}

	// Check for auth errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("%w: %v", service.ErrAuth, err)
	}

	// Check for not found
	if strings.Contains(errStr, "404") {
		return fmt.Errorf("%w: %v", service.ErrNotFound, err)
	}

	return err
}
