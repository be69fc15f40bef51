package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"worktrack/internal/service"
)

// fakeAPI is a minimal in-memory Google Tasks server.
type fakeAPI struct {
	mu      sync.Mutex
	lists   []*tasks.TaskList
	items   map[string][]*tasks.Task // list ID -> items
	nextID  int
	calls   []string
	failAll int // status code returned for every request when non-zero
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{items: make(map[string][]*tasks.Task)}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/tasks/v1/")
	f.calls = append(f.calls, r.Method+" "+path)

	if f.failAll != 0 {
		w.WriteHeader(f.failAll)
		fmt.Fprintf(w, `{"error":{"code":%d,"message":"failure"}}`, f.failAll)
		return
	}

	parts := strings.Split(path, "/")
	switch {
	case path == "users/@me/lists" && r.Method == http.MethodGet:
		writeJSON(w, &tasks.TaskLists{Items: f.lists})
	case path == "users/@me/lists" && r.Method == http.MethodPost:
		var list tasks.TaskList
		_ = json.NewDecoder(r.Body).Decode(&list)
		f.nextID++
		list.Id = fmt.Sprintf("L%d", f.nextID)
		f.lists = append(f.lists, &list)
		writeJSON(w, &list)
	case len(parts) == 3 && parts[0] == "lists" && parts[2] == "tasks" && r.Method == http.MethodGet:
		writeJSON(w, &tasks.Tasks{Items: f.items[parts[1]]})
	case len(parts) == 3 && parts[0] == "lists" && parts[2] == "tasks" && r.Method == http.MethodPost:
		var item tasks.Task
		_ = json.NewDecoder(r.Body).Decode(&item)
		f.nextID++
		item.Id = fmt.Sprintf("I%d", f.nextID)
		f.items[parts[1]] = append(f.items[parts[1]], &item)
		writeJSON(w, &item)
	case len(parts) == 4 && parts[0] == "lists" && parts[2] == "tasks" && r.Method == http.MethodPatch:
		var patch tasks.Task
		_ = json.NewDecoder(r.Body).Decode(&patch)
		for _, item := range f.items[parts[1]] {
			if item.Id == parts[3] {
				item.Title, item.Notes, item.Due, item.Status = patch.Title, patch.Notes, patch.Due, patch.Status
				writeJSON(w, item)
				return
			}
		}
		http.NotFound(w, r)
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) callCount(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c, err := NewWithHTTPClient(context.Background(), srv.Client(), nil, nil, option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("NewWithHTTPClient: %v", err)
	}
	return c
}

func sampleViews() []service.TaskView {
	done := service.NewDate(2024, time.June, 4)
	return []service.TaskView{
		{
			Task: service.Task{ID: "T1", Description: "Plan release", Category: "Work", Status: "To Do",
				IsUrgent: true, DeadlineHours: 6, StartDate: service.NewDate(2024, time.June, 7)},
			EndDate:           service.NewDate(2024, time.June, 7),
			RemainingWorkdays: 1,
		},
		{
			Task: service.Task{ID: "T2", Description: "Write notes", Category: "Work", Status: "Done",
				DeadlineHours: 12, StartDate: service.NewDate(2024, time.June, 3), CompletionDate: &done},
			EndDate:           service.NewDate(2024, time.June, 4),
			RemainingWorkdays: 0,
		},
	}
}

func TestExport_CreatesListAndItems(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)

	res, err := c.Export(context.Background(), "worktrack", sampleViews())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Created != 2 || res.Updated != 0 || res.Unchanged != 0 {
		t.Errorf("unexpected result: %+v", res)
	}
	if len(api.lists) != 1 || api.lists[0].Title != "worktrack" {
		t.Fatalf("expected list to be created, got %+v", api.lists)
	}

	items := api.items[api.lists[0].Id]
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	first := items[0]
	if first.Title != "[T1] Plan release" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if first.Due != "2024-06-07T00:00:00Z" {
		t.Errorf("unexpected due %q", first.Due)
	}
	if first.Status != StatusNeedsAction {
		t.Errorf("expected needsAction, got %q", first.Status)
	}
	for _, want := range []string{"category: Work", "urgent: true", "hours: 6", "remaining workdays: 1"} {
		if !strings.Contains(first.Notes, want) {
			t.Errorf("notes missing %q:\n%s", want, first.Notes)
		}
	}
	if items[1].Status != StatusCompleted {
		t.Errorf("expected completed, got %q", items[1].Status)
	}
}

func TestExport_UpdatesMatchingItemsOnly(t *testing.T) {
	api := newFakeAPI()
	api.lists = []*tasks.TaskList{{Id: "L9", Title: "WorkTrack"}}
	views := sampleViews()
	unchanged := itemFor(views[1])
	unchanged.Id = "I-keep"
	api.items["L9"] = []*tasks.Task{
		{Id: "I-old", Title: "[T1] Old title", Status: StatusNeedsAction},
		unchanged,
		{Id: "I-foreign", Title: "Buy milk", Status: StatusNeedsAction},
	}
	c := newTestClient(t, api)

	res, err := c.Export(context.Background(), "worktrack", views)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Created != 0 || res.Updated != 1 || res.Unchanged != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
	if len(api.lists) != 1 {
		t.Errorf("list matched case-insensitively must not be recreated, got %d lists", len(api.lists))
	}
	if got := api.items["L9"][0].Title; got != "[T1] Plan release" {
		t.Errorf("expected patched title, got %q", got)
	}
	if got := api.items["L9"][2].Title; got != "Buy milk" {
		t.Errorf("unrelated item modified: %q", got)
	}
	if n := api.callCount("PATCH"); n != 1 {
		t.Errorf("expected 1 patch, got %d", n)
	}
}

func TestExport_AmbiguousList(t *testing.T) {
	api := newFakeAPI()
	api.lists = []*tasks.TaskList{{Id: "A", Title: "worktrack"}, {Id: "B", Title: "WORKTRACK"}}
	c := newTestClient(t, api)

	if _, err := c.Export(context.Background(), "worktrack", sampleViews()); err == nil ||
		!strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("expected ambiguous list error, got %v", err)
	}
}

func TestExport_AuthError(t *testing.T) {
	api := newFakeAPI()
	api.failAll = http.StatusUnauthorized
	c := newTestClient(t, api)

	_, err := c.Export(context.Background(), "worktrack", sampleViews())
	if !errors.Is(err, service.ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
}

func TestExport_EmptyListName(t *testing.T) {
	c := newTestClient(t, newFakeAPI())
	if _, err := c.Export(context.Background(), "  ", nil); err == nil {
		t.Error("expected error for blank list name")
	}
}

func TestMatchTaskID(t *testing.T) {
	ids := []string{"T1", "ops", "ops]42", "a b"}
	tests := []struct {
		title  string
		wantID string
		wantOK bool
	}{
		{itemTitle("T1", "Plan"), "T1", true},
		{itemTitle("ops", "restart"), "ops", true},
		{itemTitle("ops]42", "rotate keys"), "ops]42", true},
		{itemTitle("a b", "spaced"), "a b", true},
		{"[T2] unknown task", "", false},
		{"[] empty", "", false},
		{"no prefix", "", false},
		{"[T1", "", false},
	}
	for _, tt := range tests {
		id, ok := matchTaskID(tt.title, ids)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("matchTaskID(%q) = %q, %v; want %q, %v", tt.title, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestExport_IDsContainingBracket(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)

	views := []service.TaskView{
		{Task: service.Task{ID: "ops", Description: "Restart", Category: "Work", Status: "To Do",
			DeadlineHours: 6, StartDate: service.NewDate(2024, time.June, 3)}, EndDate: service.NewDate(2024, time.June, 3)},
		{Task: service.Task{ID: "ops]42", Description: "Rotate keys", Category: "Work", Status: "To Do",
			DeadlineHours: 6, StartDate: service.NewDate(2024, time.June, 4)}, EndDate: service.NewDate(2024, time.June, 4)},
	}
	if _, err := c.Export(context.Background(), "worktrack", views); err != nil {
		t.Fatalf("first export: %v", err)
	}

	res, err := c.Export(context.Background(), "worktrack", views)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if res.Created != 0 || res.Updated != 0 || res.Unchanged != 2 {
		t.Errorf("second export should find both items, got %+v", res)
	}
	if n := len(api.items[api.lists[0].Id]); n != 2 {
		t.Errorf("expected 2 remote items, got %d", n)
	}
}

func TestSameDay(t *testing.T) {
	if !sameDay("2024-06-07T00:00:00.000Z", "2024-06-07T00:00:00Z") {
		t.Error("expected same day across formats")
	}
	if sameDay("2024-06-07T00:00:00Z", "2024-06-08T00:00:00Z") {
		t.Error("expected different days")
	}
	if !sameDay("", "") || sameDay("", "2024-06-07T00:00:00Z") {
		t.Error("unexpected result for empty due")
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{context.DeadlineExceeded, service.ErrTimeout},
		{errors.New("googleapi: Error 403: forbidden"), service.ErrAuth},
		{errors.New("googleapi: Error 404: missing"), service.ErrNotFound},
	}
	for _, tt := range tests {
		if got := wrapError(tt.err); !errors.Is(got, tt.want) {
			t.Errorf("wrapError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
	if wrapError(nil) != nil {
		t.Error("wrapError(nil) should be nil")
	}
}
