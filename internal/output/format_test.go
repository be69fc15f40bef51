package output

import (
	"bytes"
	"testing"
	"time"

	"worktrack/internal/service"
	"worktrack/internal/testutil"
)

func sampleViews() []service.TaskView {
	done := service.NewDate(2024, time.June, 7)
	return []service.TaskView{
		{
			Task: service.Task{ID: "T1", Description: "Write report", Category: "Work", Status: "To Do",
				IsUrgent: true, DeadlineHours: 6, StartDate: service.NewDate(2024, time.June, 3)},
			EndDate:           service.NewDate(2024, time.June, 3),
			RemainingWorkdays: 0,
		},
		{
			Task: service.Task{ID: "T2", Description: "Review PR", Category: "Work", Status: "Done",
				IsImportant: true, DeadlineHours: 12, StartDate: service.NewDate(2024, time.June, 6), CompletionDate: &done},
			EndDate:           service.NewDate(2024, time.June, 7),
			RemainingWorkdays: 2,
		},
		{
			Task: service.Task{ID: "T3", Description: "Plan\nsprint", Category: "Home", Status: "To Do",
				IsUrgent: true, IsImportant: true, DeadlineHours: 13.5, StartDate: service.NewDate(2024, time.June, 8)},
			EndDate:           service.NewDate(2024, time.June, 12),
			RemainingWorkdays: 5,
		},
	}
}

func TestFormatTaskTable(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTaskTable(&buf, sampleViews()); err != nil {
		t.Fatalf("FormatTaskTable: %v", err)
	}
	testutil.Golden(t, "task_table", buf.Bytes())
}

func TestFormatTaskDetail(t *testing.T) {
	var buf bytes.Buffer
	FormatTaskDetail(&buf, sampleViews()[1])
	testutil.Golden(t, "task_detail", buf.Bytes())
}

func TestFormatItems(t *testing.T) {
	usage := map[string]int{"Work": 2, "Home": 1}
	var buf bytes.Buffer
	FormatItems(&buf, []string{"Work", "Home", "Backlog"}, func(name string) int { return usage[name] })
	testutil.Golden(t, "items", buf.Bytes())
}

func TestFormatExportResult(t *testing.T) {
	var buf bytes.Buffer
	FormatExportResult(&buf, service.ExportResult{ListTitle: "worktrack", Created: 2, Updated: 1, Unchanged: 4})
	want := "worktrack: 2 created, 1 updated, 4 unchanged\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFormatHours(t *testing.T) {
	tests := map[float64]string{6: "6", 13.5: "13.5", 0.25: "0.25", 100: "100"}
	for in, want := range tests {
		if got := FormatHours(in); got != want {
			t.Errorf("FormatHours(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Normal title", "Normal title"},
		{"", "(untitled)"},
		{"   ", "(untitled)"},
		{"Line1\nLine2", "Line1 Line2"},
		{"Line1\r\nLine2", "Line1  Line2"},
		{"a\tb", "a b"},
	}
	for _, tt := range tests {
		if got := normalizeTitle(tt.in); got != tt.want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
