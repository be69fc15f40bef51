// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"worktrack/internal/service"
)

// tableHeader is the header row of the task table.
var tableHeader = []string{"ID", "START", "END", "LEFT", "HOURS", "CATEGORY", "STATUS", "FLAGS", "DONE", "DESCRIPTION"}

// FormatTaskTable writes one aligned row per view, preceded by a header.
// Rows are written in the order given.
func FormatTaskTable(w io.Writer, views []service.TaskView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader, "\t"))
	for _, v := range views {
		fmt.Fprintln(tw, strings.Join([]string{
			v.ID,
			v.StartDate.String(),
			v.EndDate.String(),
			strconv.Itoa(v.RemainingWorkdays),
			FormatHours(v.DeadlineHours),
			v.Category,
			v.Status,
			flags(v.Task),
			completed(v.Task),
			normalizeTitle(v.Description),
		}, "\t"))
	}
	return tw.Flush()
}

// FormatTaskDetail writes every field of a single view, one per line.
func FormatTaskDetail(w io.Writer, v service.TaskView) {
	line := func(label, value string) {
		fmt.Fprintf(w, "%-12s %s\n", label+":", value)
	}
	line("ID", v.ID)
	line("Description", normalizeTitle(v.Description))
	line("Category", v.Category)
	line("Status", v.Status)
	line("Urgent", yesNo(v.IsUrgent))
	line("Important", yesNo(v.IsImportant))
	line("Hours", FormatHours(v.DeadlineHours))
	line("Start", v.StartDate.String())
	line("End", v.EndDate.String())
	line("Remaining", pluralDays(v.RemainingWorkdays))
	line("Completed", completed(v.Task))
}

// FormatItems writes a category or status collection in stored order.
// The first entry is marked as the default for new tasks; inUse reports
// how many tasks reference a name.
func FormatItems(w io.Writer, items []string, inUse func(name string) int) {
	for i, name := range items {
		display := normalizeListTitle(name)
		if i == 0 {
			display += " [default]"
		}
		if n := inUse(name); n > 0 {
			display += fmt.Sprintf(" (in use: %d)", n)
		}
		fmt.Fprintln(w, display)
	}
}

// FormatCalc writes the result of an ad-hoc deadline calculation.
func FormatCalc(w io.Writer, start service.Date, hours float64, workdays int, end service.Date, remaining int) {
	fmt.Fprintf(w, "start:     %s\n", start)
	fmt.Fprintf(w, "hours:     %s\n", FormatHours(hours))
	fmt.Fprintf(w, "workdays:  %d\n", workdays)
	fmt.Fprintf(w, "end:       %s\n", end)
	fmt.Fprintf(w, "remaining: %d\n", remaining)
}

// FormatExportResult writes a one-line summary of a sync run.
func FormatExportResult(w io.Writer, r service.ExportResult) {
	fmt.Fprintf(w, "%s: %d created, %d updated, %d unchanged\n",
		normalizeListTitle(r.ListTitle), r.Created, r.Updated, r.Unchanged)
}

// FormatHours renders an hour budget without trailing zeros.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func flags(t service.Task) string {
	var s string
	if t.IsUrgent {
		s += "U"
	}
	if t.IsImportant {
		s += "I"
	}
	if s == "" {
		return "-"
	}
	return s
}

func completed(t service.Task) string {
	if t.CompletionDate == nil || t.CompletionDate.IsZero() {
		return "-"
	}
	return t.CompletionDate.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 workday"
	}
	return fmt.Sprintf("%d workdays", n)
}

// normalizeTitle normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines and tabs are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// normalizeListTitle normalizes a category, status or list name for display.
// Empty or whitespace-only names become "(untitled)".
func normalizeListTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
