package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"worktrack/internal/config"
	"worktrack/internal/exitcode"
	"worktrack/internal/output"
	"worktrack/internal/service"
	"worktrack/internal/tracker"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `worktrack` (no args) and `worktrack list [filters]`.
type ListCmd struct {
	today    string
	category string
	status   string
	open     bool
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks with their deadlines" }
func (c *ListCmd) Usage() string {
	return "worktrack list [--today <date>] [--category <name>] [--status <name>] [--open]"
}
func (c *ListCmd) NeedsState() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.today, "today", "", "")
	fs.StringVar(&c.category, "category", "", "")
	fs.StringVar(&c.category, "c", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
	fs.BoolVar(&c.open, "open", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	if err := noArgs(args); err != nil {
		return usageError(errOut, err)
	}
	today, err := ParseToday(c.today)
	if err != nil {
		return usageError(errOut, err)
	}

	var views []service.TaskView
	for _, v := range st.Views(today.Time) {
		if c.category != "" && v.Category != c.category {
			continue
		}
		if c.status != "" && v.Status != c.status {
			continue
		}
		if c.open && v.CompletionDate != nil {
			continue
		}
		views = append(views, v)
	}

	if len(views) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	if err := output.FormatTaskTable(out, views); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
