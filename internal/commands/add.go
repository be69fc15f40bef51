package commands

import (
	"context"
	"errors"
	"flag"
	"io"
	"strings"

	"worktrack/internal/config"
	"worktrack/internal/service"
	"worktrack/internal/tracker"
)

func init() {
	Register(&AddCmd{name: "add", synopsis: "Create a task"})
	Register(&AddCmd{name: "create", synopsis: "Create a task (alias for add)"})
}

// AddCmd implements the add and create commands.
type AddCmd struct {
	name     string
	synopsis string

	id        string
	category  string
	status    string
	hours     string
	start     string
	urgent    bool
	important bool
}

func (c *AddCmd) Name() string      { return c.name }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return c.synopsis }
func (c *AddCmd) Usage() string {
	return "worktrack " + c.name + " --id <id> [--category <name>] [--status <name>] [--hours <h>] [--start <date>] [--urgent] [--important] <description...>"
}
func (c *AddCmd) NeedsState() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.id, "id", "", "")
	fs.StringVar(&c.category, "category", "", "")
	fs.StringVar(&c.category, "c", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
	fs.StringVar(&c.hours, "hours", "6", "")
	fs.StringVar(&c.start, "start", "", "")
	fs.BoolVar(&c.urgent, "urgent", false, "")
	fs.BoolVar(&c.important, "important", false, "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	if err := st.CanAddTask(); err != nil {
		return report(errOut, err)
	}

	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return usageError(errOut, errors.New("description required"))
	}
	hours, err := ParseHours(c.hours)
	if err != nil {
		return usageError(errOut, err)
	}
	start, err := ParseToday(c.start)
	if err != nil {
		return usageError(errOut, err)
	}

	task := service.Task{
		ID:            c.id,
		Description:   description,
		Category:      c.category,
		Status:        c.status,
		IsUrgent:      c.urgent,
		IsImportant:   c.important,
		DeadlineHours: hours,
		StartDate:     start,
	}
	if err := st.AddTask(ctx, task); err != nil {
		return report(errOut, err)
	}
	return ok(out, cfg.Quiet)
}
