package commands

import (
	"context"
	"flag"
	"io"

	"worktrack/internal/config"
	"worktrack/internal/service"
	"worktrack/internal/tracker"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Only the flags given change the task.
type EditCmd struct {
	desc           optString
	category       optString
	status         optString
	hours          optString
	start          optString
	completed      optString
	urgent         optBool
	important      optBool
	clearCompleted bool
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change fields of a task" }
func (c *EditCmd) Usage() string {
	return "worktrack edit [--desc <text>] [--category <name>] [--status <name>] [--hours <h>] [--start <date>] " +
		"[--urgent=<bool>] [--important=<bool>] [--completed <date> | --clear-completed] <id>"
}
func (c *EditCmd) NeedsState() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	*c = EditCmd{}
	fs.Var(&c.desc, "desc", "")
	fs.Var(&c.category, "category", "")
	fs.Var(&c.category, "c", "")
	fs.Var(&c.status, "status", "")
	fs.Var(&c.status, "s", "")
	fs.Var(&c.hours, "hours", "")
	fs.Var(&c.start, "start", "")
	fs.Var(&c.completed, "completed", "")
	fs.Var(&c.urgent, "urgent", "")
	fs.Var(&c.important, "important", "")
	fs.BoolVar(&c.clearCompleted, "clear-completed", false, "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return usageError(errOut, err)
	}
	task, found := st.Task(id)
	if !found {
		return report(errOut, tracker.NotFound(id))
	}
	if c.completed.set && c.clearCompleted {
		return usageError(errOut, errConflict("--completed", "--clear-completed"))
	}

	if c.desc.set {
		task.Description = c.desc.value
	}
	if c.category.set {
		task.Category = c.category.value
	}
	if c.status.set {
		task.Status = c.status.value
	}
	if c.hours.set {
		h, err := ParseHours(c.hours.value)
		if err != nil {
			return usageError(errOut, err)
		}
		task.DeadlineHours = h
	}
	if c.start.set {
		d, err := service.ParseDate(c.start.value)
		if err != nil {
			return usageError(errOut, err)
		}
		task.StartDate = d
	}
	if c.urgent.set {
		task.IsUrgent = c.urgent.value
	}
	if c.important.set {
		task.IsImportant = c.important.value
	}
	if c.completed.set {
		d, err := service.ParseDate(c.completed.value)
		if err != nil {
			return usageError(errOut, err)
		}
		task.CompletionDate = &d
	}
	if c.clearCompleted {
		task.CompletionDate = nil
	}

	if err := st.UpdateTask(ctx, task); err != nil {
		return report(errOut, err)
	}
	return ok(out, cfg.Quiet)
}
