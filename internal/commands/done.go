package commands

import (
	"context"
	"flag"
	"io"

	"worktrack/internal/config"
	"worktrack/internal/tracker"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
// It records the completion date; the status is left to the user.
type DoneCmd struct {
	date string
}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "worktrack done [--date <date>] <id>" }
func (c *DoneCmd) NeedsState() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return usageError(errOut, err)
	}
	date, err := ParseToday(c.date)
	if err != nil {
		return usageError(errOut, err)
	}

	task, found := st.Task(id)
	if !found {
		return report(errOut, tracker.NotFound(id))
	}
	task.CompletionDate = &date
	if err := st.UpdateTask(ctx, task); err != nil {
		return report(errOut, err)
	}
	return ok(out, cfg.Quiet)
}
