package commands

import (
	"context"
	"flag"
	"io"

	"worktrack/internal/config"
	"worktrack/internal/exitcode"
	"worktrack/internal/output"
	"worktrack/internal/tracker"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct {
	today string
}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return nil }
func (c *ShowCmd) Synopsis() string  { return "Print one task" }
func (c *ShowCmd) Usage() string     { return "worktrack show [--today <date>] <id>" }
func (c *ShowCmd) NeedsState() bool  { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.today, "today", "", "")
}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return usageError(errOut, err)
	}
	today, err := ParseToday(c.today)
	if err != nil {
		return usageError(errOut, err)
	}

	task, found := st.Task(id)
	if !found {
		return report(errOut, tracker.NotFound(id))
	}

	output.FormatTaskDetail(out, tracker.View(task, today.Time))
	return exitcode.Success
}
