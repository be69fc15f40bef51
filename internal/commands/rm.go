package commands

import (
	"context"
	"flag"
	"io"

	"worktrack/internal/config"
	"worktrack/internal/tracker"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "worktrack rm <id>" }
func (c *RmCmd) NeedsState() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return usageError(errOut, err)
	}
	if err := st.DeleteTask(ctx, id); err != nil {
		return report(errOut, err)
	}
	return ok(out, cfg.Quiet)
}
