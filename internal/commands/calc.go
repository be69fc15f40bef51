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
	"worktrack/internal/workday"
)

func init() {
	Register(&CalcCmd{})
}

// CalcCmd implements the calc command: the deadline arithmetic on ad-hoc input.
type CalcCmd struct {
	today string
}

func (c *CalcCmd) Name() string      { return "calc" }
func (c *CalcCmd) Aliases() []string { return nil }
func (c *CalcCmd) Synopsis() string  { return "Compute an end date and remaining workdays" }
func (c *CalcCmd) Usage() string     { return "worktrack calc [--today <date>] <start-date> <hours>" }
func (c *CalcCmd) NeedsState() bool  { return false }

func (c *CalcCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.today, "today", "", "")
}

func (c *CalcCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		return usageError(errOut, fmt.Errorf("usage: %s", c.Usage()))
	}
	start, err := service.ParseDate(args[0])
	if err != nil {
		return usageError(errOut, err)
	}
	hours, err := ParseHours(args[1])
	if err != nil {
		return usageError(errOut, err)
	}
	today, err := ParseToday(c.today)
	if err != nil {
		return usageError(errOut, err)
	}

	end := workday.EndDate(start.Time, hours)
	output.FormatCalc(out, start, hours, workday.WorkdaysNeeded(hours),
		service.DateOf(end), workday.Remaining(end, today.Time))
	return exitcode.Success
}
