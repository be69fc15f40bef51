package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"worktrack/internal/config"
	"worktrack/internal/exitcode"
	"worktrack/internal/tracker"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "worktrack help" }
func (c *HelpCmd) NeedsState() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	fmt.Fprintln(out, "\nCommands:")
	for _, cmd := range DefaultRegistry.All() {
		line := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			line += " (also: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-12s %s\n", cmd.Name(), line)
	}
	return exitcode.Success
}

const helpText = `Usage:
  worktrack                                   List all tasks
  worktrack list [--today <date>] [--category <name>] [--status <name>] [--open]
  worktrack show [--today <date>] <id>
  worktrack add --id <id> [--category <name>] [--status <name>] [--hours <h>]
                [--start <date>] [--urgent] [--important] <description...>
  worktrack create ...                        Alias for add
  worktrack edit [--desc <text>] [--category <name>] [--status <name>] [--hours <h>]
                 [--start <date>] [--urgent=<bool>] [--important=<bool>]
                 [--completed <date> | --clear-completed] <id>
  worktrack done [--date <date>] <id>
  worktrack rm <id>
  worktrack categories | statuses
  worktrack addcategory <name...> | addstatus <name...>
  worktrack rmcategory <name...> | rmstatus <name...>
  worktrack calc [--today <date>] <start-date> <hours>
  worktrack sync [--list <list-name>] [--today <date>]
  worktrack login
  worktrack logout
  worktrack help
  worktrack version

Dates are YYYY-MM-DD. A workday is 6 hours, Monday to Friday.
New tasks default to 6 hours starting today, in the first category and status.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
