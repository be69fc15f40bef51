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

// NewExporter builds the exporter used by sync. Set by main.
var NewExporter func(ctx context.Context, cfg *config.Config) (service.Exporter, error)

func init() {
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command.
type SyncCmd struct {
	list  string
	today string
}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return []string{"export"} }
func (c *SyncCmd) Synopsis() string  { return "Export deadlines to Google Tasks" }
func (c *SyncCmd) Usage() string     { return "worktrack sync [--list <list-name>] [--today <date>]" }
func (c *SyncCmd) NeedsState() bool  { return true }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.list, "list", "", "")
	fs.StringVar(&c.list, "l", "", "")
	fs.StringVar(&c.today, "today", "", "")
}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	if err := noArgs(args); err != nil {
		return usageError(errOut, err)
	}
	today, err := ParseToday(c.today)
	if err != nil {
		return usageError(errOut, err)
	}
	listTitle := c.list
	if listTitle == "" {
		listTitle = cfg.SyncList
	}
	if listTitle == "" {
		listTitle = config.DefaultSyncList
	}

	if !cfg.HasOAuthClient() {
		fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
		return exitcode.AuthError
	}
	if !cfg.HasToken() {
		fmt.Fprintln(errOut, "error: not logged in (run: worktrack login)")
		return exitcode.AuthError
	}
	if NewExporter == nil {
		fmt.Fprintln(errOut, "error: sync is not available in this build")
		return exitcode.BackendError
	}

	exporter, err := NewExporter(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	}

	res, err := exporter.Export(ctx, listTitle, st.Views(today.Time))
	if err != nil {
		return report(errOut, err)
	}
	if !cfg.Quiet {
		output.FormatExportResult(out, res)
	}
	return exitcode.Success
}
