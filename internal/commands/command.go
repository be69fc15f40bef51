// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"worktrack/internal/config"
	"worktrack/internal/tracker"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsState returns true if the command reads or mutates the
	// task, category or status collections.
	// Commands like help, version, calc, login, logout return false.
	NeedsState() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths).
	// st is nil if NeedsState() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int
}
