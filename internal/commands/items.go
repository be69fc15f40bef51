package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"worktrack/internal/config"
	"worktrack/internal/exitcode"
	"worktrack/internal/integrity"
	"worktrack/internal/output"
	"worktrack/internal/service"
	"worktrack/internal/tracker"
)

func init() {
	Register(&ItemsCmd{kind: service.KindCategory, name: "categories"})
	Register(&ItemsCmd{kind: service.KindStatus, name: "statuses"})
	Register(&AddItemCmd{kind: service.KindCategory, name: "addcategory"})
	Register(&AddItemCmd{kind: service.KindStatus, name: "addstatus"})
	Register(&RmItemCmd{kind: service.KindCategory, name: "rmcategory"})
	Register(&RmItemCmd{kind: service.KindStatus, name: "rmstatus"})
}

// ItemsCmd implements the categories and statuses commands.
type ItemsCmd struct {
	kind service.Kind
	name string
}

func (c *ItemsCmd) Name() string      { return c.name }
func (c *ItemsCmd) Aliases() []string { return nil }
func (c *ItemsCmd) Synopsis() string  { return "Print all " + c.name }
func (c *ItemsCmd) Usage() string     { return "worktrack " + c.name }
func (c *ItemsCmd) NeedsState() bool  { return true }

func (c *ItemsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ItemsCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	if err := noArgs(args); err != nil {
		return usageError(errOut, err)
	}

	items := st.Items(c.kind)
	if len(items) == 0 {
		if !cfg.Quiet {
			fmt.Fprintf(out, "no %s defined\n", c.name)
		}
		return exitcode.Success
	}
	output.FormatItems(out, items, func(name string) int {
		return integrity.InUse(name, c.kind, st.Tasks)
	})
	return exitcode.Success
}

// AddItemCmd implements the addcategory and addstatus commands.
type AddItemCmd struct {
	kind service.Kind
	name string
}

func (c *AddItemCmd) Name() string      { return c.name }
func (c *AddItemCmd) Aliases() []string { return nil }
func (c *AddItemCmd) Synopsis() string  { return fmt.Sprintf("Add a %s", c.kind) }
func (c *AddItemCmd) Usage() string     { return fmt.Sprintf("worktrack %s <name...>", c.name) }
func (c *AddItemCmd) NeedsState() bool  { return true }

func (c *AddItemCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddItemCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	// Blank names go to the integrity check so the refusal names the collection.
	if err := st.AddItem(ctx, c.kind, joinArgs(args)); err != nil {
		return report(errOut, err)
	}
	return ok(out, cfg.Quiet)
}

// RmItemCmd implements the rmcategory and rmstatus commands.
// Names referenced by any task are refused.
type RmItemCmd struct {
	kind service.Kind
	name string
}

func (c *RmItemCmd) Name() string      { return c.name }
func (c *RmItemCmd) Aliases() []string { return nil }
func (c *RmItemCmd) Synopsis() string  { return fmt.Sprintf("Delete an unused %s", c.kind) }
func (c *RmItemCmd) Usage() string     { return fmt.Sprintf("worktrack %s <name...>", c.name) }
func (c *RmItemCmd) NeedsState() bool  { return true }

func (c *RmItemCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmItemCmd) Run(ctx context.Context, cfg *config.Config, st *tracker.State, args []string, out, errOut io.Writer) int {
	name, err := ParseName(args)
	if err != nil {
		return usageError(errOut, err)
	}
	if err := st.DeleteItem(ctx, c.kind, name); err != nil {
		return report(errOut, err)
	}
	return ok(out, cfg.Quiet)
}
