package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"things2md/internal/config"
	"things2md/internal/exitcode"
	"things2md/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "things2md help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  things2md "<project name>"                       Export a project as Markdown to stdout
  things2md export [common flags] [--all] <project name>
  things2md projects [common flags]                List project names
  things2md help
  things2md version

Flags:
  --all              Include completed and canceled tasks
  --config <dir>     Override config directory
  --database <path>  Override the Things database location
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr

Examples:
  things2md "Work Projects" > project.md
  things2md "Home Renovation" > renovation.md
  things2md "Meeting Notes" | pbcopy
`
