package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"things2md/internal/config"
	"things2md/internal/exitcode"
	"things2md/internal/markdown"
	"things2md/internal/service"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command. It is also the default:
// `things2md "Project Name"` dispatches here.
type ExportCmd struct {
	all bool
}

// SetAll sets the --all flag (for testing).
func (c *ExportCmd) SetAll(all bool) {
	c.all = all
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export a project as Markdown" }
func (c *ExportCmd) Usage() string     { return "things2md export [--all] <project name>" }
func (c *ExportCmd) NeedsStore() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: project name required")
		return exitcode.UserError
	}

	proj, err := svc.FetchProject(ctx, name)
	if errors.Is(err, service.ErrProjectNotFound) {
		fmt.Fprintf(errOut, "error: project not found: %s\n", name)
		return exitcode.UserError
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !c.all && !cfg.IncludeAll {
		proj.Tasks = openTasks(proj.Tasks)
	}

	// Render completes before anything reaches stdout, so an error path
	// never leaves a partial document behind.
	fmt.Fprint(out, markdown.Render(proj))
	return exitcode.Success
}

// openTasks filters the task sequence to open tasks, preserving order.
func openTasks(tasks []service.Task) []service.Task {
	var open []service.Task
	for _, t := range tasks {
		if t.Status == service.StatusOpen {
			open = append(open, t)
		}
	}
	return open
}
