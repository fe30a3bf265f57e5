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
	Register(&ProjectsCmd{})
}

// ProjectsCmd implements the projects command.
type ProjectsCmd struct{}

func (c *ProjectsCmd) Name() string      { return "projects" }
func (c *ProjectsCmd) Aliases() []string { return nil }
func (c *ProjectsCmd) Synopsis() string  { return "Print all project names" }
func (c *ProjectsCmd) Usage() string     { return "things2md projects [common flags]" }
func (c *ProjectsCmd) NeedsStore() bool  { return true }

func (c *ProjectsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ProjectsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	titles, err := svc.ListProjects(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if len(titles) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no projects found")
		return exitcode.Success
	}

	for _, title := range titles {
		fmt.Fprintln(out, title)
	}

	return exitcode.Success
}
