package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexus-switchboard/nex/internal/config"
	"github.com/nexus-switchboard/nex/internal/log"
	"github.com/nexus-switchboard/nex/internal/output"
	"github.com/nexus-switchboard/nex/internal/project"
	"github.com/nexus-switchboard/nex/internal/ui"
	"github.com/nexus-switchboard/nex/internal/ui/prompt"
)

func newPushCmd() *cobra.Command {
	var (
		yes bool
		dir string
	)

	cmd := &cobra.Command{
		Use:     "push",
		Short:   "Push every project to the remote",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Push every Nexus project to the configured remote and branch.

Asks for confirmation when run interactively; use --yes to skip.
A failure in one project does not stop the others.`,
		Example: `  nex push                  # Push all projects (asks first)
  nex push --yes             # Push without confirmation
  nex push -d ~/nexus        # Push projects under a specific directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			projects, root, err := scanProjects(ctx, dir)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				out.Printf("No projects found in %s\n", root)
				return nil
			}

			if !yes && ui.IsInteractive() {
				result, err := prompt.Confirm(fmt.Sprintf("Push %d project(s) to %s/%s?", len(projects), cfg.Remote, cfg.Branch))
				if err != nil {
					return err
				}
				if !result.Confirmed || result.Cancelled {
					l.Println("Aborted")
					return nil
				}
			}

			l.Debug("pushing projects", "root", root, "projects", len(projects))

			out.Println("Pushing all projects to remote")
			out.Println("-----------")
			failed := 0
			for _, p := range projects {
				out.Printf("%s:\n", p.Name)
				result := p.Push(ctx, cfg.Remote, cfg.Branch)
				if result.Action == project.ActionFailed {
					failed++
				}
				out.Printf("\t%s: %s\n\n", result.Action, result.Message)
			}

			if failed > 0 {
				l.Printf("%d project(s) failed to push\n", failed)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", dirFlagUsage)

	return cmd
}
