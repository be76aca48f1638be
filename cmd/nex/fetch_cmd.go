package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexus-switchboard/nex/internal/config"
	"github.com/nexus-switchboard/nex/internal/log"
	"github.com/nexus-switchboard/nex/internal/output"
	"github.com/nexus-switchboard/nex/internal/ui/progress"
)

func newFetchCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "fetch",
		Short:   "Fetch the remote branch for every project",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Fetch the configured remote branch for every Nexus project so the
ahead/behind counts shown by 'nex list' are current.`,
		Example: `  nex fetch && nex list      # Refresh tracking state, then list
  nex fetch -d ~/nexus       # Fetch projects under a specific directory`,
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

			sp := progress.Start(fmt.Sprintf("Fetching %d project(s)", len(projects)))
			var failures []string
			for _, p := range projects {
				sp.Update(fmt.Sprintf("Fetching %s", p.Name))
				if err := p.Fetch(ctx, cfg.Remote, cfg.Branch); err != nil {
					failures = append(failures, fmt.Sprintf("%s: %v", p.Name, err))
				}
			}
			sp.Stop()

			for _, f := range failures {
				l.Printf("Warning: %s\n", f)
			}
			out.Printf("Fetched %d of %d project(s) from %s\n",
				len(projects)-len(failures), len(projects), cfg.Remote)

			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", dirFlagUsage)

	return cmd
}
