package main

import (
	"github.com/spf13/cobra"

	"github.com/nexus-switchboard/nex/internal/git"
	"github.com/nexus-switchboard/nex/internal/log"
	"github.com/nexus-switchboard/nex/internal/output"
	"github.com/nexus-switchboard/nex/internal/project"
)

func newBumpCmd() *cobra.Command {
	var (
		projectName string
		dir         string
	)

	cmd := &cobra.Command{
		Use:       "bump <patch|minor|major>",
		Short:     "Bump package versions with npm version",
		GroupID:   GroupUtility,
		ValidArgs: []string{"patch", "minor", "major"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Long: `Run 'npm version <level>' in every Nexus project (or a single one
with --project). npm commits the version change and tags it, so run
'nex push' afterwards to publish the bumps.`,
		Example: `  nex bump patch                   # Bump patch version everywhere
  nex bump minor -p nexus-core     # Bump only nexus-core
  nex bump major -d ~/nexus        # Bump projects under a directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			level := args[0]

			if err := git.CheckNpm(); err != nil {
				return err
			}

			projects, root, err := scanProjects(ctx, dir)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				out.Printf("No projects found in %s\n", root)
				return nil
			}

			if projectName != "" {
				p, err := findProject(projects, projectName)
				if err != nil {
					return err
				}
				projects = []*project.Project{p}
			}

			l.Debug("bumping versions", "level", level, "projects", len(projects))

			for _, p := range projects {
				newVersion, err := p.BumpVersion(ctx, level)
				if err != nil {
					l.Printf("Warning: %s: %v\n", p.Name, err)
					continue
				}
				out.Printf("%s: v%s -> %s\n", p.Name, p.Version, newVersion)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectName, "project", "p", "", "bump a single project by name")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", dirFlagUsage)

	return cmd
}
