package main

import (
	"github.com/spf13/cobra"

	"github.com/nexus-switchboard/nex/internal/log"
	"github.com/nexus-switchboard/nex/internal/output"
)

func newCommitCmd() *cobra.Command {
	var (
		message string
		dir     string
	)

	cmd := &cobra.Command{
		Use:     "commit",
		Short:   "Stage and commit all changes in every project",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Stage and commit all changes in every Nexus project.

Runs 'git add .' followed by 'git commit -m <msg>' in each project.
Projects with a clean working directory are reported and skipped;
a failure in one project does not stop the others.`,
		Example: `  nex commit --msg "Update shared config"
  nex commit -m "Bump deps" -d ~/nexus`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			projects, root, err := scanProjects(ctx, dir)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				out.Printf("No projects found in %s\n", root)
				return nil
			}

			l.Debug("committing projects", "root", root, "projects", len(projects))

			out.Println("Staging and committing all projects")
			out.Println("-----------")
			for _, p := range projects {
				out.Printf("%s:\n", p.Name)
				result := p.Commit(ctx, message)
				out.Printf("\t%s: %s\n\n", result.Action, result.Message)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "msg", "m", "", "commit message (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", dirFlagUsage)
	cmd.MarkFlagRequired("msg")

	return cmd
}
