package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/nexus-switchboard/nex/internal/log"
	"github.com/nexus-switchboard/nex/internal/output"
)

func newPathCmd() *cobra.Command {
	var (
		copyToClipboard bool
		dir             string
	)

	cmd := &cobra.Command{
		Use:     "path <project>",
		Short:   "Print the directory of a project",
		GroupID: GroupUtility,
		Args:    cobra.ExactArgs(1),
		Long: `Print the absolute directory of a Nexus project by package name.

Useful for shell integration:
  cd "$(nex path nexus-core)"`,
		Example: `  nex path nexus-core          # Print the path
  nex path nexus-core --copy   # Also copy it to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			projects, _, err := scanProjects(ctx, dir)
			if err != nil {
				return err
			}

			p, err := findProject(projects, args[0])
			if err != nil {
				return err
			}

			out.Println(p.Path)

			if copyToClipboard {
				if err := clipboard.WriteAll(p.Path); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the path to the clipboard")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", dirFlagUsage)

	return cmd
}
