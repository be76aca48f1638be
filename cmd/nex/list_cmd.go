package main

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nexus-switchboard/nex/internal/config"
	"github.com/nexus-switchboard/nex/internal/format"
	"github.com/nexus-switchboard/nex/internal/log"
	"github.com/nexus-switchboard/nex/internal/output"
	"github.com/nexus-switchboard/nex/internal/ui"
)

// ProjectDisplay holds project info for display
type ProjectDisplay struct {
	Name       string    `json:"name"`
	Version    string    `json:"version"`
	Path       string    `json:"path"`
	Branch     string    `json:"branch"`
	Dirty      bool      `json:"dirty"`
	Ahead      int       `json:"ahead"`
	Behind     int       `json:"behind"`
	LastCommit time.Time `json:"last_commit"`
	Error      string    `json:"error,omitempty"` // git state could not be read
}

func newListCmd() *cobra.Command {
	var (
		jsonOutput bool
		dir        string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List all Nexus projects with their git state",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List all Nexus projects with version, branch, clean/dirty state and
commits ahead of / behind the remote.

Ahead/behind counts are computed against the locally known remote tracking
branch. Run 'nex fetch' first to bring those up to date.`,
		Example: `  nex list                  # List projects found next to the current directory
  nex list -d ~/nexus        # List projects under a specific directory
  nex list --json            # Output as JSON for scripting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			projects, root, err := scanProjects(ctx, dir)
			if err != nil {
				return err
			}

			l.Debug("listing projects", "root", root, "projects", len(projects))

			var display []ProjectDisplay
			for _, p := range projects {
				d := ProjectDisplay{
					Name:    p.Name,
					Version: p.Version,
					Path:    p.Path,
				}
				// A broken project still gets a row; list enumerates
				// everything that qualifies.
				st, err := p.Status(ctx, cfg.Remote, cfg.Branch)
				if err != nil {
					l.Printf("Warning: %s: %v\n", p.Name, err)
					d.Error = err.Error()
				} else {
					d.Branch = st.Branch
					d.Dirty = st.Dirty
					d.Ahead = st.Ahead
					d.Behind = st.Behind
					d.LastCommit = st.LastCommit
				}
				display = append(display, d)
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(display)
			}

			if len(display) == 0 {
				out.Printf("No projects found in %s\n", root)
				return nil
			}

			interactive := ui.IsInteractive()
			headers := []string{"NAME", "VERSION", "BRANCH", "STATE", "AHEAD", "BEHIND", "UPDATED"}
			var rows [][]string
			for _, d := range display {
				state := "Clean"
				if d.Dirty {
					state = "Dirty"
				}
				branch := d.Branch
				ahead := strconv.Itoa(d.Ahead)
				behind := strconv.Itoa(d.Behind)
				updated := format.RelativeTime(d.LastCommit)
				if d.Error != "" {
					state = "Error"
					branch, ahead, behind, updated = "-", "-", "-", "-"
				}
				if interactive {
					if state == "Clean" {
						state = ui.SuccessStyle.Render(state)
					} else {
						state = ui.ErrorStyle.Render(state)
					}
				}
				rows = append(rows, []string{
					d.Name,
					"v" + d.Version,
					branch,
					state,
					ahead,
					behind,
					updated,
				})
			}

			out.Printf("Projects in %s\n\n", root)
			out.Print(ui.RenderTable(headers, rows))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", dirFlagUsage)

	return cmd
}
