package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexus-switchboard/nex/internal/config"
	"github.com/nexus-switchboard/nex/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage nex configuration",
		GroupID: GroupConfig,
		Example: `  nex config init           # Create default config
  nex config show           # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long:  `Create a default config file at ~/.config/nex/config.toml.`,
		Example: `  nex config init           # Create config if missing
  nex config init -f        # Overwrite existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.Init(force)
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Example: `  nex config show           # Show config in text format
  nex config show --json    # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			rootDir := cfg.RootDir
			if rootDir == "" {
				rootDir = "(parent of working directory)"
			}
			out.Printf("root_dir = %s\n", rootDir)
			out.Printf("remote   = %s\n", cfg.Remote)
			out.Printf("branch   = %s\n", cfg.Branch)
			out.Printf("keywords = %s\n", strings.Join(cfg.Keywords, ", "))
			out.Printf("names    = %s\n", strings.Join(cfg.Names, ", "))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
