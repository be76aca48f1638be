package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/nexus-switchboard/nex/internal/log"
)

// TestGlobalFlagsReachLogger runs the real root command and verifies the
// parsed -v/-q flags end up in the context logger the subcommands see.
func TestGlobalFlagsReachLogger(t *testing.T) {
	inspect := &cobra.Command{
		Use: "loginspect",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.FromContext(cmd.Context())
			l.Command("git", "status")
			l.Printf("diagnostic\n")
			return nil
		},
	}
	rootCmd.AddCommand(inspect)
	t.Cleanup(func() {
		rootCmd.RemoveCommand(inspect)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		verbose, quiet = false, false
	})

	run := func(t *testing.T, args ...string) string {
		t.Helper()
		// Reset flag state left over from the previous Execute, or the
		// verbose/quiet exclusivity check would see both as set.
		for _, name := range []string{"verbose", "quiet"} {
			f := rootCmd.PersistentFlags().Lookup(name)
			f.Changed = false
			_ = f.Value.Set("false")
		}
		verbose, quiet = false, false
		var stderr bytes.Buffer
		rootCmd.SetErr(&stderr)
		rootCmd.SetContext(context.Background())
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("execute %v: %v\n%s", args, err, stderr.String())
		}
		return stderr.String()
	}

	t.Run("verbose echoes external commands", func(t *testing.T) {
		got := run(t, "-v", "loginspect")
		if !strings.Contains(got, "$ git status") {
			t.Errorf("stderr = %q, want the echoed git command", got)
		}
		if !strings.Contains(got, "diagnostic") {
			t.Errorf("stderr = %q, want the diagnostic line", got)
		}
	})

	t.Run("default logs but does not echo", func(t *testing.T) {
		got := run(t, "loginspect")
		if strings.Contains(got, "$ git status") {
			t.Errorf("stderr = %q, command echoed without -v", got)
		}
		if !strings.Contains(got, "diagnostic") {
			t.Errorf("stderr = %q, want the diagnostic line", got)
		}
	})

	t.Run("quiet suppresses log output", func(t *testing.T) {
		if got := run(t, "-q", "loginspect"); got != "" {
			t.Errorf("stderr = %q, want empty under -q", got)
		}
	})
}
