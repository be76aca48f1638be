//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/nexus-switchboard/nex/internal/config"
	"github.com/nexus-switchboard/nex/internal/log"
	"github.com/nexus-switchboard/nex/internal/output"
)

// testEnv is the captured environment a command runs in.
type testEnv struct {
	ctx    context.Context
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv builds a command context with captured output and a config
// pointing the scanner at root.
func newTestEnv(t *testing.T, root string) *testEnv {
	t.Helper()

	cfg := config.Default()
	cfg.RootDir = root

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(env.stderr, false, false))
	ctx = output.WithPrinter(ctx, env.stdout)
	ctx = config.WithConfig(ctx, &cfg)
	ctx = config.WithWorkDir(ctx, root)
	env.ctx = ctx

	return env
}

// mustGit runs a git command in dir and fails the test on error.
func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupNexusProject creates a qualifying project under root backed by a git
// repo with a bare "nexus" remote next to it.
func setupNexusProject(t *testing.T, root, dirName, pkgName string) string {
	t.Helper()

	dir := filepath.Join(root, dirName)
	remote := filepath.Join(root, "."+dirName+".git")

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	manifest := `{"name": "` + pkgName + `", "version": "1.0.0", "keywords": ["nexus-module"]}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	mustGit(t, root, "init", "--bare", remote)
	mustGit(t, dir, "init", "-b", "master")
	mustGit(t, dir, "config", "user.email", "test@test.com")
	mustGit(t, dir, "config", "user.name", "Test User")
	mustGit(t, dir, "config", "commit.gpgsign", "false")
	mustGit(t, dir, "add", ".")
	mustGit(t, dir, "commit", "-m", "Initial commit")
	mustGit(t, dir, "remote", "add", "nexus", remote)
	mustGit(t, dir, "push", "nexus", "master")
	mustGit(t, dir, "fetch", "nexus")

	return dir
}
