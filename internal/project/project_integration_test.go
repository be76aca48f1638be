//go:build integration

package project

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// mustGit runs a git command in dir and fails the test on error.
func mustGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupProject creates a Nexus project backed by a real git repo with a
// bare "nexus" remote.
func setupProject(t *testing.T) *Project {
	t.Helper()

	base := t.TempDir()
	dir := filepath.Join(base, "core")
	remote := filepath.Join(base, "core.git")

	writeManifest(t, dir, `{"name": "nexus-core", "version": "1.0.0"}`)
	mustGit(t, base, "init", "--bare", remote)

	mustGit(t, dir, "init", "-b", "master")
	mustGit(t, dir, "config", "user.email", "test@test.com")
	mustGit(t, dir, "config", "user.name", "Test User")
	mustGit(t, dir, "config", "commit.gpgsign", "false")
	mustGit(t, dir, "add", ".")
	mustGit(t, dir, "commit", "-m", "Initial commit")
	mustGit(t, dir, "remote", "add", "nexus", remote)
	mustGit(t, dir, "push", "nexus", "master")
	mustGit(t, dir, "fetch", "nexus")

	m, err := ReadManifest(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	return &Project{Name: m.Name, Version: m.Version, Path: dir, Manifest: m}
}

func TestCommitCleanProject(t *testing.T) {
	p := setupProject(t)

	res := p.Commit(scanCtx(), "nothing changed")
	if res.Action != ActionNone {
		t.Errorf("Commit on clean tree = %+v, want action %q", res, ActionNone)
	}
}

func TestCommitDirtyProjectThenPush(t *testing.T) {
	ctx := scanCtx()
	p := setupProject(t)

	if err := os.WriteFile(filepath.Join(p.Path, "index.js"), []byte("module.exports = {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res := p.Commit(ctx, "add index")
	if res.Action != ActionComplete {
		t.Fatalf("Commit = %+v, want action %q", res, ActionComplete)
	}

	st, err := p.Status(ctx, "nexus", "master")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Dirty {
		t.Error("project dirty after commit")
	}
	if st.Ahead != 1 {
		t.Errorf("ahead = %d, want 1", st.Ahead)
	}

	res = p.Push(ctx, "nexus", "master")
	if res.Action != ActionPushed {
		t.Fatalf("Push = %+v, want action %q", res, ActionPushed)
	}

	if err := p.Fetch(ctx, "nexus", "master"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	st, err = p.Status(ctx, "nexus", "master")
	if err != nil {
		t.Fatalf("Status after push: %v", err)
	}
	if st.Ahead != 0 || st.Behind != 0 {
		t.Errorf("ahead/behind after push = %d/%d, want 0/0", st.Ahead, st.Behind)
	}
}

func TestPushFailureReported(t *testing.T) {
	p := setupProject(t)
	mustGit(t, p.Path, "remote", "set-url", "nexus", filepath.Join(t.TempDir(), "missing.git"))

	res := p.Push(scanCtx(), "nexus", "master")
	if res.Action != ActionFailed {
		t.Errorf("Push to missing remote = %+v, want action %q", res, ActionFailed)
	}
	if res.Message == "" {
		t.Error("failed push should carry git's message")
	}
}
