package git

import (
	"os/exec"
	"testing"
)

func TestCheckGit(t *testing.T) {
	t.Parallel()

	_, lookErr := exec.LookPath("git")
	err := CheckGit()

	if lookErr == nil && err != nil {
		t.Errorf("CheckGit() = %v, want nil (git is in PATH)", err)
	}
	if lookErr != nil && err != ErrGitNotFound {
		t.Errorf("CheckGit() = %v, want ErrGitNotFound", err)
	}
}

func TestGitArgs(t *testing.T) {
	t.Parallel()

	t.Run("empty dir leaves args untouched", func(t *testing.T) {
		t.Parallel()
		args := gitArgs("", []string{"status"})
		if len(args) != 1 || args[0] != "status" {
			t.Errorf("gitArgs = %v, want [status]", args)
		}
	})

	t.Run("dir prepends -C", func(t *testing.T) {
		t.Parallel()
		args := gitArgs("/tmp/repo", []string{"push", "nexus", "master"})
		want := []string{"-C", "/tmp/repo", "push", "nexus", "master"}
		if len(args) != len(want) {
			t.Fatalf("gitArgs = %v, want %v", args, want)
		}
		for i := range want {
			if args[i] != want[i] {
				t.Errorf("gitArgs[%d] = %q, want %q", i, args[i], want[i])
			}
		}
	})
}
