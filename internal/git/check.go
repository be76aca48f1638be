package git

import (
	"context"
	"fmt"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// ErrNpmNotFound indicates npm is not installed or not in PATH
var ErrNpmNotFound = fmt.Errorf("npm not found: please install node/npm (https://nodejs.org)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// CheckNpm verifies that npm is available in PATH
func CheckNpm() error {
	if _, err := exec.LookPath("npm"); err != nil {
		return ErrNpmNotFound
	}
	return nil
}

// IsRepo returns true if the given path is inside a git repository
func IsRepo(ctx context.Context, path string) bool {
	return runGit(ctx, path, "rev-parse", "--is-inside-work-tree") == nil
}
