package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CurrentBranch returns the current branch name.
// Returns "(detached)" for detached HEAD state.
func CurrentBranch(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "(detached)", nil
	}
	return branch, nil
}

// IsDirty returns true if the repo has uncommitted changes or untracked files
func IsDirty(ctx context.Context, path string) bool {
	output, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false // Treat error as clean (safe default)
	}
	return strings.TrimSpace(string(output)) != ""
}

// HasRemoteBranch returns true if the remote tracking ref exists locally
func HasRemoteBranch(ctx context.Context, path, remote, branch string) bool {
	return runGit(ctx, path, "rev-parse", "--verify", "--quiet",
		fmt.Sprintf("refs/remotes/%s/%s", remote, branch)) == nil
}

// CommitsAhead returns the number of commits on branch that are not on the
// remote tracking branch. Returns 0 if the tracking ref doesn't exist.
func CommitsAhead(ctx context.Context, path, remote, branch string) (int, error) {
	if !HasRemoteBranch(ctx, path, remote, branch) {
		return 0, nil
	}
	return revListCount(ctx, path, fmt.Sprintf("%s/%s..%s", remote, branch, branch))
}

// CommitsBehind returns the number of commits on the remote tracking branch
// that are not on branch. Returns 0 if the tracking ref doesn't exist.
func CommitsBehind(ctx context.Context, path, remote, branch string) (int, error) {
	if !HasRemoteBranch(ctx, path, remote, branch) {
		return 0, nil
	}
	return revListCount(ctx, path, fmt.Sprintf("%s..%s/%s", branch, remote, branch))
}

func revListCount(ctx context.Context, path, revRange string) (int, error) {
	output, err := outputGit(ctx, path, "rev-list", "--count", revRange)
	if err != nil {
		return 0, fmt.Errorf("failed to count commits for %s: %v", revRange, err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", strings.TrimSpace(string(output)), err)
	}
	return count, nil
}

// AddAll stages all changes including untracked files
func AddAll(ctx context.Context, path string) error {
	return runGit(ctx, path, "add", ".")
}

// Commit records staged changes with the given message
func Commit(ctx context.Context, path, message string) error {
	return runGit(ctx, path, "commit", "-m", message)
}

// Push pushes branch to the named remote
func Push(ctx context.Context, path, remote, branch string) error {
	return runGit(ctx, path, "push", remote, branch)
}

// Fetch updates the remote tracking branch from the named remote
func Fetch(ctx context.Context, path, remote, branch string) error {
	if err := runGit(ctx, path, "fetch", remote, branch, "--quiet"); err != nil {
		return fmt.Errorf("failed to fetch %s/%s: %v", remote, branch, err)
	}
	return nil
}

// LastCommitTime returns the commit time of HEAD.
// Returns the zero time if the repo has no commits.
func LastCommitTime(ctx context.Context, path string) (time.Time, error) {
	output, err := outputGit(ctx, path, "log", "-1", "--format=%ct")
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last commit time: %v", err)
	}
	raw := strings.TrimSpace(string(output))
	if raw == "" {
		return time.Time{}, nil
	}
	timestamp, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse commit timestamp: %w", err)
	}
	return time.Unix(timestamp, 0), nil
}
