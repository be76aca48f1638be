package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nexus-switchboard/nex/internal/cmd"
	"github.com/nexus-switchboard/nex/internal/git"
)

// Project is a discovered Nexus project.
type Project struct {
	Name     string // package name from the manifest
	Version  string // package version from the manifest
	Path     string // absolute directory path
	Manifest *Manifest
}

// Status holds the git state of a project relative to its remote.
type Status struct {
	Branch     string    `json:"branch"`
	Dirty      bool      `json:"dirty"`
	Ahead      int       `json:"ahead"`
	Behind     int       `json:"behind"`
	LastCommit time.Time `json:"last_commit"`
}

// Actions reported in per-project results.
const (
	ActionComplete = "complete"
	ActionNone     = "none"
	ActionPushed   = "pushed"
	ActionFailed   = "failed"
)

// Result is the per-project outcome of a commit or push.
type Result struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

// Status inspects the project's git state against remote/branch.
func (p *Project) Status(ctx context.Context, remote, branch string) (Status, error) {
	if !git.IsRepo(ctx, p.Path) {
		return Status{}, fmt.Errorf("%s is not a git repository", p.Path)
	}

	current, err := git.CurrentBranch(ctx, p.Path)
	if err != nil {
		return Status{}, err
	}

	ahead, err := git.CommitsAhead(ctx, p.Path, remote, branch)
	if err != nil {
		return Status{}, err
	}
	behind, err := git.CommitsBehind(ctx, p.Path, remote, branch)
	if err != nil {
		return Status{}, err
	}

	lastCommit, _ := git.LastCommitTime(ctx, p.Path)

	return Status{
		Branch:     current,
		Dirty:      git.IsDirty(ctx, p.Path),
		Ahead:      ahead,
		Behind:     behind,
		LastCommit: lastCommit,
	}, nil
}

// Commit stages everything and commits with the given message.
// A clean working directory is reported as ActionNone, not an error.
func (p *Project) Commit(ctx context.Context, message string) Result {
	if err := git.AddAll(ctx, p.Path); err != nil {
		return Result{Action: ActionFailed, Message: err.Error()}
	}

	if !git.IsDirty(ctx, p.Path) {
		return Result{Action: ActionNone, Message: "Working directory clean"}
	}

	if err := git.Commit(ctx, p.Path, message); err != nil {
		// Racing a clean index past the dirty check is still a no-op.
		if strings.Contains(err.Error(), "working directory clean") ||
			strings.Contains(err.Error(), "nothing to commit") {
			return Result{Action: ActionNone, Message: "Nothing to do"}
		}
		return Result{Action: ActionFailed, Message: err.Error()}
	}

	return Result{Action: ActionComplete, Message: "Committed"}
}

// Push pushes the configured branch to the configured remote.
func (p *Project) Push(ctx context.Context, remote, branch string) Result {
	if err := git.Push(ctx, p.Path, remote, branch); err != nil {
		return Result{Action: ActionFailed, Message: err.Error()}
	}
	return Result{Action: ActionPushed, Message: "Operation completed successfully"}
}

// Fetch updates the project's remote tracking branch.
func (p *Project) Fetch(ctx context.Context, remote, branch string) error {
	return git.Fetch(ctx, p.Path, remote, branch)
}

// BumpVersion runs npm version with the given level (patch, minor, major)
// and returns the new version npm reports (e.g. "v1.2.4").
func (p *Project) BumpVersion(ctx context.Context, level string) (string, error) {
	out, err := cmd.OutputContext(ctx, p.Path, "npm", "version", level)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
