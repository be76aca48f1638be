package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/nexus-switchboard/nex/internal/config"
	"github.com/nexus-switchboard/nex/internal/project"
)

// resolveScanRoot returns the directory scanned for projects.
// Precedence: --dir flag > config root_dir > parent of working directory.
func resolveScanRoot(ctx context.Context, dirFlag string) (string, error) {
	if dirFlag != "" {
		return filepath.Abs(dirFlag)
	}

	cfg := config.FromContext(ctx)
	if cfg.RootDir != "" {
		return cfg.RootDir, nil
	}

	workDir := config.WorkDirFromContext(ctx)
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Dir(abs), nil
}

// scanProjects resolves the scan root and returns the discovered projects.
func scanProjects(ctx context.Context, dirFlag string) ([]*project.Project, string, error) {
	root, err := resolveScanRoot(ctx, dirFlag)
	if err != nil {
		return nil, "", err
	}

	cfg := config.FromContext(ctx)
	projects, err := project.Scan(ctx, root, project.Qualifier{
		Keywords: cfg.Keywords,
		Names:    cfg.Names,
	})
	if err != nil {
		return nil, root, err
	}
	return projects, root, nil
}

// findProject resolves a project by name.
// Unknown names get fuzzy "did you mean" suggestions.
func findProject(projects []*project.Project, name string) (*project.Project, error) {
	for _, p := range projects {
		if p.Name == name {
			return p, nil
		}
	}

	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}

	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return nil, fmt.Errorf("project not found: %s", name)
	}

	var suggestions []string
	for i, m := range matches {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return nil, fmt.Errorf("project not found: %s\n  Did you mean: %s?", name, strings.Join(suggestions, ", "))
}

// dirFlagUsage is the shared help text for the -d/--dir flag.
const dirFlagUsage = "directory to scan for projects (flag > config root_dir > parent of cwd)"
