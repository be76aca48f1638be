package project

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/nexus-switchboard/nex/internal/log"
)

// Scan walks root and returns all qualifying Nexus projects, sorted by name.
//
// Directories containing a package.json are npm package boundaries: they are
// inspected but never descended into, so nested node_modules trees are never
// visited. A malformed package.json is logged and skipped; it is not fatal.
func Scan(ctx context.Context, root string, q Qualifier) ([]*Project, error) {
	l := log.FromContext(ctx)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}

	var projects []*Project
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable scan root fails the whole invocation;
			// unreadable subdirectories are skipped, not fatal.
			if path == absRoot {
				return fmt.Errorf("scan root: %w", err)
			}
			l.Printf("Warning: %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		manifestPath := filepath.Join(path, ManifestFileName)
		if _, statErr := os.Stat(manifestPath); statErr != nil {
			return nil // no manifest, keep descending
		}

		// Package boundary: decide about this directory, don't descend.
		m, readErr := ReadManifest(manifestPath)
		if readErr != nil {
			l.Printf("Warning: unable to process %s: %v\n", manifestPath, readErr)
			return fs.SkipDir
		}

		if q.Matches(m) {
			projects = append(projects, &Project{
				Name:     m.Name,
				Version:  m.Version,
				Path:     path,
				Manifest: m,
			})
		}
		return fs.SkipDir
	})
	if walkErr != nil {
		return nil, walkErr
	}

	slices.SortFunc(projects, func(a, b *Project) int {
		return cmp.Compare(a.Name, b.Name)
	})

	l.Debug("scan complete", "root", absRoot, "projects", len(projects))

	return projects, nil
}
