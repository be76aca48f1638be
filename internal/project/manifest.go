// Package project discovers Nexus projects on disk and performs the
// per-project version-control operations nex orchestrates.
//
// A Nexus project is a directory containing a package.json whose keywords
// intersect a configured keyword set or whose name is in a configured name
// list. Project lifecycle is entirely external: nex never creates or
// destroys projects, it only operates on what it finds.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// ManifestFileName marks an npm package boundary.
const ManifestFileName = "package.json"

// Manifest is the subset of package.json nex cares about.
type Manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Keywords     []string          `json:"keywords"`
	Dependencies map[string]string `json:"dependencies"`
}

// ReadManifest parses the package.json at the given path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return &m, nil
}

// Qualifier decides whether a manifest belongs to a Nexus project.
type Qualifier struct {
	Keywords []string // any keyword overlap qualifies
	Names    []string // exact package name match qualifies
}

// Matches reports whether the manifest qualifies as a Nexus project.
func (q Qualifier) Matches(m *Manifest) bool {
	for _, kw := range m.Keywords {
		if slices.Contains(q.Keywords, kw) {
			return true
		}
	}
	return slices.Contains(q.Names, m.Name)
}
