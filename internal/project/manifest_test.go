package project

import (
	"os"
	"path/filepath"
	"testing"
)

func defaultQualifier() Qualifier {
	return Qualifier{
		Keywords: []string{"nexus-module", "nexus-connection"},
		Names:    []string{"nexus-core", "nexus-extend"},
	}
}

func TestQualifierMatches(t *testing.T) {
	t.Parallel()

	q := defaultQualifier()

	tests := []struct {
		name     string
		manifest Manifest
		want     bool
	}{
		{
			name:     "keyword match",
			manifest: Manifest{Name: "my-widget", Keywords: []string{"react", "nexus-module"}},
			want:     true,
		},
		{
			name:     "connection keyword match",
			manifest: Manifest{Name: "jira-conn", Keywords: []string{"nexus-connection"}},
			want:     true,
		},
		{
			name:     "name match without keywords",
			manifest: Manifest{Name: "nexus-core"},
			want:     true,
		},
		{
			name:     "extend name match",
			manifest: Manifest{Name: "nexus-extend", Keywords: []string{"framework"}},
			want:     true,
		},
		{
			name:     "no match",
			manifest: Manifest{Name: "left-pad", Keywords: []string{"string", "padding"}},
			want:     false,
		},
		{
			name:     "empty manifest",
			manifest: Manifest{},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := q.Matches(&tt.manifest); got != tt.want {
				t.Errorf("Matches(%+v) = %v, want %v", tt.manifest, got, tt.want)
			}
		})
	}
}

func TestReadManifest(t *testing.T) {
	t.Parallel()

	t.Run("valid manifest", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "package.json")
		content := `{
  "name": "nexus-core",
  "version": "1.2.3",
  "keywords": ["nexus-module"],
  "dependencies": {"@nexus-switchboard/nexus-extend": "^1.0.0"}
}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		m, err := ReadManifest(path)
		if err != nil {
			t.Fatalf("ReadManifest: %v", err)
		}
		if m.Name != "nexus-core" || m.Version != "1.2.3" {
			t.Errorf("manifest = %+v", m)
		}
		if len(m.Keywords) != 1 || m.Keywords[0] != "nexus-module" {
			t.Errorf("keywords = %v", m.Keywords)
		}
		if m.Dependencies["@nexus-switchboard/nexus-extend"] != "^1.0.0" {
			t.Errorf("dependencies = %v", m.Dependencies)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "package.json")
		if err := os.WriteFile(path, []byte(`{"name": "broken",`), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := ReadManifest(path); err == nil {
			t.Error("ReadManifest with malformed JSON = nil, want error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := ReadManifest(filepath.Join(t.TempDir(), "package.json")); err == nil {
			t.Error("ReadManifest with missing file = nil, want error")
		}
	})
}
