package config

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Remote != DefaultRemote {
		t.Errorf("remote = %q, want %q", cfg.Remote, DefaultRemote)
	}
	if cfg.Branch != DefaultBranch {
		t.Errorf("branch = %q, want %q", cfg.Branch, DefaultBranch)
	}
	if !slices.Equal(cfg.Keywords, DefaultKeywords) {
		t.Errorf("keywords = %v, want %v", cfg.Keywords, DefaultKeywords)
	}
	if !slices.Equal(cfg.Names, DefaultNames) {
		t.Errorf("names = %v, want %v", cfg.Names, DefaultNames)
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty is allowed", "", false},
		{"absolute is allowed", "/home/user/projects", false},
		{"tilde is allowed", "~/projects", false},
		{"bare tilde is allowed", "~", false},
		{"relative is rejected", "projects", true},
		{"dot is rejected", ".", true},
		{"dotdot is rejected", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePath(tt.path, "root_dir")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "nex")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.Remote != DefaultRemote || cfg.Branch != DefaultBranch {
		t.Errorf("Load returned %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	writeConfig(t, `
root_dir = "~/nexus"
remote = "origin"
keywords = ["my-module"]
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "nexus"); cfg.RootDir != want {
		t.Errorf("root_dir = %q, want %q (tilde expanded)", cfg.RootDir, want)
	}
	if cfg.Remote != "origin" {
		t.Errorf("remote = %q, want %q", cfg.Remote, "origin")
	}
	// Unset fields fall back to defaults.
	if cfg.Branch != DefaultBranch {
		t.Errorf("branch = %q, want default %q", cfg.Branch, DefaultBranch)
	}
	if !slices.Equal(cfg.Keywords, []string{"my-module"}) {
		t.Errorf("keywords = %v, want [my-module]", cfg.Keywords)
	}
	if !slices.Equal(cfg.Names, DefaultNames) {
		t.Errorf("names = %v, want defaults", cfg.Names)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	writeConfig(t, `remote = [broken`)

	if _, err := Load(); err == nil {
		t.Error("Load with invalid TOML = nil, want error")
	}
}

func TestLoadRelativeRootDir(t *testing.T) {
	writeConfig(t, `root_dir = "projects"`)

	if _, err := Load(); err == nil {
		t.Error("Load with relative root_dir = nil, want error")
	}
}

func TestInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := Init(false)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// Second init without force fails.
	if _, err := Init(false); err == nil {
		t.Error("Init over existing file = nil, want error")
	}

	// Force overwrites.
	if _, err := Init(true); err != nil {
		t.Errorf("Init with force = %v, want nil", err)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Remote = "upstream"
		ctx := WithConfig(context.Background(), &cfg)
		ctx = WithWorkDir(ctx, "/work")

		if got := FromContext(ctx); got.Remote != "upstream" {
			t.Errorf("FromContext remote = %q, want %q", got.Remote, "upstream")
		}
		if got := WorkDirFromContext(ctx); got != "/work" {
			t.Errorf("WorkDirFromContext = %q, want %q", got, "/work")
		}
	})

	t.Run("fallbacks", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		if got := FromContext(ctx); got.Remote != DefaultRemote {
			t.Errorf("FromContext fallback remote = %q, want default", got.Remote)
		}
		if got := WorkDirFromContext(ctx); got != "." {
			t.Errorf("WorkDirFromContext fallback = %q, want %q", got, ".")
		}
	})
}
