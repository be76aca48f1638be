// Package config loads the nex configuration from ~/.config/nex/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default remote and branch nex operates against. Every Nexus project
// pushes to the same named remote.
const (
	DefaultRemote = "nexus"
	DefaultBranch = "master"
)

// DefaultKeywords qualify a package.json as a Nexus project when any of
// them appears in its keywords.
var DefaultKeywords = []string{"nexus-module", "nexus-connection"}

// DefaultNames qualify a package.json as a Nexus project by exact name.
var DefaultNames = []string{"nexus-core", "nexus-extend"}

// Config holds the nex configuration
type Config struct {
	RootDir  string   `toml:"root_dir" json:"root_dir"` // directory scanned for projects; default: parent of cwd
	Remote   string   `toml:"remote" json:"remote"`
	Branch   string   `toml:"branch" json:"branch"`
	Keywords []string `toml:"keywords" json:"keywords"`
	Names    []string `toml:"names" json:"names"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Remote:   DefaultRemote,
		Branch:   DefaultBranch,
		Keywords: append([]string(nil), DefaultKeywords...),
		Names:    append([]string(nil), DefaultNames...),
	}
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nex", "config.toml"), nil
}

// Load reads config from ~/.config/nex/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.RootDir, "root_dir"); err != nil {
		return Default(), err
	}

	// Expand ~ in root_dir (shell doesn't expand in config files)
	if cfg.RootDir != "" {
		expanded, err := expandPath(cfg.RootDir)
		if err != nil {
			return Default(), fmt.Errorf("expand root_dir: %w", err)
		}
		cfg.RootDir = expanded
	}

	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}
	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = append([]string(nil), DefaultKeywords...)
	}
	if len(cfg.Names) == 0 {
		cfg.Names = append([]string(nil), DefaultNames...)
	}

	return cfg, nil
}

const defaultConfig = `# nex configuration

# Directory scanned for Nexus projects.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# If not set, nex scans the parent of the current working directory.
# root_dir = "~/Projects/nexus"

# Remote and branch used for push/fetch and ahead/behind counts.
# remote = "nexus"
# branch = "master"

# Qualification overrides: a directory with a package.json counts as a
# Nexus project when its keywords intersect this set...
# keywords = ["nexus-module", "nexus-connection"]

# ...or its package name is one of these.
# names = ["nexus-core", "nexus-extend"]
`

// Init creates a default config file at ~/.config/nex/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
