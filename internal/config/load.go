package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".gocefrizer.yml"

// Load reads and parses a config file at the given path. Keys missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .gocefrizer.yml file. It stops at a .git directory (the repository
// root) or the filesystem root. Returns "" when no file was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve loads the config for a working directory: an explicit path
// wins, otherwise discovery, otherwise defaults.
func Resolve(explicit, workDir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	found, err := Discover(workDir)
	if err != nil {
		return nil, err
	}
	if found == "" {
		return Defaults(), nil
	}
	return Load(found)
}
