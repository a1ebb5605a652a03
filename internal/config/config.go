// Package config loads the .gocefrizer.yml project configuration.
package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Config is the top-level configuration.
type Config struct {
	// DataDir points at a directory holding word_lookup.json and
	// coca_frequencies.json. Empty means the embedded seed resources.
	DataDir string `yaml:"data-dir"`

	MinWords int `yaml:"min-words"`
	MaxWords int `yaml:"max-words"`

	// DefaultRank is used for words absent from the frequency table.
	DefaultRank int `yaml:"default-rank"`

	// Ignore holds glob patterns excluded from corpus discovery.
	Ignore []string `yaml:"ignore"`

	Server ServerConfig `yaml:"server"`
}

// ServerConfig configures the HTTP daemon.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	RateLimit      float64  `yaml:"rate-limit"`
	Burst          int      `yaml:"burst"`
	AllowedOrigins []string `yaml:"allowed-origins"`
}

// Defaults returns the configuration used when no file is found.
func Defaults() *Config {
	return &Config{
		MinWords:    10,
		MaxWords:    10000,
		DefaultRank: 10000,
		Server: ServerConfig{
			Addr:           ":8087",
			RateLimit:      10,
			Burst:          20,
			AllowedOrigins: []string{"*"},
		},
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.MinWords < 1 {
		return fmt.Errorf("min-words must be at least 1, got %d", c.MinWords)
	}
	if c.MaxWords < c.MinWords {
		return fmt.Errorf("max-words (%d) must not be below min-words (%d)",
			c.MaxWords, c.MinWords)
	}
	if c.DefaultRank < 1 {
		return fmt.Errorf("default-rank must be positive, got %d", c.DefaultRank)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate-limit must not be negative, got %v", c.Server.RateLimit)
	}
	if _, err := c.IgnoreMatchers(); err != nil {
		return err
	}
	return nil
}

// IgnoreMatchers compiles the ignore patterns. Paths use '/' as the
// separator regardless of platform.
func (c *Config) IgnoreMatchers() ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(c.Ignore))
	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}

// Ignored reports whether a slash-separated path matches any ignore
// pattern.
func Ignored(matchers []glob.Glob, path string) bool {
	for _, m := range matchers {
		if m.Match(path) {
			return true
		}
	}
	return false
}
