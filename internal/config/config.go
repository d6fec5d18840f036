// Package config holds the declgen.yaml model and the shared constants of
// the tool.
//
// A declgen run is driven entirely by its config file:
//   - Decls lists declaration files loaded into the table before generation
//   - Scripts lists generator scripts, processed in order
//   - Out is the emitted declaration file
//   - Foreign configures advisory verification of external registrations
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level declgen.yaml configuration.
type Config struct {
	// Decls are declaration files (.decl) parsed into the declaration
	// table at startup, before any script runs.
	Decls []string `yaml:"decls,omitempty"`

	// Scripts are generator scripts (.gen), processed in listed order.
	Scripts []string `yaml:"scripts"`

	// Out is the path of the emitted declaration file.
	Out string `yaml:"out"`

	// Foreign configures external-registration verification.
	Foreign Foreign `yaml:"foreign,omitempty"`

	// Cache enables the sqlite generation cache under .declgen/.
	// Defaults to true.
	Cache *bool `yaml:"cache,omitempty"`
}

// Foreign lists the sources external registrations may resolve against.
// Verification is advisory: a registration that matches nothing is logged,
// never rejected.
type Foreign struct {
	// GoPackages are Go import paths inspected via go/packages.
	GoPackages []string `yaml:"go_packages,omitempty"`

	// Protosets are compiled FileDescriptorSet files whose service methods
	// count as foreign symbols.
	Protosets []string `yaml:"protosets,omitempty"`
}

// LoadConfig reads and parses a declgen.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses declgen.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfig searches for declgen.yaml starting from dir and walking up
// to parent directories, similar to how .gitignore is found.
// Returns the path to the config file and nil error if found,
// or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if len(c.Scripts) == 0 {
		return fmt.Errorf("%s: no scripts defined", path)
	}
	if c.Out == "" {
		return fmt.Errorf("%s: out is required", path)
	}

	seen := make(map[string]bool)
	for i, s := range c.Scripts {
		if s == "" {
			return fmt.Errorf("%s: scripts[%d]: empty path", path, i)
		}
		if seen[s] {
			return fmt.Errorf("%s: scripts[%d]: %q listed twice", path, i, s)
		}
		seen[s] = true
	}

	for i, d := range c.Decls {
		if d == "" {
			return fmt.Errorf("%s: decls[%d]: empty path", path, i)
		}
		if d == c.Out {
			return fmt.Errorf("%s: decls[%d]: %q is also the output file", path, i, d)
		}
	}

	for i, ps := range c.Foreign.Protosets {
		if ps == "" {
			return fmt.Errorf("%s: foreign.protosets[%d]: empty path", path, i)
		}
	}

	return nil
}

// CacheEnabled reports whether the generation cache should be used.
func (c *Config) CacheEnabled() bool {
	if c.Cache == nil {
		return true
	}
	return *c.Cache
}

// Dir returns the directory a path from the config should be resolved
// relative to, given the config file location.
func Dir(configPath string) string {
	return filepath.Dir(configPath)
}

// Resolve makes a config-relative path absolute against the config dir.
func Resolve(configDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}
