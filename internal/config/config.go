// Package config provides reading and writing of finder-tags configuration.
// Supports both global (~/.finder-tags/config.yaml) and local
// (.finder-tags/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"github.com/scooby/osx-tags/internal/format"
	"gopkg.in/yaml.v3"
)

// Dir is the name of the configuration directory in both scopes.
const Dir = ".finder-tags"

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.finder-tags/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .finder-tags/config.yaml
	ScopeLocal
)

// Output holds output-related options.
type Output struct {
	Format string `yaml:"format,omitempty"`
}

// Color holds terminal styling options.
type Color struct {
	Mode string `yaml:"mode,omitempty"`
}

// Attrs holds extended-attribute options.
type Attrs struct {
	// Prefix overrides the platform namespace prefix when set, including
	// when set to the empty string.
	Prefix *string `yaml:"prefix,omitempty"`
}

// Log holds audit and diagnostics options.
type Log struct {
	Audit *bool  `yaml:"audit,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultColorMode = format.ModeAuto
	DefaultLogLevel  = "warn"
)

// Config contains configuration for finder-tags.
type Config struct {
	Output Output `yaml:"output,omitempty"`
	Color  Color  `yaml:"color,omitempty"`
	Attrs  Attrs  `yaml:"attrs,omitempty"`
	Log    Log    `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are acceptable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if f := c.Output.Format; f != "" && f != "json" {
		return fmt.Errorf("%w: output.format must be empty or json, got %q", ErrInvalidValue, f)
	}
	if m := c.Color.Mode; m != "" && !slices.Contains(format.Modes, m) {
		return fmt.Errorf("%w: color.mode must be one of auto, always, never, got %q", ErrInvalidValue, m)
	}
	if l := c.Log.Level; l != "" {
		if _, err := zerolog.ParseLevel(l); err != nil {
			return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
		}
	}
	return nil
}

// JSON returns whether JSON output is the configured default.
func (c *Config) JSON() bool {
	return c.Output.Format == "json"
}

// ColorMode returns the colour mode (defaults to auto).
func (c *Config) ColorMode() string {
	if c.Color.Mode == "" {
		return DefaultColorMode
	}
	return c.Color.Mode
}

// Prefix returns the configured attribute prefix and whether one is set.
func (c *Config) Prefix() (string, bool) {
	if c.Attrs.Prefix == nil {
		return "", false
	}
	return *c.Attrs.Prefix, true
}

// Audit returns whether operations are recorded in the audit log
// (defaults to true).
func (c *Config) Audit() bool {
	if c.Log.Audit == nil {
		return true
	}
	return *c.Log.Audit
}

// LogLevel returns the diagnostics level (defaults to warn).
func (c *Config) LogLevel() zerolog.Level {
	l, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || c.Log.Level == "" {
		l, _ = zerolog.ParseLevel(DefaultLogLevel)
	}
	return l
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file:
// ~/.finder-tags/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
