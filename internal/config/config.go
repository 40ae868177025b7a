package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentsync/agentsync/internal/source"
)

// ErrInvalidConfig indicates the configuration file failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

const envPrefix = "AGENTSYNC"

// EntryConfig declares one level of the source hierarchy, low to high
// priority.
type EntryConfig struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`

	// Type is "git" or "local". Empty means detect from the directory.
	Type string `mapstructure:"type"`

	// Scopes restricts the entry to the listed scopes; empty means all.
	Scopes []string `mapstructure:"scopes"`
}

// ScopeSettings describes one tool scope's output.
type ScopeSettings struct {
	Directory   string `mapstructure:"directory"`
	Subdir      string `mapstructure:"subdir"`
	Kind        string `mapstructure:"kind"`
	Description string `mapstructure:"description"`
}

// LogSettings configures the rotating file logger.
type LogSettings struct {
	Filename   string `mapstructure:"filename"`
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// Config is the loaded agentsync configuration.
type Config struct {
	// Agent is the default producer id recorded in manifests.
	Agent string `mapstructure:"agent"`

	Scopes    map[string]ScopeSettings  `mapstructure:"scopes"`
	Hierarchy []EntryConfig             `mapstructure:"hierarchy"`
	Mergers   map[string]map[string]any `mapstructure:"mergers"`
	Log       LogSettings               `mapstructure:"log"`
}

// Load reads the configuration file, applying defaults and environment
// overrides (AGENTSYNC_* variables). A missing file yields the defaults.
func Load() (*Config, error) {
	return load(ConfigFile())
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("agent", "claude")
	v.SetDefault("log.filename", LogFile())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}

	for name, scope := range cfg.Scopes {
		scope.Directory = expandHome(scope.Directory)
		cfg.Scopes[name] = scope
	}
	for i := range cfg.Hierarchy {
		cfg.Hierarchy[i].Path = expandHome(cfg.Hierarchy[i].Path)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Hierarchy))
	for _, e := range c.Hierarchy {
		if e.Name == "" {
			return fmt.Errorf("%w: hierarchy entry without a name", ErrInvalidConfig)
		}
		if e.Path == "" {
			return fmt.Errorf("%w: hierarchy entry %q without a path", ErrInvalidConfig, e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate hierarchy entry %q", ErrInvalidConfig, e.Name)
		}
		seen[e.Name] = true

		switch e.Type {
		case "", "git", "local":
		default:
			return fmt.Errorf("%w: hierarchy entry %q has unknown type %q", ErrInvalidConfig, e.Name, e.Type)
		}
	}

	for name, scope := range c.Scopes {
		if scope.Directory == "" {
			return fmt.Errorf("%w: scope %q without a directory", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Scope returns the settings for a named scope.
func (c *Config) Scope(name string) (ScopeSettings, error) {
	s, ok := c.Scopes[name]
	if !ok {
		return ScopeSettings{}, fmt.Errorf("%w: unknown scope %q", ErrInvalidConfig, name)
	}
	return s, nil
}

// BuildHierarchy materializes the configured hierarchy into sources.
// Entries without an explicit type are classified by inspecting the
// directory.
func (c *Config) BuildHierarchy() []source.Entry {
	entries := make([]source.Entry, 0, len(c.Hierarchy))
	for _, e := range c.Hierarchy {
		kind := e.Type
		if kind == "" {
			if source.DetectKind(e.Path) == source.KindGit {
				kind = "git"
			} else {
				kind = "local"
			}
		}

		var src source.Source
		if kind == "git" {
			src = source.NewGitSource(e.Name, e.Path)
		} else {
			src = source.NewLocalSource(e.Name, e.Path)
		}
		entries = append(entries, source.Entry{Name: e.Name, Source: src, Scopes: e.Scopes})
	}
	return entries
}
