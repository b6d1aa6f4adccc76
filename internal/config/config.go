package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"relapse/internal/application"
	"relapse/internal/domain"
)

const (
	EnvPrefix          = "RELAPSE"
	ProjectFileName    = ".relapse.yaml"
	DefaultToolTimeout = 5 * time.Minute
	DefaultBarWidth    = 50
)

// Config is the merged configuration of one invocation
type Config struct {
	Root        string        `mapstructure:"root" yaml:"root"`
	Gap         time.Duration `mapstructure:"gap" yaml:"gap"`
	Bins        int           `mapstructure:"bins" yaml:"bins"`
	Width       int           `mapstructure:"width" yaml:"width"`
	Kind        string        `mapstructure:"kind" yaml:"kind"`
	Ignore      []string      `mapstructure:"ignore" yaml:"ignore"`
	ToolTimeout time.Duration `mapstructure:"tool_timeout" yaml:"tool_timeout"`
	Code2Prompt Code2Prompt   `mapstructure:"code2prompt" yaml:"code2prompt"`
}

// Code2Prompt configures the external context tool
type Code2Prompt struct {
	Binary string   `mapstructure:"binary" yaml:"binary"`
	Args   []string `mapstructure:"args" yaml:"args"`
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// File is an explicit config file; it must exist when set
	File string
	// Root overrides every other root source and locates the project file
	Root string
	// Home locates the global config; empty means the user's home
	Home string
}

// DefaultRoot returns the root from RELAPSE_ROOT env var,
// falling back to the working directory.
func DefaultRoot() string {
	if env := os.Getenv(EnvPrefix + "_ROOT"); env != "" {
		return env
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// GlobalConfigPath returns the path to the per-user config file
func GlobalConfigPath(home string) string {
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".config", "relapse", "config.yaml")
}

// ProjectConfigPath returns the path to the config file inside root
func ProjectConfigPath(root string) string {
	return filepath.Join(root, ProjectFileName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", "")
	v.SetDefault("gap", domain.DefaultGap)
	v.SetDefault("bins", domain.DefaultBins)
	v.SetDefault("width", DefaultBarWidth)
	v.SetDefault("kind", domain.KindAll.String())
	v.SetDefault("ignore", []string{})
	v.SetDefault("tool_timeout", DefaultToolTimeout)
	v.SetDefault("code2prompt.binary", "code2prompt")
	v.SetDefault("code2prompt.args", []string{})
}

// Load merges defaults, the global file, the project file under the root,
// an explicit file and RELAPSE_* environment variables, in that order.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := mergeFile(v, GlobalConfigPath(opts.Home), false); err != nil {
		return nil, err
	}

	root := opts.Root
	if root == "" {
		root = v.GetString("root")
	}
	if root == "" {
		root = DefaultRoot()
	}

	if err := mergeFile(v, ProjectConfigPath(root), false); err != nil {
		return nil, err
	}
	if opts.File != "" {
		if err := mergeFile(v, opts.File, true); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	// the project file cannot move the root it was found in
	cfg.Root = root

	return &cfg, nil
}

func mergeFile(v *viper.Viper, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// Validate checks values that flags and files can both set
func (c *Config) Validate() error {
	if err := application.ValidateGap(c.Gap); err != nil {
		return err
	}
	if err := application.ValidateBins(c.Bins); err != nil {
		return err
	}
	if c.Width <= 0 {
		return &application.ValidationError{Field: "width", Message: "width must be > 0"}
	}
	if _, err := application.ParseKind(c.Kind); err != nil {
		return err
	}
	if c.ToolTimeout < 0 {
		return &application.ValidationError{Field: "tool_timeout", Message: "tool_timeout must be >= 0"}
	}
	return nil
}

// ScanKind returns the parsed kind filter
func (c *Config) ScanKind() domain.Kind {
	k, _ := domain.ParseKind(c.Kind)
	return k
}

// YAML renders the config in the same shape the config files use, with
// durations in Go notation
func (c *Config) YAML() ([]byte, error) {
	type file struct {
		Root        string      `yaml:"root"`
		Gap         string      `yaml:"gap"`
		Bins        int         `yaml:"bins"`
		Width       int         `yaml:"width"`
		Kind        string      `yaml:"kind"`
		Ignore      []string    `yaml:"ignore"`
		ToolTimeout string      `yaml:"tool_timeout"`
		Code2Prompt Code2Prompt `yaml:"code2prompt"`
	}

	return yaml.Marshal(file{
		Root:        c.Root,
		Gap:         c.Gap.String(),
		Bins:        c.Bins,
		Width:       c.Width,
		Kind:        c.Kind,
		Ignore:      c.Ignore,
		ToolTimeout: c.ToolTimeout.String(),
		Code2Prompt: c.Code2Prompt,
	})
}
