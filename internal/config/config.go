// Package config loads postview settings from ~/.postview/config.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/postview/internal/posts"
)

// Environment variable names.
const (
	EnvHome      = "POSTVIEW_HOME"
	EnvConfig    = "POSTVIEW_CONFIG"
	EnvStateDir  = "POSTVIEW_STATE_DIR"
	EnvPosts     = "POSTVIEW_POSTS"
	EnvLogLevel  = "POSTVIEW_LOG_LEVEL"
	EnvLogFormat = "POSTVIEW_LOG_FORMAT"
	EnvLogFile   = "POSTVIEW_LOG_FILE"
)

// configFileName is the config file inside the config directory.
const configFileName = "config.yaml"

// MaxPosts bounds the synthetic collection size.
const MaxPosts = 1_000_000

// Config errors.
var (
	ErrInvalidPostCount = fmt.Errorf("posts.count must be between 0 and %d", MaxPosts)
	ErrInvalidLogFormat = errors.New("logging.format must be 'console' or 'json'")
)

// Config is the full postview configuration.
type Config struct {
	Posts   PostsConfig   `yaml:"posts"`
	State   StateConfig   `yaml:"state"`
	Logging LoggingConfig `yaml:"logging"`
}

// PostsConfig controls the synthetic data source.
type PostsConfig struct {
	Count int `yaml:"count"`
}

// StateConfig controls where the view state is persisted.
type StateConfig struct {
	// Dir holds one file per key. Empty means <config dir>/state.
	Dir string `yaml:"dir"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		Posts: PostsConfig{Count: posts.DefaultCount},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error. An empty path means
// $POSTVIEW_CONFIG or <config dir>/config.yaml.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, configFileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, unmarshalErr)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	default:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if envErr := cfg.applyEnv(); envErr != nil {
		return nil, envErr
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return cfg, nil
}

// applyEnv overlays POSTVIEW_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvStateDir); v != "" {
		c.State.Dir = v
	}
	if v := os.Getenv(EnvPosts); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPosts, err)
		}
		c.Posts.Count = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Posts.Count < 0 || c.Posts.Count > MaxPosts {
		return fmt.Errorf("%w: got %d", ErrInvalidPostCount, c.Posts.Count)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}

// ResolveStateDir returns the configured state directory or the default under the config dir.
func (c *Config) ResolveStateDir() (string, error) {
	if c.State.Dir != "" {
		return expandHome(c.State.Dir)
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state"), nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0o700); mkdirErr != nil {
		return fmt.Errorf("creating config directory: %w", mkdirErr)
	}
	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config file: %w", writeErr)
	}
	return nil
}

// DefaultConfigPath returns <config dir>/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetConfigDir returns $POSTVIEW_HOME or ~/.postview.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".postview"), nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
