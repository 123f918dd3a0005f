// Package config loads pokedex settings from defaults, a YAML config file,
// an optional project overlay, .env files and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	DefaultUserAgent = "pokedex-cli"
	DefaultLogLevel  = "info"
	DefaultFormat    = "table"

	// ProjectOverlayName is the project-local overlay found by
	// ResolveProjectOverlay.
	ProjectOverlayName = ".pokedex.yaml"
)

// Environment variable names.
const (
	EnvAPIURL    = "POKEDEX_API_URL"
	EnvLogLevel  = "POKEDEX_LOG_LEVEL"
	EnvLogFormat = "POKEDEX_LOG_FORMAT"
	EnvLogFile   = "POKEDEX_LOG_FILE"
	EnvNoSprites = "POKEDEX_NO_SPRITES"
	EnvConfig    = "POKEDEX_CONFIG"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full pokedex configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the PokeAPI adapter.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
}

// UIConfig configures the interactive browser.
type UIConfig struct {
	Sprites bool `yaml:"sprites"`
}

// OutputConfig configures non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig configures the diagnostic log.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   DefaultBaseURL,
			UserAgent: DefaultUserAgent,
		},
		UI: UIConfig{Sprites: true},
		Output: OutputConfig{
			DefaultFormat: DefaultFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: "console",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pokedex/config.yaml, or the platform
// user config directory equivalent.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "pokedex", "config.yaml")
}

// Load reads the config file at path on top of the defaults. A missing file
// is an error only when required is true.
func Load(path string, required bool) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadWithOverlay loads path, then shallow-merges overlayPath on top when
// that file exists.
func LoadWithOverlay(path string, required bool, overlayPath string) (*Config, error) {
	cfg, err := Load(path, required)
	if err != nil {
		return nil, err
	}
	if overlayPath == "" {
		return cfg, nil
	}
	if _, statErr := os.Stat(overlayPath); statErr != nil {
		return cfg, nil
	}
	if err = ShallowMergeYAML(cfg, overlayPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok && v != "" {
		c.Logging.File = v
	}
	if v, ok := lookupEnv(EnvNoSprites); ok {
		if off, err := strconv.ParseBool(v); err == nil {
			c.UI.Sprites = !off
		}
	}
}

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api.base_url %q must be an absolute http(s) URL", ErrInvalidConfig, c.API.BaseURL)
	}

	switch strings.ToLower(c.Output.DefaultFormat) {
	case "table", "json":
	default:
		return fmt.Errorf("%w: output.default_format %q must be table or json", ErrInvalidConfig, c.Output.DefaultFormat)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q must be console or json", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.API.BaseURL, "/")
}
