// Package config loads, stores and exposes houselist configuration.
//
// Values are resolved in order: built-in defaults, the YAML config file
// ($HOUSELIST_HOME/config.yaml), a .env file in the working directory,
// HOUSELIST_* environment variables, and finally CLI flags applied by the
// caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/houselist/internal/listing"
)

// ErrUnknownKey is returned by Get and Set for keys that do not exist.
var ErrUnknownKey = errors.New("unknown configuration key")

const (
	configFileName = "config.yaml"
	outputTypeFile = "file"
)

// Output formats accepted by output.default_format.
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Config is the full houselist configuration.
type Config struct {
	Seed    SeedConfig    `yaml:"seed"`
	Display DisplayConfig `yaml:"display"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// SeedConfig selects the initial collection of houses.
type SeedConfig struct {
	// File is a YAML or JSON seed file. Empty means the built-in houses.
	File string `yaml:"file"`
}

// DisplayConfig controls how listings are presented.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
	Locale   string `yaml:"locale"`
	Title    string `yaml:"title"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns a configuration holding only built-in defaults.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Currency: "USD",
			Locale:   "en-US",
			Title:    listing.DefaultTitle,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New returns the effective configuration: defaults overlaid with the config
// file (if present), .env and HOUSELIST_* environment variables.
// Problems reading the file are ignored so the CLI still starts; use Load to
// surface them.
func New() *Config {
	cfg := Default()
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	if cfg.configPath != "" {
		_ = cfg.Load()
	}
	_ = LoadDotEnv("")
	cfg.ApplyEnvOverrides(os.LookupEnv)
	return cfg
}

// NewWithPath returns defaults overlaid with the config file at path.
// A missing file is not an error.
func NewWithPath(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the file this configuration is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file used by Load and Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load merges the config file onto c. A missing file is not an error.
func (c *Config) Load() error {
	if c.configPath == "" {
		return nil
	}
	if _, err := os.Stat(c.configPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return ShallowMergeYAML(c, c.configPath)
}

// Save writes c to its config path, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks values that would otherwise fail later at render time.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case FormatTable, FormatPlain, FormatJSON:
	default:
		return fmt.Errorf("output.default_format must be one of table, plain, json; got %q", c.Output.DefaultFormat)
	}
	if strings.TrimSpace(c.Display.Currency) == "" {
		return errors.New("display.currency must not be empty")
	}
	return nil
}

// fieldRefs maps dotted keys to the string fields they address.
func (c *Config) fieldRefs() map[string]*string {
	return map[string]*string{
		"seed.file":             &c.Seed.File,
		"display.currency":      &c.Display.Currency,
		"display.locale":        &c.Display.Locale,
		"display.title":         &c.Display.Title,
		"output.default_format": &c.Output.DefaultFormat,
		"logging.level":         &c.Logging.Level,
		"logging.format":        &c.Logging.Format,
		"logging.file":          &c.Logging.File,
	}
}

// Keys returns all supported dotted keys in sorted order.
func (c *Config) Keys() []string {
	refs := c.fieldRefs()
	keys := make([]string, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "display.currency".
func (c *Config) Get(key string) (string, error) {
	ref, ok := c.fieldRefs()[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return *ref, nil
}

// Set assigns the value of a dotted key.
func (c *Config) Set(key, value string) error {
	ref, ok := c.fieldRefs()[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	*ref = value
	return nil
}
