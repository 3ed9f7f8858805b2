package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Environment variables recognised by houselist.
const (
	EnvHome         = "HOUSELIST_HOME"
	EnvSeedFile     = "HOUSELIST_SEED_FILE"
	EnvCurrency     = "HOUSELIST_CURRENCY"
	EnvLocale       = "HOUSELIST_LOCALE"
	EnvTitle        = "HOUSELIST_TITLE"
	EnvOutputFormat = "HOUSELIST_OUTPUT_FORMAT"
	EnvLogLevel     = "HOUSELIST_LOG_LEVEL"
	EnvLogFormat    = "HOUSELIST_LOG_FORMAT"
	EnvLogFile      = "HOUSELIST_LOG_FILE"
)

// envKeys maps environment variables to the dotted config keys they override.
//
//nolint:gochecknoglobals // Static lookup table.
var envKeys = []struct {
	env string
	key string
}{
	{EnvSeedFile, "seed.file"},
	{EnvCurrency, "display.currency"},
	{EnvLocale, "display.locale"},
	{EnvTitle, "display.title"},
	{EnvOutputFormat, "output.default_format"},
	{EnvLogLevel, "logging.level"},
	{EnvLogFormat, "logging.format"},
	{EnvLogFile, "logging.file"},
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. An empty path means
// ".env" in the working directory. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides copies non-empty HOUSELIST_* variables onto c.
// lookupEnv is injected for testability; pass os.LookupEnv in production.
func (c *Config) ApplyEnvOverrides(lookupEnv func(string) (string, bool)) {
	for _, ek := range envKeys {
		if v, ok := lookupEnv(ek.env); ok && v != "" {
			_ = c.Set(ek.key, v)
		}
	}
}
