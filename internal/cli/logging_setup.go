package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/houselist/internal/config"
	"github.com/rshade/houselist/internal/logging"
)

// lookupEnv is swapped in tests.
//
//nolint:gochecknoglobals // Test seam for environment lookup.
var lookupEnv = os.LookupEnv

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	debug, _ := cmd.Flags().GetBool("debug")
	loggingCfg := resolveLoggingConfig(config.GetLoggingConfig(), debug)

	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = result.Logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// resolveLoggingConfig applies the --debug override, which logs at debug
// level to stderr with caller information.
func resolveLoggingConfig(lc config.LoggingConfig, debug bool) logging.Config {
	if !debug {
		return lc.ToLoggingConfig()
	}
	lc.Level = "debug"
	lc.Format = logging.FormatConsole
	lc.File = ""
	cfg := lc.ToLoggingConfig()
	cfg.Caller = true
	return cfg
}

// cleanupLogging closes the log file handle.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	logger.Debug().Ctx(cmd.Context()).Str("command", cmd.Name()).Msg("command finished")
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}

// logsToTerminal reports whether the current logging setup writes to stderr.
func logsToTerminal(cmd *cobra.Command) bool {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return true
	}
	return config.GetLoggingConfig().File == ""
}
