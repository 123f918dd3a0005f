package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/internal/config"
	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/pkg/version"
)

// setupLogging configures logging from the resolved config and CLI flags.
// When the browser owns the terminal, logs always go to a file.
func setupLogging(cmd *cobra.Command, loggingCfg *config.LoggingConfig, interactive bool) logging.LogPathResult {
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = "console"
			loggingCfg.File = ""
		}
	}
	if interactive {
		loggingCfg.ForceFile()
	}

	// Ensure log directory exists after all overrides have been applied.
	if err := loggingCfg.EnsureLogDir(); err != nil {
		cmd.PrintErrf("Warning: could not create log directory: %v\n", err)
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	switch {
	case result.UsingFile && debug:
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	case result.FallbackUsed:
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := commandContext(cmd)
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("version", version.GetVersion()).
		Str("commit", version.GetGitCommit()).
		Str("build_date", version.GetBuildDate()).
		Bool("prerelease", version.IsPrerelease()).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
