package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/config"
	"github.com/rshade/postview/internal/logging"
)

// annotationFileLogging marks commands whose output owns the terminal, so logs
// must go to a file.
const annotationFileLogging = "postview/file-logging"

// setupLogging builds the logger from config and flags and stores it, tagged with a
// fresh session id, in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) *logging.Result {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
	}

	switch {
	case cmd.Annotations[annotationFileLogging] == "true":
		loggingCfg = loggingCfg.WithDefaultFile()
	case debug:
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	result := logging.NewLogger(loggingCfg.ToLoggingConfig(cmd.ErrOrStderr()))
	if result.FallbackReason != "" {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	sessionID := logging.NewSessionID()
	base := result.Logger.With().Str("session_id", sessionID).Logger()

	ctx := logging.ContextWithSessionID(cmd.Context(), sessionID)
	ctx = base.WithContext(ctx)
	cmd.SetContext(ctx)

	logger := logging.ComponentLogger(base, "cli")
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Bool("log_to_file", result.UsingFile).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.Result) error {
	return logResult.Close()
}
