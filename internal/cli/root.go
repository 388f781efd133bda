// Package cli implements the postview command tree.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/postview/internal/config"
	"github.com/rshade/postview/internal/logging"
)

// annotationIgnoreConfigErrors marks commands that must run even when the existing
// config file cannot be loaded; they start from the built-in defaults.
const annotationIgnoreConfigErrors = "postview/ignore-config-errors"

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root command for the postview CLI.
func NewRootCmd(ver string) *cobra.Command {
	env := &appEnv{isTerminal: isTerminal}
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:           "postview",
		Short:         "Browse a paginated, sortable list of posts",
		Long:          "postview: page through posts in a terminal UI; page, page size and sort order survive restarts",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.loadConfig(cmd); err != nil {
				if cmd.Annotations[annotationIgnoreConfigErrors] != "true" {
					return err
				}
				env.cfg = config.New()
			}
			logResult = setupLogging(cmd, env.cfg)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $POSTVIEW_CONFIG or ~/.postview/config.yaml)")
	cmd.PersistentFlags().String("state-dir", "", "directory for the persisted view state (overrides config and env)")
	cmd.PersistentFlags().Bool("ephemeral", false, "keep the view state in memory only")
	cmd.PersistentFlags().Int("posts", 0, "number of posts to generate (overrides config)")

	cmd.AddCommand(
		newBrowseCmd(env),
		newListCmd(env),
		newStateCmd(env),
		newConfigCmd(env),
	)

	return cmd
}

const rootCmdExample = `  # Browse posts interactively
  postview browse

  # Print page 3 with 20 posts per page, oldest first
  postview list --page 3 --page-size 20 --sort oldest

  # Print the current page as JSON
  postview list --output json

  # Show or clear the persisted view state
  postview state show
  postview state reset

  # Write a default config file
  postview config init`

// newConfigCmd creates the config command group.
func newConfigCmd(env *appEnv) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(env), newConfigShowCmd(env))
	return cmd
}

// newStateCmd creates the state command group.
func newStateCmd(env *appEnv) *cobra.Command {
	cmd := &cobra.Command{Use: "state", Short: "Inspect or clear the persisted view state"}
	cmd.AddCommand(newStateShowCmd(env), newStateResetCmd(env))
	return cmd
}

// configPathFlag returns the --config flag value.
func configPathFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

// resolveConfigPath returns the config file a command should read or write.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if path := configPathFlag(cmd); path != "" {
		return path, nil
	}
	if path := os.Getenv(config.EnvConfig); path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}
