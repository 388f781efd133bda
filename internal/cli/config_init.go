package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/postview/internal/config"
)

// yamlIndent matches the indentation of the generated config file.
const yamlIndent = 2

// newConfigInitCmd creates the config init command.
func newConfigInitCmd(_ *appEnv) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a configuration file with default values at --config,
$POSTVIEW_CONFIG or ~/.postview/config.yaml.`,
		Example: `  # Create the default configuration
  postview config init

  # Overwrite an existing configuration
  postview config init --force`,
		Annotations: map[string]string{annotationIgnoreConfigErrors: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveConfigPath(cmd)
			if err != nil {
				return err
			}

			if !force {
				_, statErr := os.Stat(path)
				if statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if saveErr := config.New().Save(path); saveErr != nil {
				return fmt.Errorf("failed to save configuration: %w", saveErr)
			}

			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// newConfigShowCmd prints the effective configuration after env and flag overrides.
func newConfigShowCmd(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(yamlIndent)
			if err := enc.Encode(env.cfg); err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			return enc.Close()
		},
	}
}
