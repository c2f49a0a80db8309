package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/smartclimate/scaffold/internal/config"
	oerrors "github.com/smartclimate/scaffold/internal/errors"
	"github.com/smartclimate/scaffold/internal/output"
)

const configHeader = "# scaffold CLI configuration\n# Validate with: scaffold config vet\n"

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the scaffold CLI configuration.

Writes a config file with every setting at its default value to the resolved
config path (--config flag > SCAFFOLD_CONFIG env > ~/.scaffold/config.yaml).

Examples:
  # Initialize configuration
  scaffold config init

  # Overwrite existing configuration
  scaffold config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runConfigInit(cmd, g, force); err != nil {
				return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, g *GlobalConfig, force bool) error {
	if g.ConfigPath == "" {
		return oerrors.NewNotFoundError("could not determine config file location", "",
			"Set HOME, SCAFFOLD_CONFIG or pass --config.")
	}

	configPath, err := config.ExpandPath(g.ConfigPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return oerrors.NewIOError("stat", configPath, err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("rendering default config: %w", err)
	}

	// secure permissions: 0700 directory, 0600 file
	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return oerrors.NewIOError("mkdir", filepath.Dir(configPath), err)
	}
	if err := os.WriteFile(configPath, append([]byte(configHeader), data...), 0o600); err != nil {
		return oerrors.NewIOError("write", configPath, err)
	}

	output.Debug("config written", "path", configPath, "overwrite", exists)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Configuration initialized at "+configPath))
	fmt.Fprintln(out, "Validate with: scaffold config vet")

	return nil
}
