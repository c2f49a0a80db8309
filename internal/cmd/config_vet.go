package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartclimate/scaffold/internal/config"
	oerrors "github.com/smartclimate/scaffold/internal/errors"
	"github.com/smartclimate/scaffold/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the scaffold CLI configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Every key is known and every value has the right type

The config path is resolved using precedence:
  --config flag > SCAFFOLD_CONFIG env > ~/.scaffold/config.yaml

Examples:
  # Validate default configuration
  scaffold config vet

  # Validate custom config path
  scaffold config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runConfigVet(cmd, g); err != nil {
				return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
			}
			return nil
		},
	}
}

func runConfigVet(cmd *cobra.Command, g *GlobalConfig) error {
	if g.ConfigPath == "" {
		return oerrors.NewNotFoundError("could not determine config file location", "",
			"Set HOME, SCAFFOLD_CONFIG or pass --config.")
	}

	configPath, err := config.ExpandPath(g.ConfigPath)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	output.Debug("validating config", "path", configPath)

	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return oerrors.NewIOError("stat", configPath, err)
	}
	if !exists {
		return oerrors.NewNotFoundError("configuration file not found", configPath,
			"Run 'scaffold config init' to create default configuration")
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("loading config schema: %w", err)
	}

	if err := validator.ValidateFile(configPath); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			return oerrors.NewValidationError(verr.Details, configPath, "",
				"Supported keys are 'root' and 'log.timestamps'.")
		}
		return oerrors.NewValidationError(err.Error(), configPath, "", "")
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+configPath))
	return nil
}
