// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartclimate/scaffold/internal/config"
	oerrors "github.com/smartclimate/scaffold/internal/errors"
	"github.com/smartclimate/scaffold/internal/layout"
	"github.com/smartclimate/scaffold/internal/output"
	"github.com/smartclimate/scaffold/internal/scaffold"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once per invocation and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	Config     *config.Config
	ConfigPath string // resolved --config path, empty when none could be determined
	Root       string // resolved project root
	Verbose    bool
}

type rootFlags struct {
	root       string
	config     string
	dryRun     bool
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command. Run without a sub-command it
// generates the project skeleton.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	g := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate the " + layout.ProjectName + " project skeleton",
		Long: `Generate the ` + layout.ProjectName + ` project skeleton.

Creates the base layout, the extended modules (scripts, pipelines, docs,
deployment manifests) and the literal starter files in three ordered passes.
Existing files at the same paths are overwritten.

Files are written under the current directory unless --root is given.

Examples:
  # Generate into the current directory
  scaffold

  # Generate into another directory
  scaffold --root ./forecast

  # Show what would be written without touching the disk
  scaffold --dry-run`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, &flags, g)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, flags.dryRun)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: SCAFFOLD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")
	rootCmd.Flags().StringVarP(&flags.root, "root", "r", "", "Project root (default: current directory)")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Plan the run in memory and print the resulting tree")

	rootCmd.AddCommand(NewLayoutCmd())
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration, sets up logging and resolves the
// project root.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, g *GlobalConfig) error {
	cfg := &config.Config{}
	configPath, pathErr := config.ResolveConfigPath(flags.config)
	var loadErr error
	if pathErr == nil {
		var loaded *config.Config
		loaded, loadErr = config.NewLoader().Load(configPath.Value)
		if loadErr == nil {
			cfg = loaded
		}
	}

	// flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	switch {
	case pathErr != nil:
		output.Warn("no config file location, using defaults", "error", pathErr)
	case loadErr != nil:
		output.Warn("ignoring config file", "path", configPath.Value, "error", loadErr)
	}

	root := config.ResolveRoot(flags.root)
	config.LogResolvedValues(configPath, root)

	g.Config = cfg
	g.ConfigPath = configPath.Value
	g.Root = root.Value
	g.Verbose = flags.verbose

	return nil
}

func runGenerate(cmd *cobra.Command, g *GlobalConfig, dryRun bool) error {
	gen := scaffold.NewGenerator(scaffold.Options{
		Root:   g.Root,
		DryRun: dryRun,
	})

	result, err := gen.Generate()
	if err != nil {
		output.Error("generation failed", "root", g.Root, "error", err)
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
	}

	out := cmd.OutOrStdout()
	if dryRun {
		manifest := layout.BuildManifest()
		fmt.Fprint(out, output.RenderFileTree(result.Root, treeEntries(manifest)))
	}
	fmt.Fprintln(out, output.FormatCheckmark(result.Message()))

	return nil
}
