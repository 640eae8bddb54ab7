// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	configcmd "github.com/gradle-util/gur/internal/cmd/config"
	templatecmd "github.com/gradle-util/gur/internal/cmd/template"
	"github.com/gradle-util/gur/internal/config"
	"github.com/gradle-util/gur/internal/output"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the gur CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "gur",
		Short: "Gradle utility",
		Long: `gur manages Gradle wrapper versions and generates Gradle projects from templates.

It can stamp a wrapper version into every new project created below a set of
directories, switch or bulk-update the wrapper of an existing project, and
scaffold projects from builtin or user-supplied templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, &flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: GUR_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output (env: GUR_LOG_TIMESTAMPS)")

	rootCmd.AddCommand(NewSetNewCmd(cfg))
	rootCmd.AddCommand(NewChverCmd(cfg))
	rootCmd.AddCommand(NewUpdateCmd(cfg))
	rootCmd.AddCommand(templatecmd.NewTemplateCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration, sets up logging and fills cfg.
func initializeGlobals(c *cobra.Command, cfg *config.GlobalConfig, flags *rootFlags) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	loader := config.NewLoader()
	loaded, loadErr := loader.Load(pathResult.ConfigPath)
	if loadErr != nil {
		// Commands still run on defaults and environment; `gur config init
		// --force` must work against a broken file.
		loader = config.NewLoader()
		loaded = config.DefaultConfig()
	}

	var timestampsFlag *bool
	if c.Flags().Changed("timestamps") {
		timestampsFlag = output.BoolPtr(flags.timestamps)
	}
	timestamps, timestampsResolved := loader.ResolveTimestamps(timestampsFlag)

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(timestamps),
		Writer:     c.ErrOrStderr(),
	})

	if loadErr != nil {
		output.Warn("ignoring configuration file", "path", pathResult.ConfigPath, "error", loadErr)
	}

	cfg.Config = loaded
	cfg.Loader = loader
	cfg.ConfigPath = pathResult.ConfigPath
	cfg.ConfigSource = pathResult.Source
	cfg.Verbose = flags.verbose

	config.LogResolvedValues(
		config.ResolvedValue{Key: "config", Value: pathResult.ConfigPath, Source: pathResult.Source},
		timestampsResolved,
	)
	return nil
}
