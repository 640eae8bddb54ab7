// Package config provides the `gur config` command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage gur configuration",
		Long: `Manage gur configuration.

The configuration file is ~/.gur/config.yaml unless GUR_CONFIG or --config
names another one. Every value can be overridden by a GUR_* environment
variable, and command flags override both.`,
	}

	c.AddCommand(newInitCmd(cfg))
	c.AddCommand(newPathCmd(cfg))

	return c
}

// configPath returns the path resolved by the root command, or the default
// resolution when the command runs on its own.
func configPath(cfg *config.GlobalConfig) (string, config.ConfigSource, error) {
	if cfg != nil && cfg.ConfigPath != "" {
		return cfg.ConfigPath, cfg.ConfigSource, nil
	}
	result, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{})
	if err != nil {
		return "", "", err
	}
	return result.ConfigPath, result.Source, nil
}
