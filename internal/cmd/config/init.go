package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/cmdutil"
	"github.com/gradle-util/gur/internal/config"
	"github.com/gradle-util/gur/internal/output"
)

func newInitCmd(cfg *config.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new gur configuration file",
		Long: `Create a new gur configuration file with default values.

The configuration file is created at ~/.gur/config.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, _, err := configPath(cfg)
			if err != nil {
				return cmdutil.Fail("creating config failed", fmt.Errorf("getting config file path: %w", err))
			}
			if err := config.WriteDefault(path, force); err != nil {
				return cmdutil.Fail("creating config failed", err)
			}
			output.Println(output.FormatCheckmark(fmt.Sprintf("created %s", output.FormatNoun(path))))
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}
