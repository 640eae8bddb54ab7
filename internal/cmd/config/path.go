package config

import (
	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/cmdutil"
	"github.com/gradle-util/gur/internal/config"
	"github.com/gradle-util/gur/internal/output"
)

func newPathCmd(cfg *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Long: `Print the configuration file path gur reads, whether or not it exists.
Use -v to see where the path was resolved from.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, source, err := configPath(cfg)
			if err != nil {
				return cmdutil.Fail("resolving config path failed", err)
			}
			exists, err := config.ConfigFileExists(path)
			if err != nil {
				return cmdutil.Fail("resolving config path failed", err)
			}
			output.Debug("config path", "source", source, "exists", exists)
			output.Println(path)
			return nil
		},
	}
}
