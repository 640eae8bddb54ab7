package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/output"
	"github.com/gradle-util/gur/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var short bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show gur version information.

Displays:
  - gur version, commit, and build date
  - the gradle binary found on PATH, if any`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			if short {
				output.Println(info.Version)
				return nil
			}
			output.Println(version.FullVersionString(info, version.DetectGradleBinary(c.Context())))
			return nil
		},
	}

	c.Flags().BoolVar(&short, "short", false, "Print only the gur version")

	return c
}
