package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/cmdutil"
	"github.com/gradle-util/gur/internal/config"
	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/gradle"
	"github.com/gradle-util/gur/internal/output"
)

// updateFlags holds the flags of the update command.
type updateFlags struct {
	project  cmdutil.ProjectFlags
	versions []string
}

// NewUpdateCmd creates the update command.
func NewUpdateCmd(_ *config.GlobalConfig) *cobra.Command {
	var flags updateFlags

	c := &cobra.Command{
		Use:   "update --version <version>...",
		Short: "Bump the wrapper distribution URL to the newest matching version",
		Long: `Rewrite the distributionUrl of gradle/wrapper/gradle-wrapper.properties.

Every --version is a candidate. The current version is replaced by the first
candidate on the same major.minor line with a newer patch; a version without
a patch component is pinned to the first candidate on its line. Other lines
are never touched. The file is rewritten even when nothing matches.`,
		Example: `  # Keep 7.4 and 8.5 projects on their latest patches
  gur update --version 7.4.2 --version 8.5.1`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runUpdate(&flags)
		},
	}

	flags.project.AddTo(c)
	c.Flags().StringArrayVar(&flags.versions, "version", nil, "Candidate gradle version (can be repeated)")
	_ = c.MarkFlagRequired("version")

	return c
}

func runUpdate(flags *updateFlags) error {
	candidates, err := gradle.ParseVersions(flags.versions)
	if err != nil {
		return cmdutil.Fail("update failed",
			oerrors.NewValidationError(err.Error(), "--version", "use a version like 8.5 or 7.6.1"))
	}

	path := gradle.WrapperPropertiesFile(flags.project.ProjectDir)
	result, err := gradle.UpdateWrapperProperties(path, candidates)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = oerrors.NewNotFoundError("gradle wrapper properties file not found", path,
				"run `gur chver` or the gradle wrapper task first")
		}
		return cmdutil.Fail("update failed", err)
	}

	if result.Changed {
		output.Println(output.FormatCheckmark(fmt.Sprintf("updated %s", output.FormatNoun(result.Path))))
	} else {
		output.Println(fmt.Sprintf("%s already up to date", result.Path))
	}
	return nil
}
