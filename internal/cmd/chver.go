package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/cmdutil"
	"github.com/gradle-util/gur/internal/config"
	"github.com/gradle-util/gur/internal/gradle"
	"github.com/gradle-util/gur/internal/output"
)

// chverFlags holds the flags of the chver command.
type chverFlags struct {
	project cmdutil.ProjectFlags
	gradle  cmdutil.GradleFlags
	yolo    bool
}

// NewChverCmd creates the chver command.
func NewChverCmd(cfg *config.GlobalConfig) *cobra.Command {
	var flags chverFlags

	c := &cobra.Command{
		Use:   "chver <version>",
		Short: "Change the Gradle wrapper version of a project",
		Long: `Change the Gradle wrapper version of a project by running
"gradlew wrapper --gradle-version <version>" in the project directory.

With --yolo the wrapper properties are rewritten first, so the wrapper task
runs on the new distribution and the old one is never downloaded.`,
		Example: `  # Upgrade the project in the current directory
  gur chver 8.5

  # Skip downloading the old distribution
  gur chver 8.5 --project-dir ./service --yolo`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runChver(c, args, cfg, &flags)
		},
	}

	flags.project.AddTo(c)
	flags.gradle.AddTo(c)
	c.Flags().BoolVar(&flags.yolo, "yolo", false,
		"Write the new version into the wrapper properties before running the wrapper task")

	return c
}

func runChver(c *cobra.Command, args []string, cfg *config.GlobalConfig, flags *chverFlags) error {
	version := args[0]
	if err := gradle.CheckDistributionVersion(version); err != nil {
		return cmdutil.Fail("chver failed", err)
	}

	command, resolved := cfg.LoaderOrDefault().ResolveWrapperCommand(flags.gradle.WrapperCommand)
	config.LogResolvedValues(resolved)

	ctx, stop := cmdutil.SignalContext(c.Context())
	defer stop()

	runner := &gradle.Runner{Command: command}
	err := runner.ChangeVersion(ctx, gradle.ChangeVersionOptions{
		ProjectDir: flags.project.ProjectDir,
		Version:    version,
		Yolo:       flags.yolo,
	})
	if err != nil {
		return cmdutil.Fail("changing gradle version failed", err)
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("gradle wrapper set to %s", output.FormatNoun(version))))
	return nil
}
