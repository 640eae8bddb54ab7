package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/cmdutil"
	"github.com/gradle-util/gur/internal/config"
	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/gradle"
	"github.com/gradle-util/gur/internal/output"
	"github.com/gradle-util/gur/internal/watch"
)

// NewSetNewCmd creates the set-new command.
func NewSetNewCmd(cfg *config.GlobalConfig) *cobra.Command {
	var duration time.Duration

	c := &cobra.Command{
		Use:   "set-new <version> <dir>...",
		Short: "Stamp a wrapper version into newly created Gradle projects",
		Long: `Watch directories recursively and write gradle/wrapper/gradle-wrapper.properties
pointing at <version> into every project that appears below them.

A project is detected when build.gradle, build.gradle.kts or gradle.properties
is created. Bursts of filesystem events are collapsed for --watch-duration
before projects are stamped. The command runs until interrupted.`,
		Example: `  # Pin every project created under ~/src to Gradle 8.5
  gur set-new 8.5 ~/src

  # Watch two roots with a shorter quiet period
  gur set-new 8.5 ~/src ~/scratch --watch-duration 250ms`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runSetNew(c, args, cfg, duration)
		},
	}

	c.Flags().DurationVar(&duration, "watch-duration", config.DefaultWatchDuration,
		"Quiet period collapsing bursts of filesystem events (env: GUR_WATCH_DURATION)")

	return c
}

func runSetNew(c *cobra.Command, args []string, cfg *config.GlobalConfig, duration time.Duration) error {
	version := args[0]
	if err := gradle.CheckDistributionVersion(version); err != nil {
		return cmdutil.Fail("set-new failed", err)
	}

	var durationFlag *time.Duration
	if c.Flags().Changed("watch-duration") {
		durationFlag = &duration
	}
	debounce, resolved := cfg.LoaderOrDefault().ResolveWatchDuration(durationFlag)
	config.LogResolvedValues(resolved)
	if debounce <= 0 {
		return cmdutil.Fail("set-new failed",
			oerrors.NewValidationError("watch duration must be positive", "--watch-duration", ""))
	}

	ctx, stop := cmdutil.SignalContext(c.Context())
	defer stop()

	err := watch.SetNew(ctx, watch.SetNewOptions{
		Roots:    args[1:],
		Version:  version,
		Debounce: debounce,
		Logger:   output.WatchLogger(),
	})
	if err != nil {
		return cmdutil.Fail("set-new failed", err)
	}
	return nil
}
