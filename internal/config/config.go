// Package config provides configuration loading and management.
package config

import "time"

// Configuration keys, as used in the config file.
const (
	KeyTemplatesPath        = "templatesPath"
	KeyWatchDuration        = "watch.duration"
	KeyLogTimestamps        = "log.timestamps"
	KeyGradleWrapperCommand = "gradle.wrapperCommand"
)

// DefaultWatchDuration is the default debounce of `gur set-new`.
const DefaultWatchDuration = time.Second

// WatchConfig contains settings of the new-project watcher.
type WatchConfig struct {
	// Duration is the debounce applied to filesystem events.
	// Env: GUR_WATCH_DURATION, Default: 1s
	Duration time.Duration `mapstructure:"duration"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// GradleConfig contains settings for running the build tool.
type GradleConfig struct {
	// WrapperCommand replaces the project's gradlew script.
	// Env: GUR_GRADLE_WRAPPER_COMMAND
	WrapperCommand string `mapstructure:"wrapperCommand" yaml:"wrapperCommand,omitempty"`
}

// Config represents the gur configuration, loaded from ~/.gur/config.yaml.
type Config struct {
	// TemplatesPath lists extra template roots, searched after the
	// installation and user roots and before GUR_TEMPLATES_PATH.
	TemplatesPath []string `mapstructure:"templatesPath"`

	// Watch contains watcher settings.
	Watch WatchConfig `mapstructure:"watch"`

	// Log contains logging settings.
	Log LogConfig `mapstructure:"log"`

	// Gradle contains build tool settings.
	Gradle GradleConfig `mapstructure:"gradle"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `gur config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		TemplatesPath: []string{},
		Watch:         WatchConfig{Duration: DefaultWatchDuration},
		Log:           LogConfig{Timestamps: &timestamps},
	}
}
