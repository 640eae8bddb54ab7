package config

import (
	"os"
	"time"

	"github.com/gradle-util/gur/internal/output"
	"github.com/gradle-util/gur/internal/templates"
)

// EnvTemplatesPath lists extra template roots separated by the OS list separator.
const EnvTemplatesPath = "GUR_TEMPLATES_PATH"

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) GUR_CONFIG env, (3) ~/.gur/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveTimestamps resolves log.timestamps: flag > env > config > default.
// A nil flag means the flag was not given.
func (l *Loader) ResolveTimestamps(flag *bool) (bool, ResolvedValue) {
	if flag != nil {
		return *flag, ResolvedValue{Key: KeyLogTimestamps, Value: *flag, Source: SourceFlag}
	}
	v := l.v.GetBool(KeyLogTimestamps)
	return v, ResolvedValue{Key: KeyLogTimestamps, Value: v, Source: l.source(KeyLogTimestamps)}
}

// ResolveWatchDuration resolves watch.duration: flag > env > config > default.
func (l *Loader) ResolveWatchDuration(flag *time.Duration) (time.Duration, ResolvedValue) {
	if flag != nil {
		return *flag, ResolvedValue{Key: KeyWatchDuration, Value: *flag, Source: SourceFlag}
	}
	v := l.v.GetDuration(KeyWatchDuration)
	return v, ResolvedValue{Key: KeyWatchDuration, Value: v, Source: l.source(KeyWatchDuration)}
}

// ResolveWrapperCommand resolves gradle.wrapperCommand: flag > env > config.
// An empty result means the project's own wrapper script is used.
func (l *Loader) ResolveWrapperCommand(flag string) (string, ResolvedValue) {
	if flag != "" {
		return flag, ResolvedValue{Key: KeyGradleWrapperCommand, Value: flag, Source: SourceFlag}
	}
	v := l.v.GetString(KeyGradleWrapperCommand)
	return v, ResolvedValue{Key: KeyGradleWrapperCommand, Value: v, Source: l.source(KeyGradleWrapperCommand)}
}

// TemplateRoots returns the configured template roots followed by the ones
// listed in GUR_TEMPLATES_PATH, with ~ expanded.
func TemplateRoots(cfg *Config) []string {
	var roots []string
	add := func(p string) {
		if p == "" {
			return
		}
		if expanded, err := ExpandPath(p); err == nil {
			p = expanded
		}
		roots = append(roots, p)
	}

	for _, p := range cfg.TemplatesPath {
		add(p)
	}
	for _, p := range templates.SplitRootList(os.Getenv(EnvTemplatesPath)) {
		add(p)
	}
	return roots
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
	}
}
