package config

// GlobalConfig carries the state resolved by the root command before any
// subcommand runs. Commands receive it by pointer at construction time and
// read it in RunE, after PersistentPreRunE has populated it.
type GlobalConfig struct {
	// Config is the loaded configuration. Never nil once initialized.
	Config *Config

	// Loader resolves per-key precedence for flags that override config.
	Loader *Loader

	// ConfigPath is the resolved config file path, whether or not it exists.
	ConfigPath string

	// ConfigSource records where ConfigPath came from.
	ConfigSource ConfigSource

	// Verbose mirrors the --verbose flag.
	Verbose bool
}

// Initialized reports whether the root command has populated g.
func (g *GlobalConfig) Initialized() bool {
	return g != nil && g.Config != nil && g.Loader != nil
}

// LoaderOrDefault returns g's loader, falling back to one carrying only
// defaults and environment bindings.
func (g *GlobalConfig) LoaderOrDefault() *Loader {
	if g != nil && g.Loader != nil {
		return g.Loader
	}
	return NewLoader()
}

// ConfigOrDefault returns g's config, falling back to DefaultConfig.
func (g *GlobalConfig) ConfigOrDefault() *Config {
	if g != nil && g.Config != nil {
		return g.Config
	}
	return DefaultConfig()
}
