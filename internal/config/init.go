package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	oerrors "github.com/gradle-util/gur/internal/errors"
)

const configHeader = `# gur configuration.
# Values can be overridden by GUR_* environment variables and command-line flags.
`

// document is the YAML shape of Config. Durations are written in
// time.ParseDuration syntax.
type document struct {
	TemplatesPath []string `yaml:"templatesPath"`
	Watch         struct {
		Duration string `yaml:"duration"`
	} `yaml:"watch"`
	Log    LogConfig    `yaml:"log"`
	Gradle GradleConfig `yaml:"gradle"`
}

func toDocument(cfg *Config) document {
	doc := document{
		TemplatesPath: cfg.TemplatesPath,
		Log:           cfg.Log,
		Gradle:        cfg.Gradle,
	}
	doc.Watch.Duration = cfg.Watch.Duration.String()
	return doc
}

// RenderDefault returns the YAML document written by `gur config init`.
func RenderDefault() ([]byte, error) {
	data, err := yaml.Marshal(toDocument(DefaultConfig()))
	if err != nil {
		return nil, fmt.Errorf("rendering default config: %w", err)
	}
	return append([]byte(configHeader), data...), nil
}

// WriteDefault writes the default config to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	if !force {
		if _, err := os.Stat(expanded); err == nil {
			return oerrors.NewValidationError("config file already exists", expanded, "use --force to overwrite")
		}
	}

	data, err := RenderDefault()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(expanded, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
