package config

import (
	"os"
	"path/filepath"
)

// EnvConfig overrides the config file location.
const EnvConfig = "GUR_CONFIG"

// Paths contains standard filesystem paths for gur.
type Paths struct {
	// ConfigFile is the path to the config file (~/.gur/config.yaml).
	ConfigFile string

	// TemplatesDir is the per-user template root (~/.gur/templates).
	TemplatesDir string

	// HomeDir is the gur home directory (~/.gur).
	HomeDir string
}

// DefaultPaths returns the default paths for gur.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	gurHome := filepath.Join(homeDir, ".gur")

	return &Paths{
		ConfigFile:   filepath.Join(gurHome, "config.yaml"),
		TemplatesDir: filepath.Join(gurHome, "templates"),
		HomeDir:      gurHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If GUR_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
