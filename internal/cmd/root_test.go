package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradle-util/gur/internal/testutil"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "gur", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, name := range []string{"config", "verbose", "timestamps"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"set-new", "chver", "update", "template", "config", "version"}, names)
}

func TestRootCmd_ConfigFlag(t *testing.T) {
	testutil.IsolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	stdout, _, err := execute(t, NewRootCmd(), "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
}

func TestRootCmd_ConfigEnv(t *testing.T) {
	testutil.IsolateHome(t)
	path := filepath.Join(t.TempDir(), "env.yaml")
	t.Setenv("GUR_CONFIG", path)

	stdout, _, err := execute(t, NewRootCmd(), "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
}

func TestRootCmd_BrokenConfigFallsBackToDefaults(t *testing.T) {
	testutil.IsolateHome(t)
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "watch:\n  duration: -1s\n")

	_, logs, err := execute(t, NewRootCmd(), "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, logs, "ignoring configuration file")
}

func TestRootCmd_VerboseLogsResolution(t *testing.T) {
	testutil.IsolateHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, logs, err := execute(t, NewRootCmd(), "-v", "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, logs, "config value resolved")
	assert.Contains(t, logs, "source=flag")
}
