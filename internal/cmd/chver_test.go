package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradle-util/gur/internal/config"
	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/gradle"
	"github.com/gradle-util/gur/internal/testutil"
)

func TestNewChverCmd(t *testing.T) {
	cmd := NewChverCmd(&config.GlobalConfig{})

	assert.Equal(t, "chver <version>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"project-dir", "yolo", "gradle-command"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Nil(t, cmd.Flags().Lookup("verbose"), "--verbose comes from the root command")
}

func TestChverCmd_RunsWrapperTask(t *testing.T) {
	testutil.IsolateHome(t)
	project := testutil.GradleProject(t)
	testutil.FakeGradlew(t, project, `echo "$@" > args.txt`)

	stdout, _, err := execute(t, NewChverCmd(&config.GlobalConfig{}), "8.5", "--project-dir", project)
	require.NoError(t, err)

	assert.Equal(t, "wrapper --gradle-version 8.5\n", testutil.ReadFile(t, project, "args.txt"))
	assert.Contains(t, stdout, "gradle wrapper set to")
	assert.Equal(t, testutil.WrapperProperties, testutil.ReadFile(t, project, gradle.WrapperPropertiesPath),
		"without --yolo the wrapper task owns the properties file")
}

func TestChverCmd_ForwardsVersionVerbatim(t *testing.T) {
	testutil.IsolateHome(t)

	for _, version := range []string{"8.10-rc-1", "8.0-milestone-3", "8.05"} {
		t.Run(version, func(t *testing.T) {
			project := testutil.GradleProject(t)
			testutil.FakeGradlew(t, project, `echo "$@" > args.txt`)

			stdout, _, err := execute(t, NewChverCmd(&config.GlobalConfig{}), version, "--project-dir", project)
			require.NoError(t, err)

			assert.Equal(t, "wrapper --gradle-version "+version+"\n", testutil.ReadFile(t, project, "args.txt"))
			assert.Contains(t, stdout, version)
		})
	}
}

func TestChverCmd_YoloPreRelease(t *testing.T) {
	testutil.IsolateHome(t)
	project := testutil.GradleProject(t)
	testutil.FakeGradlew(t, project, "exit 0")

	_, _, err := execute(t, NewChverCmd(&config.GlobalConfig{}), "8.10-rc-1", "-p", project, "--yolo")
	require.NoError(t, err)

	assert.Contains(t, testutil.ReadFile(t, project, gradle.WrapperPropertiesPath), "gradle-8.10-rc-1-bin.zip")
}

func TestChverCmd_Yolo(t *testing.T) {
	testutil.IsolateHome(t)
	project := testutil.GradleProject(t)
	testutil.FakeGradlew(t, project, "cp gradle/wrapper/gradle-wrapper.properties seen.properties")

	_, _, err := execute(t, NewChverCmd(&config.GlobalConfig{}), "8.5", "-p", project, "--yolo")
	require.NoError(t, err)

	assert.Contains(t, testutil.ReadFile(t, project, "seen.properties"), "gradle-8.5-bin.zip")
}

func TestChverCmd_WrapperCommandFromEnv(t *testing.T) {
	testutil.IsolateHome(t)
	project := testutil.GradleProject(t)
	tools := t.TempDir()
	script := testutil.FakeGradlew(t, tools, `echo "$@" > custom.txt`)
	t.Setenv("GUR_GRADLE_WRAPPER_COMMAND", script)

	_, _, err := execute(t, NewChverCmd(&config.GlobalConfig{}), "8.6", "-p", project)
	require.NoError(t, err)

	assert.Equal(t, "wrapper --gradle-version 8.6\n", testutil.ReadFile(t, project, "custom.txt"))
}

func TestChverCmd_Errors(t *testing.T) {
	testutil.IsolateHome(t)

	t.Run("invalid version", func(t *testing.T) {
		_, logs, err := execute(t, NewChverCmd(&config.GlobalConfig{}), "8.5 final")
		assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
		assert.Contains(t, logs, "unexpected character")
	})

	t.Run("empty version", func(t *testing.T) {
		_, logs, err := execute(t, NewChverCmd(&config.GlobalConfig{}), "")
		assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
		assert.Contains(t, logs, "gradle version must not be empty")
	})

	t.Run("wrapper fails", func(t *testing.T) {
		project := testutil.GradleProject(t)
		testutil.FakeGradlew(t, project, "echo 'FAILURE: Build failed' >&2\nexit 3")

		_, logs, err := execute(t, NewChverCmd(&config.GlobalConfig{}), "8.5", "-p", project)
		assert.Equal(t, oerrors.ExitProcessError, exitCode(t, err))
		assert.Contains(t, logs, "changing gradle version failed")
	})

	t.Run("no wrapper and no gradle", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		project := filepath.Join(t.TempDir())

		_, _, err := execute(t, NewChverCmd(&config.GlobalConfig{}), "8.5", "-p", project)
		assert.Equal(t, oerrors.ExitProcessError, exitCode(t, err))
	})
}
