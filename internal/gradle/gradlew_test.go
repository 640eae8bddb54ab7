package gradle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/testutil"
)

func TestRunWrapperTask_PassesArguments(t *testing.T) {
	project := t.TempDir()
	testutil.FakeGradlew(t, project, `echo "$@" > args.txt`)

	r := &Runner{}
	require.NoError(t, r.RunWrapperTask(context.Background(), project, "8.5"))

	args, err := os.ReadFile(filepath.Join(project, "args.txt"))
	require.NoError(t, err)
	assert.Equal(t, "wrapper --gradle-version 8.5\n", string(args))
}

func TestRunWrapperTask_NonZeroExit(t *testing.T) {
	project := t.TempDir()
	testutil.FakeGradlew(t, project, "echo 'FAILURE: Build failed' >&2\nexit 3")

	err := (&Runner{}).RunWrapperTask(context.Background(), project, "8.5")
	require.Error(t, err)

	var procErr *ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, 3, procErr.Code)
	assert.False(t, procErr.Signaled)
	assert.Contains(t, procErr.Output, "Build failed")
	assert.True(t, errors.Is(err, oerrors.ErrProcess))
	assert.Contains(t, err.Error(), "exited with code 3")
}

func TestRunWrapperTask_Signaled(t *testing.T) {
	project := t.TempDir()
	testutil.FakeGradlew(t, project, "kill -9 $$")

	err := (&Runner{}).RunWrapperTask(context.Background(), project, "8.5")
	require.Error(t, err)

	var procErr *ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.True(t, procErr.Signaled)
	assert.Equal(t, -1, procErr.Code)
	assert.Contains(t, err.Error(), "terminated by a signal")
}

func TestRun_SpawnFailure(t *testing.T) {
	r := &Runner{Command: filepath.Join(t.TempDir(), "does-not-exist")}
	err := r.Run(context.Background(), t.TempDir(), "tasks")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrProcess))
	assert.Contains(t, err.Error(), "spawning")
}

func TestResolveCommand_PrefersOverride(t *testing.T) {
	r := &Runner{Command: "/opt/gradle/bin/gradle"}
	got, err := r.ResolveCommand(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/opt/gradle/bin/gradle", got)
}

func TestResolveCommand_ProjectScript(t *testing.T) {
	project := t.TempDir()
	testutil.FakeGradlew(t, project, "exit 0")

	got, err := (&Runner{}).ResolveCommand(project)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, "gradlew"), got)
}

func TestChangeVersion_YoloWritesPropertiesFirst(t *testing.T) {
	project := t.TempDir()
	// The fake wrapper copies the properties it sees, proving they were written before it ran.
	testutil.FakeGradlew(t, project, "cp gradle/wrapper/gradle-wrapper.properties seen.properties")

	err := (&Runner{}).ChangeVersion(context.Background(), ChangeVersionOptions{
		ProjectDir: project,
		Version:    "8.5",
		Yolo:       true,
	})
	require.NoError(t, err)

	seen, err := os.ReadFile(filepath.Join(project, "seen.properties"))
	require.NoError(t, err)
	assert.Contains(t, string(seen), "gradle-8.5-bin.zip")
}

func TestChangeVersion_WithoutYoloLeavesProperties(t *testing.T) {
	project := t.TempDir()
	testutil.FakeGradlew(t, project, "exit 0")

	err := (&Runner{}).ChangeVersion(context.Background(), ChangeVersionOptions{
		ProjectDir: project,
		Version:    "8.5",
	})
	require.NoError(t, err)
	assert.NoFileExists(t, WrapperPropertiesFile(project))
}

func TestTail(t *testing.T) {
	assert.Equal(t, "c\nd", tail("a\nb\nc\nd\n", 2))
	assert.Equal(t, "a", tail("a\n", 5))
}
