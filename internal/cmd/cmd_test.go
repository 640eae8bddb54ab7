package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/output"
)

// execute runs c with args, capturing stdout and log output.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var stdout, logs bytes.Buffer
	restore := output.SetStdout(&stdout)
	t.Cleanup(restore)
	output.SetupLogging(output.LogConfig{Writer: &logs, Timestamps: output.BoolPtr(false)})
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })

	c.SetOut(&stdout)
	c.SetErr(&logs)
	c.SetArgs(args)
	err := c.Execute()
	return stdout.String(), logs.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Printed)
	return exitErr.Code
}
