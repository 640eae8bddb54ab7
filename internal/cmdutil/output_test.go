package cmdutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/output"
)

func TestFail(t *testing.T) {
	var logBuf bytes.Buffer
	output.SetupLogging(output.LogConfig{Writer: &logBuf, Timestamps: output.BoolPtr(false)})
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", oerrors.NewValidationError("bad", "", ""), oerrors.ExitValidationError},
		{"template", oerrors.NewTemplateError("unknown argument in template: x", ""), oerrors.ExitValidationError},
		{"not found", oerrors.NewNotFoundError("template x not found", "", ""), oerrors.ExitNotFound},
		{"process", oerrors.Wrap(oerrors.ErrProcess, "gradlew exited"), oerrors.ExitProcessError},
		{"general", errors.New("boom"), oerrors.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuf.Reset()
			err := Fail("command failed", tt.err)

			var exitErr *oerrors.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.True(t, exitErr.Printed)
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, logBuf.String(), "command failed")
		})
	}
}

func TestWriteStructured(t *testing.T) {
	var buf bytes.Buffer
	restore := output.SetStdout(&buf)
	defer restore()

	v := map[string]string{"name": "kotlin-project"}

	require.NoError(t, WriteStructured(output.FormatYAML, v))
	assert.Equal(t, "name: kotlin-project\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteStructured(output.FormatJSON, v))
	assert.Equal(t, "{\n  \"name\": \"kotlin-project\"\n}\n", buf.String())

	assert.Error(t, WriteStructured(output.FormatText, v))
}
