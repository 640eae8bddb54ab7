package cmdutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/output"
)

// Fail logs err once under msg and returns an ExitError carrying the exit
// code derived from err, marked as printed so main stays quiet.
func Fail(msg string, err error) error {
	output.Error(msg, "error", err)
	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}

// WriteStructured prints v to stdout as YAML or JSON.
func WriteStructured(format output.OutputFormat, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case output.FormatYAML:
		data, err = yaml.Marshal(v)
	case output.FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	default:
		return fmt.Errorf("format %s is not structured", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling %s output: %w", format, err)
	}
	output.Println(strings.TrimRight(string(data), "\n"))
	return nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
