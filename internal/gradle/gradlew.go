package gradle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/output"
)

// outputTailLines is how many trailing output lines a failure report keeps.
const outputTailLines = 20

// ProcessError reports an unsuccessful wrapper task run.
type ProcessError struct {
	// Command is the executed command line.
	Command string

	// Code is the exit code; -1 when the process was killed by a signal.
	Code int

	// Signaled is true when the process terminated due to a signal.
	Signaled bool

	// State is the OS description of the termination, e.g. "signal: killed".
	State string

	// Output is the tail of the combined stdout/stderr.
	Output string
}

func (e *ProcessError) Error() string {
	var msg string
	if e.Signaled {
		msg = fmt.Sprintf("%s was terminated by a signal (%s)", e.Command, e.State)
	} else {
		msg = fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
	}
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

// Unwrap ties every process failure to the ErrProcess sentinel.
func (e *ProcessError) Unwrap() error {
	return oerrors.ErrProcess
}

// Runner runs Gradle tasks inside a project directory.
type Runner struct {
	// Command overrides the wrapper script. Empty means auto-detect.
	Command string
}

// WrapperScriptName returns the platform wrapper script name.
func WrapperScriptName() string {
	if runtime.GOOS == "windows" {
		return "gradlew.bat"
	}
	return "gradlew"
}

// ResolveCommand returns the executable used for projectDir: the configured
// override, the project's wrapper script, or gradle from PATH.
func (r *Runner) ResolveCommand(projectDir string) (string, error) {
	if r.Command != "" {
		return r.Command, nil
	}

	script := filepath.Join(projectDir, WrapperScriptName())
	if info, err := os.Stat(script); err == nil && !info.IsDir() {
		return filepath.Abs(script)
	}

	path, err := exec.LookPath("gradle")
	if err != nil {
		return "", fmt.Errorf("no %s in %s and no gradle on PATH: %w", WrapperScriptName(), projectDir, oerrors.ErrProcess)
	}
	return path, nil
}

// Run executes the Gradle command with args in projectDir and blocks until it exits.
func (r *Runner) Run(ctx context.Context, projectDir string, args ...string) error {
	command, err := r.ResolveCommand(projectDir)
	if err != nil {
		return err
	}

	cmdline := strings.Join(append([]string{filepath.Base(command)}, args...), " ")
	output.Debug("running gradle", "command", cmdline, "dir", projectDir)

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = projectDir
	cmd.Env = os.Environ()

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawning %s: %w: %w", cmdline, oerrors.ErrProcess, err)
	}

	err = cmd.Wait()
	output.Debug("gradle finished", "command", cmdline, "output", strings.TrimSpace(out.String()))
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("waiting for %s: %w: %w", cmdline, oerrors.ErrProcess, err)
	}

	code := exitErr.ExitCode()
	return &ProcessError{
		Command:  cmdline,
		Code:     code,
		Signaled: code == -1,
		State:    exitErr.ProcessState.String(),
		Output:   tail(out.String(), outputTailLines),
	}
}

// RunWrapperTask runs `wrapper --gradle-version <version>` in projectDir.
func (r *Runner) RunWrapperTask(ctx context.Context, projectDir, version string) error {
	return r.Run(ctx, projectDir, "wrapper", "--gradle-version", version)
}

// tail returns the last n non-empty lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ChangeVersionOptions configures ChangeVersion.
type ChangeVersionOptions struct {
	// ProjectDir is the root of the Gradle project.
	ProjectDir string

	// Version is the target wrapper version.
	Version string

	// Yolo writes the wrapper properties before running the wrapper task so
	// the old distribution is never downloaded.
	Yolo bool
}

// ChangeVersion switches the project's wrapper to opts.Version.
func (r *Runner) ChangeVersion(ctx context.Context, opts ChangeVersionOptions) error {
	if opts.Yolo {
		path := WrapperPropertiesFile(opts.ProjectDir)
		if err := WriteWrapperProperties(path, opts.Version); err != nil {
			return err
		}
		output.Debug("wrapper properties written ahead of wrapper task", "path", path, "version", opts.Version)
	}

	return output.RunWithSpinner(ctx, "Running gradle wrapper --gradle-version "+opts.Version, func(ctx context.Context) error {
		return r.RunWrapperTask(ctx, opts.ProjectDir, opts.Version)
	})
}
