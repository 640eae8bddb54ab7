package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"time"

	"github.com/gradle-util/gur/internal/gradle"
)

// gradleVersionRegex matches the banner line of `gradle --version`, e.g. "Gradle 8.5".
var gradleVersionRegex = regexp.MustCompile(`(?m)^Gradle (\d+\.\d+(?:\.\d+)?)`)

// detectTimeout bounds `gradle --version`, which may start a daemon.
const detectTimeout = 30 * time.Second

// GradleBinaryInfo describes the Gradle installation found on PATH.
type GradleBinaryInfo struct {
	// Version is the installed Gradle version.
	Version string `json:"version"`

	// Path is the path to the gradle binary.
	Path string `json:"path"`

	// Found indicates if a gradle binary was found.
	Found bool `json:"found"`

	// Message explains why no version could be determined.
	Message string `json:"message,omitempty"`
}

// DetectGradleBinary finds gradle on PATH and asks it for its version.
func DetectGradleBinary(ctx context.Context) GradleBinaryInfo {
	path, err := exec.LookPath("gradle")
	if err != nil {
		return GradleBinaryInfo{Message: "gradle binary not found in PATH"}
	}

	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--version", "--quiet")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return GradleBinaryInfo{Path: path, Found: true, Message: fmt.Sprintf("running gradle --version: %v", err)}
	}

	v, ok := ParseGradleVersionOutput(out.String())
	if !ok {
		return GradleBinaryInfo{Path: path, Found: true, Message: "unrecognised gradle --version output"}
	}
	return GradleBinaryInfo{Version: v.String(), Path: path, Found: true}
}

// ParseGradleVersionOutput extracts the version from `gradle --version` output.
func ParseGradleVersionOutput(output string) (gradle.Version, bool) {
	m := gradleVersionRegex.FindStringSubmatch(output)
	if m == nil {
		return gradle.Version{}, false
	}
	v, err := gradle.ParseVersion(m[1])
	if err != nil {
		return gradle.Version{}, false
	}
	return v, true
}

// String returns a human-readable Gradle binary info string.
func (g GradleBinaryInfo) String() string {
	if !g.Found {
		return "  Binary Version: not found\n  Binary Path:    -"
	}
	if g.Version == "" {
		return fmt.Sprintf("  Binary Version: unknown (%s)\n  Binary Path:    %s", g.Message, g.Path)
	}
	return fmt.Sprintf("  Binary Version: %s\n  Binary Path:    %s", g.Version, g.Path)
}
