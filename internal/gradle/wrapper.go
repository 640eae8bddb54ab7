package gradle

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	oerrors "github.com/gradle-util/gur/internal/errors"
)

// Wrapper properties file locations relative to a project root.
const (
	WrapperPropertiesFilename = "gradle-wrapper.properties"
	WrapperPropertiesDir      = "gradle/wrapper"
	WrapperPropertiesPath     = WrapperPropertiesDir + "/" + WrapperPropertiesFilename
)

// CheckDistributionVersion validates a version that is written into a
// distribution URL or handed to the wrapper task. The text is opaque: release
// candidates and milestones such as 8.10-rc-1 are accepted as given. Only
// empty text and characters that would break the URL are rejected.
func CheckDistributionVersion(version string) error {
	if version == "" {
		return oerrors.NewValidationError("gradle version must not be empty", "", "pass a version like 8.5 or 8.10-rc-1")
	}
	for _, r := range version {
		if unicode.IsSpace(r) || r == '/' || r == '\\' {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid gradle version %q: unexpected character %q", version, r),
				"", "pass a version like 8.5 or 8.10-rc-1")
		}
	}
	return nil
}

// RenderWrapperProperties returns the canonical wrapper properties content
// pinning the given distribution version.
func RenderWrapperProperties(version string) string {
	return fmt.Sprintf(`distributionBase=GRADLE_USER_HOME
distributionPath=wrapper/dists
distributionUrl=https\://services.gradle.org/distributions/gradle-%s-bin.zip
zipStoreBase=GRADLE_USER_HOME
zipStorePath=wrapper/dists`, version)
}

// WrapperPropertiesFile returns the wrapper properties path of a project.
func WrapperPropertiesFile(projectDir string) string {
	return filepath.Join(projectDir, filepath.FromSlash(WrapperPropertiesPath))
}

// WriteWrapperProperties creates the parent directories of path and
// overwrites path with the rendered properties. The file is owned by the
// wrapper mechanism, so unrelated keys are not preserved.
func WriteWrapperProperties(path, version string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(RenderWrapperProperties(version)), 0o644); err != nil {
		return fmt.Errorf("writing gradle wrapper properties file %s: %w", path, err)
	}
	return nil
}
