// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of dir/name, failing the test if it is missing.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read file %s: %v", name, err)
	}
	return string(data)
}

// FakeGradlew writes an executable gradlew shell script running body into
// dir. Tests using it are skipped on Windows.
func FakeGradlew(t *testing.T, dir, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script wrapper fake requires a POSIX shell")
	}
	path := filepath.Join(dir, "gradlew")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake gradlew: %v", err)
	}
	return path
}

// WrapperProperties is the wrapper properties file Gradle 7.4.2 generates.
const WrapperProperties = `distributionBase=GRADLE_USER_HOME
distributionPath=wrapper/dists
distributionUrl=https\://services.gradle.org/distributions/gradle-7.4.2-bin.zip
zipStoreBase=GRADLE_USER_HOME
zipStorePath=wrapper/dists
`

// GradleProject creates a project directory holding a build script and the
// WrapperProperties fixture, and returns its path.
func GradleProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "build.gradle.kts", "plugins { java }\n")
	WriteFile(t, dir, filepath.Join("gradle", "wrapper", "gradle-wrapper.properties"), WrapperProperties)
	return dir
}

// IsolateHome points HOME and the gur environment at a fresh temporary
// directory so tests never read the developer's configuration.
func IsolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{
		"GUR_CONFIG",
		"GUR_TEMPLATES_PATH",
		"GUR_WATCH_DURATION",
		"GUR_LOG_TIMESTAMPS",
		"GUR_GRADLE_WRAPPER_COMMAND",
	} {
		// Setenv registers the restore; the variable itself must be absent.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}
