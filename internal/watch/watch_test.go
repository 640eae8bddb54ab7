package watch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradle-util/gur/internal/gradle"
)

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{ReportTimestamp: true})
}

func TestIsProjectMarker(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/p/build.gradle", true},
		{"/p/build.gradle.kts", true},
		{"/p/gradle.properties", true},
		{"/p/settings.gradle.kts", false},
		{"/p/build.gradle.kts.bak", false},
		{"/build.gradle/readme.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsProjectMarker(tt.path, DefaultMarkers))
		})
	}
}

func TestStamperHandle_WritesWrapperProperties(t *testing.T) {
	project := t.TempDir()
	marker := filepath.Join(project, "build.gradle.kts")
	require.NoError(t, os.WriteFile(marker, nil, 0o644))

	var buf bytes.Buffer
	NewStamper("8.5", nil, testLogger(&buf)).Handle(Event{Paths: []string{marker}})

	content, err := os.ReadFile(gradle.WrapperPropertiesFile(project))
	require.NoError(t, err)
	assert.Equal(t, gradle.RenderWrapperProperties("8.5"), string(content))
	assert.Contains(t, buf.String(), "new gradle project detected")
}

func TestStamperHandle_StampsProjectOncePerEvent(t *testing.T) {
	project := t.TempDir()
	other := t.TempDir()
	paths := []string{
		filepath.Join(project, "build.gradle"),
		filepath.Join(project, "gradle.properties"),
		filepath.Join(project, "src", "Main.kt"),
		filepath.Join(other, "build.gradle.kts"),
	}

	var buf bytes.Buffer
	NewStamper("8.5", nil, testLogger(&buf)).Handle(Event{Paths: paths})

	assert.Equal(t, 2, strings.Count(buf.String(), "new gradle project detected"))
	assert.Equal(t, 2, strings.Count(buf.String(), "gradle wrapper version set"))
	assert.FileExists(t, gradle.WrapperPropertiesFile(project))
	assert.FileExists(t, gradle.WrapperPropertiesFile(other))
}

func TestStamperHandle_IgnoresOtherFiles(t *testing.T) {
	project := t.TempDir()
	var buf bytes.Buffer
	NewStamper("8.5", nil, testLogger(&buf)).Handle(Event{Paths: []string{filepath.Join(project, "README.md")}})

	assert.NoFileExists(t, gradle.WrapperPropertiesFile(project))
	assert.Empty(t, buf.String())
}

func TestStamperHandle_LogsWriteFailure(t *testing.T) {
	project := t.TempDir()
	// A file named "gradle" blocks creation of gradle/wrapper.
	require.NoError(t, os.WriteFile(filepath.Join(project, "gradle"), []byte("x"), 0o644))

	var buf bytes.Buffer
	NewStamper("8.5", nil, testLogger(&buf)).Handle(Event{Paths: []string{filepath.Join(project, "build.gradle")}})

	assert.Contains(t, buf.String(), "failed to write file")
}

func TestStamperHandle_LogsBackendError(t *testing.T) {
	var buf bytes.Buffer
	NewStamper("8.5", nil, testLogger(&buf)).Handle(Event{Err: errors.New("queue overflow")})
	assert.Contains(t, buf.String(), "error while watching directories")
	assert.Contains(t, buf.String(), "queue overflow")
}

// waitForFile polls until path exists or the deadline passes.
func waitForFile(t *testing.T, path string, timeout time.Duration) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func TestSetNew_DetectsNewProject(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- SetNew(ctx, SetNewOptions{
			Roots:    []string{root},
			Version:  "8.5",
			Debounce: 50 * time.Millisecond,
			Logger:   testLogger(&buf),
		})
	}()

	// Give the watcher time to register the root.
	time.Sleep(100 * time.Millisecond)

	project := filepath.Join(root, "nested", "demo")
	require.NoError(t, os.MkdirAll(project, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "build.gradle.kts"), []byte("plugins {}\n"), 0o644))

	assert.True(t, waitForFile(t, gradle.WrapperPropertiesFile(project), 5*time.Second),
		"wrapper properties should be written for the new project")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("SetNew did not return after cancellation")
	}
}

func TestSetNew_StampsProjectOnceForSeveralMarkers(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- SetNew(ctx, SetNewOptions{
			Roots:    []string{root},
			Version:  "8.5",
			Debounce: 300 * time.Millisecond,
			Logger:   testLogger(&buf),
		})
	}()

	time.Sleep(100 * time.Millisecond)

	project := filepath.Join(root, "demo")
	require.NoError(t, os.MkdirAll(project, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "build.gradle"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(project, "gradle.properties"), nil, 0o644))

	require.True(t, waitForFile(t, gradle.WrapperPropertiesFile(project), 5*time.Second))

	// Let the debounce window pass before stopping.
	time.Sleep(500 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("SetNew did not return after cancellation")
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "new gradle project detected"))
}

func TestSetNew_MissingRoot(t *testing.T) {
	err := SetNew(context.Background(), SetNewOptions{
		Roots:   []string{filepath.Join(t.TempDir(), "missing")},
		Version: "8.5",
		Logger:  testLogger(&bytes.Buffer{}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to watch")
}

func TestWatcher_CollapsesBurst(t *testing.T) {
	root := t.TempDir()
	w, err := New(100 * time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.AddRecursive(root))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for _, name := range []string{"a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0o644))
	}

	var got []string
	select {
	case ev := <-w.Events():
		require.NoError(t, ev.Err)
		for _, p := range ev.Paths {
			got = append(got, filepath.Base(p))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event received")
	}
	assert.Equal(t, []string{"a.txt", "b.txt"}, got)

	require.NoError(t, w.Close())
	_, open := <-w.Events()
	assert.False(t, open, "events should close once the backend stops")
}
