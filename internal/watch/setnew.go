package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gradle-util/gur/internal/gradle"
)

// DefaultMarkers are the file names that identify a Gradle project root.
var DefaultMarkers = []string{"build.gradle", "build.gradle.kts", "gradle.properties"}

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = time.Second

// SetNewOptions configures SetNew.
type SetNewOptions struct {
	// Roots are the directories watched recursively.
	Roots []string

	// Version is written into every detected project's wrapper properties.
	Version string

	// Debounce is the quiet period collapsing bursts of events.
	Debounce time.Duration

	// Markers overrides DefaultMarkers.
	Markers []string

	// Logger receives timestamped progress and failures.
	Logger *log.Logger
}

// IsProjectMarker reports whether path names one of markers.
func IsProjectMarker(path string, markers []string) bool {
	name := filepath.Base(path)
	for _, m := range markers {
		if name == m {
			return true
		}
	}
	return false
}

// Stamper writes wrapper properties for projects reported by a Watcher.
type Stamper struct {
	version string
	markers []string
	log     *log.Logger
}

// NewStamper creates a Stamper. Nil markers means DefaultMarkers.
func NewStamper(version string, markers []string, logger *log.Logger) *Stamper {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return &Stamper{version: version, markers: markers, log: logger}
}

// Handle processes one watcher event. A project is stamped once per event
// even when several of its marker files were created together. Failures are
// logged and never returned; the watch loop keeps running.
func (s *Stamper) Handle(ev Event) {
	if ev.Err != nil {
		s.log.Error("error while watching directories", "err", ev.Err)
		return
	}

	seen := make(map[string]struct{})
	for _, p := range ev.Paths {
		if !IsProjectMarker(p, s.markers) {
			continue
		}
		projectDir := filepath.Dir(p)
		if _, ok := seen[projectDir]; ok {
			continue
		}
		seen[projectDir] = struct{}{}
		s.stamp(projectDir)
	}
}

func (s *Stamper) stamp(projectDir string) {
	s.log.Info("new gradle project detected", "path", projectDir)

	path := gradle.WrapperPropertiesFile(projectDir)
	if err := gradle.WriteWrapperProperties(path, s.version); err != nil {
		s.log.Error("failed to write file", "path", path, "err", err)
		return
	}
	s.log.Info("gradle wrapper version set", "path", path, "version", s.version)
}

// SetNew watches opts.Roots and stamps every new Gradle project until ctx
// is cancelled or the watcher backend shuts down.
func SetNew(ctx context.Context, opts SetNewOptions) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := New(debounce)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, root := range opts.Roots {
		if err := w.AddRecursive(root); err != nil {
			return fmt.Errorf("unable to watch %s: %w", root, err)
		}
	}

	stamper := NewStamper(opts.Version, opts.Markers, opts.Logger)
	opts.Logger.Info("watching for new gradle projects", "dirs", opts.Roots, "version", opts.Version, "debounce", debounce)

	go w.Run(ctx)

	// Events is closed once the backend stops or ctx is cancelled.
	for ev := range w.Events() {
		stamper.Handle(ev)
	}

	opts.Logger.Info("watcher stopped")
	return nil
}
