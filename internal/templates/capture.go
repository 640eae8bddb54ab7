package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/gradle-util/gur/internal/output"
)

// captureSkipDirs are never captured.
var captureSkipDirs = map[string]struct{}{
	".git":    {},
	".gradle": {},
	".idea":   {},
	"build":   {},
	"out":     {},
}

type capturedFile struct {
	Path    string `toml:"path"`
	Content string `toml:"content"`
}

type capturedTemplate struct {
	Args  map[string]ArgInfo `toml:"args,omitempty"`
	Files []capturedFile     `toml:"files"`
}

// CaptureResult is a definition produced by Capture.
type CaptureResult struct {
	// Definition is the TOML document.
	Definition []byte

	// Files lists captured paths, slash separated.
	Files []string

	// Skipped lists files left out because they are not UTF-8 text.
	Skipped []string
}

// Capture walks dir and builds a template definition reproducing its text
// files. Literal "$(" sequences are escaped so the output renders verbatim.
// Build output and tool directories are ignored.
func Capture(dir string) (*CaptureResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("capturing %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("capturing %s: not a directory", dir)
	}

	var def capturedTemplate
	result := &CaptureResult{}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			output.Warn("skipping unreadable path", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			if _, skip := captureSkipDirs[d.Name()]; skip && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		data, err := os.ReadFile(path)
		if err != nil {
			output.Warn("could not read file", "path", path, "err", err)
			return nil
		}
		if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
			result.Skipped = append(result.Skipped, rel)
			return nil
		}

		def.Files = append(def.Files, capturedFile{
			Path:    EscapeDollar(rel),
			Content: EscapeDollar(string(data)),
		})
		result.Files = append(result.Files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(def); err != nil {
		return nil, fmt.Errorf("encoding template: %w", err)
	}
	result.Definition = buf.Bytes()
	return result, nil
}
