package templates

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/output"
)

// Generator instantiates templates from a Registry.
type Generator struct {
	registry *Registry
}

// NewGenerator creates a generator resolving names through registry.
func NewGenerator(registry *Registry) *Generator {
	return &Generator{registry: registry}
}

// Generate creates a project from the template called name. Files written
// before a failure are left in place.
func (g *Generator) Generate(name string, opts GenerateOptions) (*GenerateResult, error) {
	if err := checkOutput(opts.Output, opts.AllowExists); err != nil {
		return nil, err
	}

	tmpl, err := g.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	args, err := ResolveArgs(tmpl, opts.Defines, opts.Prompter)
	if err != nil {
		return nil, err
	}

	output.Debug("generating project",
		"template", tmpl.Name,
		"source", tmpl.Source,
		"output", opts.Output)

	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &GenerateResult{
		Template: tmpl.Name,
		Output:   opts.Output,
		Args:     args,
	}

	for _, shared := range tmpl.Shared {
		if err := os.WriteFile(filepath.Join(opts.Output, shared.Name), shared.Data, 0o644); err != nil {
			return nil, fmt.Errorf("writing shared file %s: %w", shared.Name, err)
		}
		output.Debug("copied shared file", "path", shared.Name)
		result.Written = append(result.Written, shared.Name)
	}

	for _, f := range tmpl.Files {
		rel, err := f.Path.Render(args)
		if err != nil {
			return nil, err
		}
		target := filepath.Join(opts.Output, filepath.FromSlash(rel))

		dir := filepath.Dir(target)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}

		if !opts.Overwrite {
			if _, err := os.Stat(target); err == nil {
				output.Warn(fmt.Sprintf("file %s already exists, skipped", target))
				result.Skipped = append(result.Skipped, rel)
				continue
			}
		}

		content, err := f.Content.Render(args)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}

		output.Debug("created file", "path", rel)
		result.Written = append(result.Written, rel)
	}

	return result, nil
}

// checkOutput validates the output path. Without allowExists any existing
// path is rejected; with it only an existing regular file is.
func checkOutput(path string, allowExists bool) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output directory: %w", err)
	}

	if !allowExists {
		return oerrors.NewValidationError("output directory already exists", path,
			"use --allow-exists to generate into an existing directory")
	}
	if info.Mode().IsRegular() {
		return oerrors.NewValidationError("output path is a file", path, "")
	}
	return nil
}
