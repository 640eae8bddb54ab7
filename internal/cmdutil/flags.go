// Package cmdutil provides shared command utilities for gur subcommands.
// It centralizes flag group management, error reporting and structured
// output helpers.
package cmdutil

import (
	"github.com/spf13/cobra"

	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/output"
	"github.com/gradle-util/gur/internal/templates"
)

// ProjectFlags holds the flag selecting the Gradle project a command acts on
// (chver, update).
type ProjectFlags struct {
	ProjectDir string
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.ProjectDir, "project-dir", "p", ".",
		"Root directory of the Gradle project")
}

// GradleFlags holds flags controlling how the Gradle wrapper is invoked.
type GradleFlags struct {
	WrapperCommand string
}

// AddTo registers the gradle flags on the given cobra command.
func (f *GradleFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.WrapperCommand, "gradle-command", "",
		"Command used instead of the project's wrapper script (env: GUR_GRADLE_WRAPPER_COMMAND)")
}

// OutputFlags holds the output format flag of listing commands.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", "text",
		"Output format: text, yaml, json")
}

// Parse returns the selected format, or a validation error for unknown values.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format := output.ParseOutputFormat(f.Format)
	if !format.IsValid() {
		return "", oerrors.NewValidationError("invalid output format "+f.Format, "--output", "use text, yaml or json")
	}
	return format, nil
}

// TemplateNewFlags holds the flags of `gur template new`.
type TemplateNewFlags struct {
	Output      string
	Defines     []string
	Interactive bool
	AllowExists bool
	Overwrite   bool
}

// AddTo registers the generation flags on the given cobra command.
func (f *TemplateNewFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", "",
		"Directory to generate the project in (default: the -D artifact value)")
	cmd.Flags().StringArrayVarP(&f.Defines, "define", "D", nil,
		"Template argument as key=value (can be repeated)")
	cmd.Flags().BoolVarP(&f.Interactive, "interactive", "i", false,
		"Prompt for every argument, offering defaults")
	cmd.Flags().BoolVar(&f.AllowExists, "allow-exists", false,
		"Generate into an existing output directory")
	cmd.Flags().BoolVar(&f.Overwrite, "overwrite", false,
		"Replace files that already exist instead of skipping them")
}

// ParseDefines parses every -D value in order.
func (f *TemplateNewFlags) ParseDefines() ([]templates.Define, error) {
	defines := make([]templates.Define, 0, len(f.Defines))
	for _, raw := range f.Defines {
		d, err := templates.ParseDefine(raw)
		if err != nil {
			return nil, err
		}
		defines = append(defines, d)
	}
	return defines, nil
}

// OutputDir returns the explicit --output value, or the artifact given with
// -D artifact=..., or the current directory.
func (f *TemplateNewFlags) OutputDir(defines []templates.Define) string {
	if f.Output != "" {
		return f.Output
	}
	for _, d := range defines {
		if d.Key == templates.ArgArtifact && d.Value != "" {
			return d.Value
		}
	}
	return "."
}
