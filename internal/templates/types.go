// Package templates resolves, lists and instantiates Gradle project templates.
package templates

// Source values for Template.Source.
const (
	SourceBuiltin = "builtin"
)

// ArgInfo describes one template argument.
type ArgInfo struct {
	// Description is shown by `template list` and interactive prompts.
	Description string `toml:"description" json:"description" yaml:"description"`

	// Default is used when the argument is not supplied. Nil means required.
	Default *string `toml:"default" json:"default,omitempty" yaml:"default,omitempty"`
}

// ArgSpec is a named argument in declaration order.
type ArgSpec struct {
	Name string
	ArgInfo
}

// File is one output file of a template. Both path and content may
// reference resolved arguments.
type File struct {
	Path    Content
	Content Content
}

// SharedFile is a static file bundled next to a file-based template.
type SharedFile struct {
	Name string
	Data []byte
}

// Template is a named set of output files plus the arguments they need.
type Template struct {
	// Name is the template identifier used by `template new`.
	Name string

	// Source is SourceBuiltin or the path of the definition file.
	Source string

	// TargetJvm is non-nil when the template takes a targetJvm argument.
	TargetJvm *ArgInfo

	// Args are the template's own arguments, in declaration order.
	Args []ArgSpec

	// Files are written in order.
	Files []File

	// Shared files are copied verbatim before Files are rendered.
	Shared []SharedFile
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// Output is the directory the project is generated in.
	Output string

	// Defines are the key=value overrides from the command line.
	Defines []Define

	// AllowExists accepts an existing output directory.
	AllowExists bool

	// Overwrite replaces files that already exist instead of skipping them.
	Overwrite bool

	// Prompter supplies missing values. Nil means NonInteractive.
	Prompter Prompter
}

// GenerateResult describes what Generate did.
type GenerateResult struct {
	// Template is the name of the template used.
	Template string

	// Output is the generated project directory.
	Output string

	// Written lists files written, relative to Output.
	Written []string

	// Skipped lists existing files left untouched, relative to Output.
	Skipped []string

	// Args are the resolved argument values.
	Args Args
}
