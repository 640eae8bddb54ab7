package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/cmdutil"
	"github.com/gradle-util/gur/internal/config"
	oerrors "github.com/gradle-util/gur/internal/errors"
	"github.com/gradle-util/gur/internal/output"
	"github.com/gradle-util/gur/internal/templates"
)

type captureFlags struct {
	output string
	force  bool
}

// NewCaptureCmd creates the template capture command.
func NewCaptureCmd(_ *config.GlobalConfig) *cobra.Command {
	var flags captureFlags

	c := &cobra.Command{
		Use:   "capture <dir>",
		Short: "Turn an existing project into a template definition",
		Long: `Turn an existing project into a template definition.

Every UTF-8 text file below <dir> becomes a file entry; build output and tool
directories (.git, .gradle, .idea, build, out) are ignored. Literal "$(" is
escaped so the generated project reproduces the files verbatim. Replace the
concrete values with $(name) placeholders and declare them under [args] to
make the template reusable.

The definition is printed to stdout unless --output is given. Save it as
~/.gur/templates/<name>.toml to make it available to "gur template new".`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCapture(args, &flags)
		},
	}

	c.Flags().StringVarP(&flags.output, "output", "o", "", "Write the definition to this file instead of stdout")
	c.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing output file")

	return c
}

func runCapture(args []string, flags *captureFlags) error {
	result, err := templates.Capture(args[0])
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = oerrors.NewNotFoundError(err.Error(), args[0], "")
		}
		return cmdutil.Fail("capturing template failed", err)
	}

	for _, p := range result.Skipped {
		output.Warn("skipped non-text file", "path", p)
	}

	if flags.output == "" {
		output.Print(string(result.Definition))
		return nil
	}

	if !flags.force {
		if _, err := os.Stat(flags.output); err == nil {
			return cmdutil.Fail("capturing template failed",
				oerrors.NewValidationError("output file already exists", flags.output, "use --force to overwrite"))
		}
	}
	if err := os.MkdirAll(filepath.Dir(flags.output), 0o755); err != nil {
		return cmdutil.Fail("capturing template failed", fmt.Errorf("creating output directory: %w", err))
	}
	if err := os.WriteFile(flags.output, result.Definition, 0o644); err != nil {
		return cmdutil.Fail("capturing template failed", fmt.Errorf("writing template definition: %w", err))
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("captured %d files into %s",
		len(result.Files), output.FormatNoun(flags.output))))
	return nil
}
