package template

import (
	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/cmdutil"
	"github.com/gradle-util/gur/internal/config"
	"github.com/gradle-util/gur/internal/output"
	"github.com/gradle-util/gur/internal/templates"
)

// finishedMessage is printed after a project has been generated.
const finishedMessage = "Finished. Please execute `wrapper` gradle task either via gradle CLI or in your IDE."

// NewNewCmd creates the template new command.
func NewNewCmd(cfg *config.GlobalConfig) *cobra.Command {
	var flags cmdutil.TemplateNewFlags

	c := &cobra.Command{
		Use:   "new <template>",
		Short: "Generate a project from a template",
		Long: `Generate a project from a template.

Arguments are supplied with -D key=value. Missing arguments fall back to the
template's defaults; group, artifact and version are always required, and the
package defaults to a sanitized <group>.<artifact>. With --interactive every
argument is prompted for, offering the default as the suggested answer.

The output directory must not exist unless --allow-exists is given. Existing
files are skipped unless --overwrite is given.`,
		Example: `  # Generate a Kotlin project in ./demo
  gur template new kotlin-project -D group=org.example -D artifact=demo -D version=0.1.0

  # Prompt for every argument
  gur template new java-project -i -o ./service`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args, cfg, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runNew(c *cobra.Command, args []string, cfg *config.GlobalConfig, flags *cmdutil.TemplateNewFlags) error {
	defines, err := flags.ParseDefines()
	if err != nil {
		return cmdutil.Fail("generating project failed", err)
	}

	var prompter templates.Prompter = templates.NonInteractive{}
	if flags.Interactive {
		if !output.IsInputTTY() {
			output.Debug("interactive mode reading answers from non-terminal input")
		}
		prompter = templates.NewInteractive(c.InOrStdin(), c.OutOrStdout())
	}

	generator := templates.NewGenerator(newRegistry(cfg))
	result, err := generator.Generate(args[0], templates.GenerateOptions{
		Output:      flags.OutputDir(defines),
		Defines:     defines,
		AllowExists: flags.AllowExists,
		Overwrite:   flags.Overwrite,
		Prompter:    prompter,
	})
	if err != nil {
		return cmdutil.Fail("generating project failed", err)
	}

	files := make(map[string]string, len(result.Written)+len(result.Skipped))
	for _, p := range result.Written {
		files[p] = ""
	}
	for _, p := range result.Skipped {
		files[p] = output.StyleSkipped.Render("skipped")
	}

	output.Println(output.RenderFileTree(result.Output, files))
	output.Println(output.FormatCheckmark(finishedMessage))
	return nil
}
