package template

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/cmdutil"
	"github.com/gradle-util/gur/internal/config"
	"github.com/gradle-util/gur/internal/output"
	"github.com/gradle-util/gur/internal/templates"
)

// templateView is the structured form of a template in list output.
type templateView struct {
	Name   string    `json:"name" yaml:"name"`
	Source string    `json:"source" yaml:"source"`
	Args   []argView `json:"args" yaml:"args"`
}

type argView struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Default     *string `json:"default,omitempty" yaml:"default,omitempty"`
}

func newTemplateView(t *templates.Template) templateView {
	specs := templates.ListArgs(t)
	view := templateView{Name: t.Name, Source: t.Source, Args: make([]argView, 0, len(specs))}
	for _, spec := range specs {
		view.Args = append(view.Args, argView{
			Name:        spec.Name,
			Description: spec.Description,
			Default:     spec.Default,
		})
	}
	return view
}

// NewListCmd creates the template list command.
func NewListCmd(cfg *config.GlobalConfig) *cobra.Command {
	var flags cmdutil.OutputFlags

	c := &cobra.Command{
		Use:   "list [name]",
		Short: "List templates and their arguments",
		Long: `List every available template with the arguments it accepts.

Given a name, only that template is shown. Arguments without a default must be
supplied with -D when running "gur template new".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runList(args, cfg, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

func runList(args []string, cfg *config.GlobalConfig, flags *cmdutil.OutputFlags) error {
	format, err := flags.Parse()
	if err != nil {
		return cmdutil.Fail("listing templates failed", err)
	}

	registry := newRegistry(cfg)

	var list []*templates.Template
	if len(args) == 1 {
		t, err := registry.Lookup(args[0])
		if err != nil {
			return cmdutil.Fail("listing templates failed", err)
		}
		list = []*templates.Template{t}
	} else {
		list = registry.List()
	}

	views := make([]templateView, 0, len(list))
	for _, t := range list {
		views = append(views, newTemplateView(t))
	}

	if format != output.FormatText {
		if err := cmdutil.WriteStructured(format, views); err != nil {
			return cmdutil.Fail("listing templates failed", err)
		}
		return nil
	}

	output.Println(renderTemplateList(views))
	return nil
}

// renderTemplateList renders views as one argument table per template.
func renderTemplateList(views []templateView) string {
	var sb strings.Builder
	for i, view := range views {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "%s %s\n", output.FormatNoun(view.Name), output.StyleDim.Render("("+view.Source+")"))

		tbl := output.NewTable("ARGUMENT", "DESCRIPTION", "DEFAULT")
		for _, arg := range view.Args {
			def := "required"
			if arg.Default != nil {
				def = *arg.Default
			}
			tbl.Row(arg.Name, arg.Description, def)
		}
		sb.WriteString(tbl.String())
	}
	return sb.String()
}
