// Package template provides the `gur template` command group.
package template

import (
	"github.com/spf13/cobra"

	"github.com/gradle-util/gur/internal/config"
	"github.com/gradle-util/gur/internal/templates"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Generate Gradle projects from templates",
		Long: `Generate Gradle projects from templates.

Templates are resolved by name: builtin templates first, then <name>.toml in
<gur install dir>/templates, ~/.gur/templates, the templatesPath entries of
the config file and the GUR_TEMPLATES_PATH directories, in that order.`,
	}

	c.AddCommand(NewListCmd(cfg))
	c.AddCommand(NewNewCmd(cfg))
	c.AddCommand(NewCaptureCmd(cfg))

	return c
}

// newRegistry builds the template registry for cfg.
func newRegistry(cfg *config.GlobalConfig) *templates.Registry {
	roots := templates.DefaultRoots()
	roots = append(roots, config.TemplateRoots(cfg.ConfigOrDefault())...)
	return templates.NewRegistry(roots)
}
