package templates

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/gradle-util/gur/internal/gradle"
)

//go:embed builtin/*.toml builtin/gitignore builtin/gitattributes
var builtinFS embed.FS

const builtinDir = "builtin"

// BuiltinNames lists the compiled-in templates in display order.
var BuiltinNames = []string{"kotlin-project", "java-project", "grpc-vertx-kotlin"}

// ArgGradle is the wrapper version argument of the built-in templates.
const ArgGradle = "gradle"

// loadBuiltin builds a compiled-in template. Besides its definition every
// built-in gets .gitignore, .gitattributes and wrapper properties rendered
// from its gradle argument.
func loadBuiltin(name string) (*Template, error) {
	data, err := builtinFS.ReadFile(path.Join(builtinDir, name+DefinitionExt))
	if err != nil {
		return nil, fmt.Errorf("reading built-in template %s: %w", name, err)
	}
	t, err := ParseDefinition(name, SourceBuiltin, data)
	if err != nil {
		return nil, err
	}

	for _, static := range []struct{ file, target string }{
		{"gitignore", ".gitignore"},
		{"gitattributes", ".gitattributes"},
	} {
		body, err := builtinFS.ReadFile(path.Join(builtinDir, static.file))
		if err != nil {
			return nil, fmt.Errorf("reading built-in %s: %w", static.file, err)
		}
		t.Files = append(t.Files, File{Path: Static(static.target), Content: Static(string(body))})
	}

	t.Files = append(t.Files, File{
		Path: Static(gradle.WrapperPropertiesPath),
		Content: Func(func(args Args) (string, error) {
			version := strings.TrimSpace(args[ArgGradle])
			if err := gradle.CheckDistributionVersion(version); err != nil {
				return "", err
			}
			return gradle.RenderWrapperProperties(version) + "\n", nil
		}),
	})
	return t, nil
}

func isBuiltin(name string) bool {
	for _, n := range BuiltinNames {
		if n == name {
			return true
		}
	}
	return false
}
